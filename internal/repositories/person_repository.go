package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/share_registry/internal/models"
)

// ShareHolderRepository 定义了持有人明细的只读接口
type ShareHolderRepository interface {
	FindByIDs(ctx context.Context, ids models.IDList) ([]models.ShareHolderDetail, error)
}

// LegalHeirRepository 定义了法定继承人明细的只读接口
type LegalHeirRepository interface {
	FindByIDs(ctx context.Context, ids models.IDList) ([]models.LegalHeirDetail, error)
	FindByProjectID(ctx context.Context, projectID int64) ([]models.LegalHeirDetail, error)
}

// NominationRepository 定义了提名记录的只读接口
type NominationRepository interface {
	FindByIDs(ctx context.Context, ids models.IDList) ([]models.Nomination, error)
}

type gormShareHolderRepository struct {
	db *gorm.DB
}

// NewGormShareHolderRepository 创建一个新的 gormShareHolderRepository 实例
func NewGormShareHolderRepository(db *gorm.DB) ShareHolderRepository {
	return &gormShareHolderRepository{db: db}
}

// FindByIDs 按 ids 顺序返回持有人
func (r *gormShareHolderRepository) FindByIDs(ctx context.Context, ids models.IDList) ([]models.ShareHolderDetail, error) {
	ids = ids.Unique()
	if len(ids) == 0 {
		return []models.ShareHolderDetail{}, nil
	}
	var rows []models.ShareHolderDetail
	if err := r.db.WithContext(ctx).Where("id IN ?", []int64(ids)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return orderByIDs(rows, ids, func(s models.ShareHolderDetail) int64 { return s.ID }), nil
}

type gormLegalHeirRepository struct {
	db *gorm.DB
}

// NewGormLegalHeirRepository 创建一个新的 gormLegalHeirRepository 实例
func NewGormLegalHeirRepository(db *gorm.DB) LegalHeirRepository {
	return &gormLegalHeirRepository{db: db}
}

// FindByIDs 按 ids 顺序返回法定继承人
func (r *gormLegalHeirRepository) FindByIDs(ctx context.Context, ids models.IDList) ([]models.LegalHeirDetail, error) {
	ids = ids.Unique()
	if len(ids) == 0 {
		return []models.LegalHeirDetail{}, nil
	}
	var rows []models.LegalHeirDetail
	if err := r.db.WithContext(ctx).Where("id IN ?", []int64(ids)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return orderByIDs(rows, ids, func(h models.LegalHeirDetail) int64 { return h.ID }), nil
}

// FindByProjectID 返回项目下全部法定继承人，按 id 升序
func (r *gormLegalHeirRepository) FindByProjectID(ctx context.Context, projectID int64) ([]models.LegalHeirDetail, error) {
	var rows []models.LegalHeirDetail
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type gormNominationRepository struct {
	db *gorm.DB
}

// NewGormNominationRepository 创建一个新的 gormNominationRepository 实例
func NewGormNominationRepository(db *gorm.DB) NominationRepository {
	return &gormNominationRepository{db: db}
}

// FindByIDs 按 ids 顺序返回提名记录
func (r *gormNominationRepository) FindByIDs(ctx context.Context, ids models.IDList) ([]models.Nomination, error) {
	ids = ids.Unique()
	if len(ids) == 0 {
		return []models.Nomination{}, nil
	}
	var rows []models.Nomination
	if err := r.db.WithContext(ctx).Where("id IN ?", []int64(ids)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return orderByIDs(rows, ids, func(n models.Nomination) int64 { return n.ID }), nil
}
