package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/share_registry/internal/models"
)

// FolioRepository 定义了 folio 数据仓库的接口
type FolioRepository interface {
	// FindByIDs 按 ids 顺序返回 folio，证书按 action date 升序预加载，空日期在前
	FindByIDs(ctx context.Context, ids models.IDList) ([]models.Folio, error)
}

// certificateOrder 让没有 action date 的证书排在最前，sqlite 与 postgres 结果一致
const certificateOrder = "action_date IS NULL DESC, action_date ASC, id ASC"

type gormFolioRepository struct {
	db *gorm.DB
}

// NewGormFolioRepository 创建一个新的 gormFolioRepository 实例
func NewGormFolioRepository(db *gorm.DB) FolioRepository {
	return &gormFolioRepository{db: db}
}

// FindByIDs 一次查询取回所有 folio (WHERE id IN ...)
func (r *gormFolioRepository) FindByIDs(ctx context.Context, ids models.IDList) ([]models.Folio, error) {
	ids = ids.Unique()
	if len(ids) == 0 {
		return []models.Folio{}, nil
	}
	var folios []models.Folio
	err := r.db.WithContext(ctx).
		Preload("Certificates", func(db *gorm.DB) *gorm.DB {
			return db.Order(certificateOrder)
		}).
		Where("id IN ?", []int64(ids)).
		Find(&folios).Error
	if err != nil {
		return nil, err
	}
	return orderByIDs(folios, ids, func(f models.Folio) int64 { return f.ID }), nil
}
