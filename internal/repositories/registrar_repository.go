package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/share_registry/internal/models"
)

// ErrRegistrarInUse 表示 RTA 仍被分支机构引用
var ErrRegistrarInUse = errors.New("RTA 仍有关联的分支机构")

// ErrBranchInUse 表示分支机构仍被公司引用
var ErrBranchInUse = errors.New("RTA 分支机构仍被公司引用")

// RegistrarRepository 定义了 RTA 数据仓库的接口
type RegistrarRepository interface {
	Create(ctx context.Context, r *models.RegistrarMaster) (*models.RegistrarMaster, error)
	GetByID(ctx context.Context, id int64) (*models.RegistrarMaster, error)
	List(ctx context.Context, q models.ListQuery) ([]models.RegistrarMaster, int64, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.RegistrarMaster, error)
	Delete(ctx context.Context, id int64) error
}

// RegistrarBranchRepository 定义了 RTA 分支机构数据仓库的接口
type RegistrarBranchRepository interface {
	Create(ctx context.Context, b *models.RegistrarMasterBranch) (*models.RegistrarMasterBranch, error)
	GetByID(ctx context.Context, id int64) (*models.RegistrarMasterBranch, error)
	List(ctx context.Context, q models.ListQuery, registrarID int64) ([]models.RegistrarMasterBranch, int64, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.RegistrarMasterBranch, error)
	Delete(ctx context.Context, id int64) error
}

type gormRegistrarRepository struct {
	db *gorm.DB
}

// NewGormRegistrarRepository 创建一个新的 gormRegistrarRepository 实例
func NewGormRegistrarRepository(db *gorm.DB) RegistrarRepository {
	return &gormRegistrarRepository{db: db}
}

func (r *gormRegistrarRepository) Create(ctx context.Context, registrar *models.RegistrarMaster) (*models.RegistrarMaster, error) {
	if err := r.db.WithContext(ctx).Omit("Branches").Create(registrar).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRecord
		}
		return nil, err
	}
	return registrar, nil
}

// GetByID 查询 RTA 并预加载分支机构
func (r *gormRegistrarRepository) GetByID(ctx context.Context, id int64) (*models.RegistrarMaster, error) {
	var registrar models.RegistrarMaster
	if err := r.db.WithContext(ctx).Preload("Branches").First(&registrar, id).Error; err != nil {
		return nil, err
	}
	return &registrar, nil
}

func (r *gormRegistrarRepository) List(ctx context.Context, q models.ListQuery) ([]models.RegistrarMaster, int64, error) {
	var rows []models.RegistrarMaster
	var totalItems int64

	queryBuilder := r.db.WithContext(ctx).Model(&models.RegistrarMaster{})
	if q.Search != "" {
		term := likeTerm(q.Search)
		queryBuilder = queryBuilder.Where("registrar_name LIKE ? OR sebi_reg_no LIKE ? OR email LIKE ?", term, term, term)
	}
	if err := queryBuilder.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	allowedSortByFields := map[string]string{
		"id":            "id",
		"registrarName": "registrar_name",
		"createdAt":     "created_at",
	}
	if err := applyListQuery(queryBuilder, q, allowedSortByFields, "created_at").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, totalItems, nil
}

func (r *gormRegistrarRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.RegistrarMaster, error) {
	if err := r.db.WithContext(ctx).Model(&models.RegistrarMaster{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete 删除 RTA；仍有分支机构时返回 ErrRegistrarInUse
func (r *gormRegistrarRepository) Delete(ctx context.Context, id int64) error {
	var branches int64
	if err := r.db.WithContext(ctx).Model(&models.RegistrarMasterBranch{}).Where("registrar_master_id = ?", id).Count(&branches).Error; err != nil {
		return err
	}
	if branches > 0 {
		return ErrRegistrarInUse
	}
	result := r.db.WithContext(ctx).Delete(&models.RegistrarMaster{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type gormRegistrarBranchRepository struct {
	db *gorm.DB
}

// NewGormRegistrarBranchRepository 创建一个新的 gormRegistrarBranchRepository 实例
func NewGormRegistrarBranchRepository(db *gorm.DB) RegistrarBranchRepository {
	return &gormRegistrarBranchRepository{db: db}
}

func (r *gormRegistrarBranchRepository) Create(ctx context.Context, b *models.RegistrarMasterBranch) (*models.RegistrarMasterBranch, error) {
	if err := r.db.WithContext(ctx).Omit("RegistrarMaster").Create(b).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, b.ID)
}

// GetByID 查询分支机构并预加载所属 RTA
func (r *gormRegistrarBranchRepository) GetByID(ctx context.Context, id int64) (*models.RegistrarMasterBranch, error) {
	var b models.RegistrarMasterBranch
	if err := r.db.WithContext(ctx).Preload("RegistrarMaster").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// List 分页查询分支机构，registrarID 为 0 时不过滤
func (r *gormRegistrarBranchRepository) List(ctx context.Context, q models.ListQuery, registrarID int64) ([]models.RegistrarMasterBranch, int64, error) {
	var rows []models.RegistrarMasterBranch
	var totalItems int64

	queryBuilder := r.db.WithContext(ctx).Model(&models.RegistrarMasterBranch{})
	if registrarID > 0 {
		queryBuilder = queryBuilder.Where("registrar_master_id = ?", registrarID)
	}
	if q.Search != "" {
		term := likeTerm(q.Search)
		queryBuilder = queryBuilder.Where("branch_name LIKE ? OR city LIKE ? OR state LIKE ?", term, term, term)
	}
	if err := queryBuilder.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	allowedSortByFields := map[string]string{
		"id":         "id",
		"branchName": "branch_name",
		"city":       "city",
		"createdAt":  "created_at",
	}
	if err := applyListQuery(queryBuilder.Preload("RegistrarMaster"), q, allowedSortByFields, "created_at").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, totalItems, nil
}

func (r *gormRegistrarBranchRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.RegistrarMasterBranch, error) {
	if err := r.db.WithContext(ctx).Model(&models.RegistrarMasterBranch{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete 删除分支机构；仍被公司引用时返回 ErrBranchInUse
func (r *gormRegistrarBranchRepository) Delete(ctx context.Context, id int64) error {
	var companies int64
	if err := r.db.WithContext(ctx).Model(&models.CompanyMaster{}).Where("registrar_master_branch_id = ?", id).Count(&companies).Error; err != nil {
		return err
	}
	if companies > 0 {
		return ErrBranchInUse
	}
	result := r.db.WithContext(ctx).Delete(&models.RegistrarMasterBranch{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
