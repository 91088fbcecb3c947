package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/share_registry/internal/models"
)

// CaseRepository 定义了案件数据仓库的接口
type CaseRepository interface {
	Create(ctx context.Context, c *models.Case) (*models.Case, error)
	GetByID(ctx context.Context, id int64) (*models.Case, error)
	// GetWithChain 一次性加载证书批次 → 公司 (含名称历史) → RTA 分支 → RTA
	GetWithChain(ctx context.Context, id int64) (*models.Case, error)
	List(ctx context.Context, q models.ListQuery, caseType string) ([]models.Case, int64, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.Case, error)
	Delete(ctx context.Context, id int64) error
}

// gormCaseRepository 是 CaseRepository 的 GORM 实现
type gormCaseRepository struct {
	db *gorm.DB
}

// NewGormCaseRepository 创建一个新的 gormCaseRepository 实例
func NewGormCaseRepository(db *gorm.DB) CaseRepository {
	return &gormCaseRepository{db: db}
}

// Create 在数据库中创建一个新的案件记录
func (r *gormCaseRepository) Create(ctx context.Context, c *models.Case) (*models.Case, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID 按主键查询案件
func (r *gormCaseRepository) GetByID(ctx context.Context, id int64) (*models.Case, error) {
	var c models.Case
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetWithChain 查询案件并预加载公司与 RTA 链路
func (r *gormCaseRepository) GetWithChain(ctx context.Context, id int64) (*models.Case, error) {
	var c models.Case
	err := r.db.WithContext(ctx).
		Preload("ShareCertificate").
		Preload("ShareCertificate.Project").
		Preload("ShareCertificate.Company").
		Preload("ShareCertificate.Company.NameChanges", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_of_name_change ASC, id ASC")
		}).
		Preload("ShareCertificate.Company.RegistrarMasterBranch").
		Preload("ShareCertificate.Company.RegistrarMasterBranch.RegistrarMaster").
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List 分页查询案件，search 匹配案件类型与 folio id 文本
func (r *gormCaseRepository) List(ctx context.Context, q models.ListQuery, caseType string) ([]models.Case, int64, error) {
	var cases []models.Case
	var totalItems int64

	queryBuilder := r.db.WithContext(ctx).Model(&models.Case{})
	if q.Search != "" {
		term := likeTerm(q.Search)
		queryBuilder = queryBuilder.Where("case_type LIKE ? OR folios LIKE ? OR place_of_death LIKE ?", term, term, term)
	}
	if caseType != "" {
		queryBuilder = queryBuilder.Where("case_type = ?", caseType)
	}

	if err := queryBuilder.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	allowedSortByFields := map[string]string{
		"id":        "id",
		"caseType":  "case_type",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
	if err := applyListQuery(queryBuilder, q, allowedSortByFields, "created_at").Find(&cases).Error; err != nil {
		return nil, 0, err
	}
	return cases, totalItems, nil
}

// Update 更新案件的指定字段并返回最新记录
func (r *gormCaseRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.Case, error) {
	result := r.db.WithContext(ctx).Model(&models.Case{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.GetByID(ctx, id)
}

// Delete 删除案件 (硬删除)
func (r *gormCaseRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Case{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
