package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/share_registry/internal/models"
)

// NameChangeRepository 定义了公司名称历史的数据仓库接口
type NameChangeRepository interface {
	Create(ctx context.Context, nc *models.NameChangeMaster) (*models.NameChangeMaster, error)
	GetByID(ctx context.Context, id int64) (*models.NameChangeMaster, error)
	ListByCompany(ctx context.Context, companyID int64) ([]models.NameChangeMaster, error)
	List(ctx context.Context, q models.ListQuery, companyID int64) ([]models.NameChangeMaster, int64, error)
	CountByCompany(ctx context.Context, companyID int64) (int64, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.NameChangeMaster, error)
	Delete(ctx context.Context, id int64) error
}

type gormNameChangeRepository struct {
	db *gorm.DB
}

// NewGormNameChangeRepository 创建一个新的 gormNameChangeRepository 实例
func NewGormNameChangeRepository(db *gorm.DB) NameChangeRepository {
	return &gormNameChangeRepository{db: db}
}

// Create 新增一条名称记录
func (r *gormNameChangeRepository) Create(ctx context.Context, nc *models.NameChangeMaster) (*models.NameChangeMaster, error) {
	if err := r.db.WithContext(ctx).Create(nc).Error; err != nil {
		return nil, err
	}
	return nc, nil
}

// GetByID 按主键查询
func (r *gormNameChangeRepository) GetByID(ctx context.Context, id int64) (*models.NameChangeMaster, error) {
	var nc models.NameChangeMaster
	if err := r.db.WithContext(ctx).First(&nc, id).Error; err != nil {
		return nil, err
	}
	return &nc, nil
}

// ListByCompany 返回公司的全部名称历史，按时间升序
func (r *gormNameChangeRepository) ListByCompany(ctx context.Context, companyID int64) ([]models.NameChangeMaster, error) {
	var rows []models.NameChangeMaster
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("date_of_name_change ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

// List 分页查询名称历史，companyID 为 0 时不过滤
func (r *gormNameChangeRepository) List(ctx context.Context, q models.ListQuery, companyID int64) ([]models.NameChangeMaster, int64, error) {
	var rows []models.NameChangeMaster
	var totalItems int64

	queryBuilder := r.db.WithContext(ctx).Model(&models.NameChangeMaster{})
	if companyID > 0 {
		queryBuilder = queryBuilder.Where("company_id = ?", companyID)
	}
	if q.Search != "" {
		term := likeTerm(q.Search)
		queryBuilder = queryBuilder.Where("company_name LIKE ? OR ticker LIKE ?", term, term)
	}
	if err := queryBuilder.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	allowedSortByFields := map[string]string{
		"id":               "id",
		"companyName":      "company_name",
		"dateOfNameChange": "date_of_name_change",
		"createdAt":        "created_at",
	}
	if err := applyListQuery(queryBuilder, q, allowedSortByFields, "date_of_name_change").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, totalItems, nil
}

// CountByCompany 统计公司的名称记录条数
func (r *gormNameChangeRepository) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NameChangeMaster{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

// Update 更新名称记录
func (r *gormNameChangeRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.NameChangeMaster, error) {
	if err := r.db.WithContext(ctx).Model(&models.NameChangeMaster{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete 删除名称记录
func (r *gormNameChangeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.NameChangeMaster{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
