package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/share_registry/internal/models"
)

// CompanyRepository 定义了公司数据仓库的接口
type CompanyRepository interface {
	// Create 同时写入公司与第一条名称记录
	Create(ctx context.Context, company *models.CompanyMaster, firstName *models.NameChangeMaster) (*models.CompanyMaster, error)
	GetByID(ctx context.Context, id int64) (*models.CompanyMaster, error)
	List(ctx context.Context, q models.ListQuery) ([]models.CompanyMaster, int64, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.CompanyMaster, error)
	Delete(ctx context.Context, id int64) error
}

type gormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository 创建一个新的 gormCompanyRepository 实例
func NewGormCompanyRepository(db *gorm.DB) CompanyRepository {
	return &gormCompanyRepository{db: db}
}

func (r *gormCompanyRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("NameChanges", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_of_name_change ASC, id ASC")
		}).
		Preload("RegistrarMasterBranch").
		Preload("RegistrarMasterBranch.RegistrarMaster")
}

// Create 在一个事务中创建公司和它的初始名称
func (r *gormCompanyRepository) Create(ctx context.Context, company *models.CompanyMaster, firstName *models.NameChangeMaster) (*models.CompanyMaster, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("NameChanges", "RegistrarMasterBranch").Create(company).Error; err != nil {
			return err
		}
		firstName.CompanyID = company.ID
		return tx.Create(firstName).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRecord
		}
		return nil, err
	}
	return r.GetByID(ctx, company.ID)
}

// GetByID 按主键查询公司，预加载名称历史与 RTA
func (r *gormCompanyRepository) GetByID(ctx context.Context, id int64) (*models.CompanyMaster, error) {
	var company models.CompanyMaster
	if err := r.preloaded(ctx).First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// List 分页查询公司，search 匹配 ISIN、CIN 与任一历史名称
func (r *gormCompanyRepository) List(ctx context.Context, q models.ListQuery) ([]models.CompanyMaster, int64, error) {
	var companies []models.CompanyMaster
	var totalItems int64

	queryBuilder := r.db.WithContext(ctx).Model(&models.CompanyMaster{})
	if q.Search != "" {
		term := likeTerm(q.Search)
		queryBuilder = queryBuilder.Where(
			"isin LIKE ? OR cin LIKE ? OR id IN (?)",
			term, term,
			r.db.Model(&models.NameChangeMaster{}).Select("company_id").Where("company_name LIKE ? OR ticker LIKE ?", term, term),
		)
	}

	if err := queryBuilder.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	allowedSortByFields := map[string]string{
		"id":        "id",
		"isin":      "isin",
		"createdAt": "created_at",
	}
	ids := []int64{}
	if err := applyListQuery(queryBuilder, q, allowedSortByFields, "created_at").Pluck("id", &ids).Error; err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return []models.CompanyMaster{}, totalItems, nil
	}
	if err := r.preloaded(ctx).Where("id IN ?", ids).Find(&companies).Error; err != nil {
		return nil, 0, err
	}
	return orderByIDs(companies, models.IDList(ids), func(c models.CompanyMaster) int64 { return c.ID }), totalItems, nil
}

// Update 更新公司字段
func (r *gormCompanyRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.CompanyMaster, error) {
	if err := r.db.WithContext(ctx).Model(&models.CompanyMaster{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete 删除公司及其名称历史
func (r *gormCompanyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", id).Delete(&models.NameChangeMaster{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.CompanyMaster{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
}
