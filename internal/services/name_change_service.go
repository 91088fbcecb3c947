package services

import (
	"context"
	"strings"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/repositories"
	"github.com/share_registry/pkg/utils"
)

// NameChangeService 定义了公司名称历史服务的接口
type NameChangeService interface {
	CreateNameChange(ctx context.Context, payload models.NameChangePayload) (*models.NameChangeMaster, error)
	GetNameChange(ctx context.Context, id int64) (*models.NameChangeMaster, error)
	ListNameChanges(ctx context.Context, q models.ListQuery, companyID int64) ([]models.NameChangeMaster, int64, error)
	UpdateNameChange(ctx context.Context, id int64, payload models.NameChangePayload) (*models.NameChangeMaster, error)
	// DeleteNameChange 公司至少保留一条名称记录
	DeleteNameChange(ctx context.Context, id int64) error
}

type nameChangeService struct {
	repo        repositories.NameChangeRepository
	companyRepo repositories.CompanyRepository
}

// NewNameChangeService 创建一个新的 nameChangeService 实例
func NewNameChangeService(repo repositories.NameChangeRepository, companyRepo repositories.CompanyRepository) NameChangeService {
	return &nameChangeService{repo: repo, companyRepo: companyRepo}
}

func (s *nameChangeService) CreateNameChange(ctx context.Context, payload models.NameChangePayload) (*models.NameChangeMaster, error) {
	if _, err := s.companyRepo.GetByID(ctx, payload.CompanyID); err != nil {
		return nil, mapRepoErr(err, ErrCompanyNotFound)
	}
	changedAt, err := utils.ParseDate(payload.DateOfNameChange)
	if err != nil {
		return nil, ErrInvalidDate
	}
	nc := &models.NameChangeMaster{
		CompanyID:        payload.CompanyID,
		CompanyName:      strings.TrimSpace(payload.CompanyName),
		Ticker:           strings.TrimSpace(payload.Ticker),
		DateOfNameChange: changedAt,
	}
	return s.repo.Create(ctx, nc)
}

func (s *nameChangeService) GetNameChange(ctx context.Context, id int64) (*models.NameChangeMaster, error) {
	nc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, ErrNameChangeNotFound)
	}
	return nc, nil
}

func (s *nameChangeService) ListNameChanges(ctx context.Context, q models.ListQuery, companyID int64) ([]models.NameChangeMaster, int64, error) {
	q.Normalize()
	return s.repo.List(ctx, q, companyID)
}

// UpdateNameChange 不允许把记录移到其他公司
func (s *nameChangeService) UpdateNameChange(ctx context.Context, id int64, payload models.NameChangePayload) (*models.NameChangeMaster, error) {
	existing, err := s.GetNameChange(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.CompanyID != existing.CompanyID {
		return nil, ErrNameChangeCompanyMix
	}
	changedAt, err := utils.ParseDate(payload.DateOfNameChange)
	if err != nil {
		return nil, ErrInvalidDate
	}
	updated, err := s.repo.Update(ctx, id, map[string]interface{}{
		"company_name":        strings.TrimSpace(payload.CompanyName),
		"ticker":              strings.TrimSpace(payload.Ticker),
		"date_of_name_change": changedAt,
	})
	if err != nil {
		return nil, mapRepoErr(err, ErrNameChangeNotFound)
	}
	return updated, nil
}

func (s *nameChangeService) DeleteNameChange(ctx context.Context, id int64) error {
	existing, err := s.GetNameChange(ctx, id)
	if err != nil {
		return err
	}
	count, err := s.repo.CountByCompany(ctx, existing.CompanyID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastNameChange
	}
	return mapRepoErr(s.repo.Delete(ctx, id), ErrNameChangeNotFound)
}
