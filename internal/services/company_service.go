package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/repositories"
	"github.com/share_registry/pkg/utils"
)

// CompanyService 定义了公司主数据服务的接口
type CompanyService interface {
	CreateCompany(ctx context.Context, payload models.CompanyPayload) (*models.CompanyResponse, error)
	GetCompany(ctx context.Context, id int64) (*models.CompanyResponse, error)
	ListCompanies(ctx context.Context, q models.ListQuery) ([]models.CompanyResponse, int64, error)
	UpdateCompany(ctx context.Context, id int64, payload models.UpdateCompanyPayload) (*models.CompanyResponse, error)
	DeleteCompany(ctx context.Context, id int64) error
}

type companyService struct {
	repo       repositories.CompanyRepository
	branchRepo repositories.RegistrarBranchRepository
}

// NewCompanyService 创建一个新的 companyService 实例
func NewCompanyService(repo repositories.CompanyRepository, branchRepo repositories.RegistrarBranchRepository) CompanyService {
	return &companyService{repo: repo, branchRepo: branchRepo}
}

// mapRepoErr 把仓库层错误转为服务层错误
func mapRepoErr(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrRecordNotFound):
		return notFound
	case errors.Is(err, repositories.ErrDuplicateRecord):
		return ErrDuplicateRecord
	case errors.Is(err, repositories.ErrRegistrarInUse):
		return ErrRegistrarInUse
	case errors.Is(err, repositories.ErrBranchInUse):
		return ErrBranchInUse
	}
	return err
}

// CreateCompany 创建公司，CompanyName 写入第一条名称记录 (默认日期为当天)
func (s *companyService) CreateCompany(ctx context.Context, payload models.CompanyPayload) (*models.CompanyResponse, error) {
	if err := s.checkBranch(ctx, payload.RegistrarMasterBranchID); err != nil {
		return nil, err
	}

	changedAt := time.Now().UTC().Truncate(24 * time.Hour)
	if payload.DateOfNameChange != "" {
		t, err := utils.ParseDate(payload.DateOfNameChange)
		if err != nil {
			return nil, ErrInvalidDate
		}
		changedAt = t
	}

	company := &models.CompanyMaster{
		ISIN:                    strings.ToUpper(strings.TrimSpace(payload.ISIN)),
		CIN:                     strings.ToUpper(strings.TrimSpace(payload.CIN)),
		FaceValue:               payload.FaceValue,
		Address:                 payload.Address,
		Email:                   payload.Email,
		Phone:                   payload.Phone,
		RegistrarMasterBranchID: payload.RegistrarMasterBranchID,
	}
	firstName := &models.NameChangeMaster{
		CompanyName:      strings.TrimSpace(payload.CompanyName),
		Ticker:           strings.TrimSpace(payload.Ticker),
		DateOfNameChange: changedAt,
	}
	created, err := s.repo.Create(ctx, company, firstName)
	if err != nil {
		return nil, mapRepoErr(err, ErrCompanyNotFound)
	}
	resp := models.NewCompanyResponse(*created)
	return &resp, nil
}

func (s *companyService) GetCompany(ctx context.Context, id int64) (*models.CompanyResponse, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, ErrCompanyNotFound)
	}
	resp := models.NewCompanyResponse(*company)
	return &resp, nil
}

func (s *companyService) ListCompanies(ctx context.Context, q models.ListQuery) ([]models.CompanyResponse, int64, error) {
	q.Normalize()
	companies, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	out := make([]models.CompanyResponse, len(companies))
	for i, c := range companies {
		out[i] = models.NewCompanyResponse(c)
	}
	return out, total, nil
}

// UpdateCompany 只更新请求中出现的字段
func (s *companyService) UpdateCompany(ctx context.Context, id int64, payload models.UpdateCompanyPayload) (*models.CompanyResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, mapRepoErr(err, ErrCompanyNotFound)
	}

	updates := make(map[string]interface{})
	if payload.ISIN != nil {
		updates["isin"] = strings.ToUpper(strings.TrimSpace(*payload.ISIN))
	}
	if payload.CIN != nil {
		updates["cin"] = strings.ToUpper(strings.TrimSpace(*payload.CIN))
	}
	if payload.FaceValue != nil {
		updates["face_value"] = *payload.FaceValue
	}
	if payload.Address != nil {
		updates["address"] = *payload.Address
	}
	if payload.Email != nil {
		updates["email"] = *payload.Email
	}
	if payload.Phone != nil {
		updates["phone"] = *payload.Phone
	}
	if payload.RegistrarMasterBranchID != nil {
		if err := s.checkBranch(ctx, payload.RegistrarMasterBranchID); err != nil {
			return nil, err
		}
		updates["registrar_master_branch_id"] = *payload.RegistrarMasterBranchID
	}
	if len(updates) == 0 {
		return s.GetCompany(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, mapRepoErr(err, ErrCompanyNotFound)
	}
	resp := models.NewCompanyResponse(*updated)
	return &resp, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, id int64) error {
	return mapRepoErr(s.repo.Delete(ctx, id), ErrCompanyNotFound)
}

func (s *companyService) checkBranch(ctx context.Context, branchID *int64) error {
	if branchID == nil {
		return nil
	}
	if _, err := s.branchRepo.GetByID(ctx, *branchID); err != nil {
		return mapRepoErr(err, ErrRegistrarBranchNotFound)
	}
	return nil
}
