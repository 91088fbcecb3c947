package services

import (
	"context"
	"strings"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/repositories"
)

// RegistrarService 定义了 RTA 主数据服务的接口
type RegistrarService interface {
	CreateRegistrar(ctx context.Context, payload models.RegistrarPayload) (*models.RegistrarMaster, error)
	GetRegistrar(ctx context.Context, id int64) (*models.RegistrarMaster, error)
	ListRegistrars(ctx context.Context, q models.ListQuery) ([]models.RegistrarMaster, int64, error)
	UpdateRegistrar(ctx context.Context, id int64, payload models.RegistrarPayload) (*models.RegistrarMaster, error)
	DeleteRegistrar(ctx context.Context, id int64) error
}

type registrarService struct {
	repo repositories.RegistrarRepository
}

// NewRegistrarService 创建一个新的 registrarService 实例
func NewRegistrarService(repo repositories.RegistrarRepository) RegistrarService {
	return &registrarService{repo: repo}
}

func (s *registrarService) CreateRegistrar(ctx context.Context, payload models.RegistrarPayload) (*models.RegistrarMaster, error) {
	r := &models.RegistrarMaster{
		RegistrarName: strings.TrimSpace(payload.RegistrarName),
		SebiRegNo:     strings.ToUpper(strings.TrimSpace(payload.SebiRegNo)),
		Address:       payload.Address,
		ContactPerson: payload.ContactPerson,
		Email:         payload.Email,
		Phone:         payload.Phone,
		Website:       payload.Website,
	}
	created, err := s.repo.Create(ctx, r)
	if err != nil {
		return nil, mapRepoErr(err, ErrRegistrarNotFound)
	}
	return created, nil
}

func (s *registrarService) GetRegistrar(ctx context.Context, id int64) (*models.RegistrarMaster, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, ErrRegistrarNotFound)
	}
	return r, nil
}

func (s *registrarService) ListRegistrars(ctx context.Context, q models.ListQuery) ([]models.RegistrarMaster, int64, error) {
	q.Normalize()
	return s.repo.List(ctx, q)
}

func (s *registrarService) UpdateRegistrar(ctx context.Context, id int64, payload models.RegistrarPayload) (*models.RegistrarMaster, error) {
	if _, err := s.GetRegistrar(ctx, id); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, map[string]interface{}{
		"registrar_name": strings.TrimSpace(payload.RegistrarName),
		"sebi_reg_no":    strings.ToUpper(strings.TrimSpace(payload.SebiRegNo)),
		"address":        payload.Address,
		"contact_person": payload.ContactPerson,
		"email":          payload.Email,
		"phone":          payload.Phone,
		"website":        payload.Website,
	})
	if err != nil {
		return nil, mapRepoErr(err, ErrRegistrarNotFound)
	}
	return updated, nil
}

// DeleteRegistrar 仍有分支机构时返回 ErrRegistrarInUse
func (s *registrarService) DeleteRegistrar(ctx context.Context, id int64) error {
	return mapRepoErr(s.repo.Delete(ctx, id), ErrRegistrarNotFound)
}

// RegistrarBranchService 定义了 RTA 分支机构服务的接口
type RegistrarBranchService interface {
	CreateBranch(ctx context.Context, payload models.RegistrarBranchPayload) (*models.RegistrarMasterBranch, error)
	GetBranch(ctx context.Context, id int64) (*models.RegistrarMasterBranch, error)
	ListBranches(ctx context.Context, q models.ListQuery, registrarID int64) ([]models.RegistrarMasterBranch, int64, error)
	UpdateBranch(ctx context.Context, id int64, payload models.RegistrarBranchPayload) (*models.RegistrarMasterBranch, error)
	DeleteBranch(ctx context.Context, id int64) error
}

type registrarBranchService struct {
	repo          repositories.RegistrarBranchRepository
	registrarRepo repositories.RegistrarRepository
}

// NewRegistrarBranchService 创建一个新的 registrarBranchService 实例
func NewRegistrarBranchService(repo repositories.RegistrarBranchRepository, registrarRepo repositories.RegistrarRepository) RegistrarBranchService {
	return &registrarBranchService{repo: repo, registrarRepo: registrarRepo}
}

func (s *registrarBranchService) CreateBranch(ctx context.Context, payload models.RegistrarBranchPayload) (*models.RegistrarMasterBranch, error) {
	if _, err := s.registrarRepo.GetByID(ctx, payload.RegistrarMasterID); err != nil {
		return nil, mapRepoErr(err, ErrRegistrarNotFound)
	}
	b := &models.RegistrarMasterBranch{
		RegistrarMasterID: payload.RegistrarMasterID,
		BranchName:        strings.TrimSpace(payload.BranchName),
		Address:           payload.Address,
		City:              payload.City,
		State:             payload.State,
		PinCode:           payload.PinCode,
		ContactPerson:     payload.ContactPerson,
		Email:             payload.Email,
		Phone:             payload.Phone,
	}
	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, mapRepoErr(err, ErrRegistrarBranchNotFound)
	}
	return created, nil
}

func (s *registrarBranchService) GetBranch(ctx context.Context, id int64) (*models.RegistrarMasterBranch, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, ErrRegistrarBranchNotFound)
	}
	return b, nil
}

func (s *registrarBranchService) ListBranches(ctx context.Context, q models.ListQuery, registrarID int64) ([]models.RegistrarMasterBranch, int64, error) {
	q.Normalize()
	return s.repo.List(ctx, q, registrarID)
}

func (s *registrarBranchService) UpdateBranch(ctx context.Context, id int64, payload models.RegistrarBranchPayload) (*models.RegistrarMasterBranch, error) {
	if _, err := s.GetBranch(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.registrarRepo.GetByID(ctx, payload.RegistrarMasterID); err != nil {
		return nil, mapRepoErr(err, ErrRegistrarNotFound)
	}
	updated, err := s.repo.Update(ctx, id, map[string]interface{}{
		"registrar_master_id": payload.RegistrarMasterID,
		"branch_name":         strings.TrimSpace(payload.BranchName),
		"address":             payload.Address,
		"city":                payload.City,
		"state":               payload.State,
		"pin_code":            payload.PinCode,
		"contact_person":      payload.ContactPerson,
		"email":               payload.Email,
		"phone":               payload.Phone,
	})
	if err != nil {
		return nil, mapRepoErr(err, ErrRegistrarBranchNotFound)
	}
	return updated, nil
}

// DeleteBranch 仍被公司引用时返回 ErrBranchInUse
func (s *registrarBranchService) DeleteBranch(ctx context.Context, id int64) error {
	return mapRepoErr(s.repo.Delete(ctx, id), ErrRegistrarBranchNotFound)
}
