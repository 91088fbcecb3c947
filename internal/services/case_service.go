package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/repositories"
	"github.com/share_registry/pkg/logging"
	"github.com/share_registry/pkg/utils"
)

// CaseRepositories 汇总案件流程读取的数据仓库
type CaseRepositories struct {
	Cases        repositories.CaseRepository
	Folios       repositories.FolioRepository
	ShareHolders repositories.ShareHolderRepository
	LegalHeirs   repositories.LegalHeirRepository
	Nominations  repositories.NominationRepository
}

// CaseService 定义了案件服务的接口
type CaseService interface {
	CreateCase(ctx context.Context, payload models.CasePayload) (*models.Case, error)
	GetCase(ctx context.Context, id int64) (*models.Case, error)
	ListCases(ctx context.Context, q models.ListQuery, caseType string) ([]models.Case, int64, error)
	UpdateCase(ctx context.Context, id int64, payload models.CasePayload) (*models.Case, error)
	DeleteCase(ctx context.Context, id int64) error
	// ResolveCaseView 把案件中的 id 列表解析为关联记录
	ResolveCaseView(ctx context.Context, id int64) (*models.EnrichedCase, error)
	// AttachDocument 保存上传的附件，替换时删除旧文件
	AttachDocument(ctx context.Context, id int64, filename string, src io.Reader) (*models.Case, error)
}

// caseService 是 CaseService 的实现
type caseService struct {
	repos     CaseRepositories
	uploadDir string
}

// NewCaseService 创建一个新的 caseService 实例
func NewCaseService(repos CaseRepositories, uploadDir string) CaseService {
	return &caseService{repos: repos, uploadDir: uploadDir}
}

// CreateCase 校验并创建案件
func (s *caseService) CreateCase(ctx context.Context, payload models.CasePayload) (*models.Case, error) {
	c := &models.Case{}
	if err := applyCasePayload(c, payload); err != nil {
		return nil, err
	}
	return s.repos.Cases.Create(ctx, c)
}

// GetCase 按 id 获取案件
func (s *caseService) GetCase(ctx context.Context, id int64) (*models.Case, error) {
	c, err := s.repos.Cases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	return c, nil
}

// ListCases 分页查询案件，caseType 非空时按类型过滤
func (s *caseService) ListCases(ctx context.Context, q models.ListQuery, caseType string) ([]models.Case, int64, error) {
	if caseType != "" && !models.CaseType(caseType).Valid() {
		return nil, 0, ErrInvalidCaseType
	}
	q.Normalize()
	return s.repos.Cases.List(ctx, q, caseType)
}

// UpdateCase 以请求体整体替换案件的可编辑字段，附件路径不受影响
func (s *caseService) UpdateCase(ctx context.Context, id int64, payload models.CasePayload) (*models.Case, error) {
	if _, err := s.GetCase(ctx, id); err != nil {
		return nil, err
	}

	next := &models.Case{}
	if err := applyCasePayload(next, payload); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"case_type":                    next.CaseType,
		"share_certificate_id":         next.ShareCertificateID,
		"folios":                       next.Folios,
		"select_claimant":              next.SelectClaimant,
		"select_nomination":            next.SelectNomination,
		"transposition_order":          next.TranspositionOrder,
		"select_affidavit_shareholder": next.SelectAffidavitShareholder,
		"select_affidavit_legal_heir":  next.SelectAffidavitLegalHeir,
		"is_deceased":                  next.IsDeceased,
		"is_minor":                     next.IsMinor,
		"is_testate":                   next.IsTestate,
		"allow_affidavit":              next.AllowAffidavit,
		"dead_shareholder_id":          next.DeadShareholderID,
		"dod":                          next.DOD,
		"place_of_death":               next.PlaceOfDeath,
		"dob_minor":                    next.DOBMinor,
		"guardian_name":                next.GuardianName,
		"guardian_relation":            next.GuardianRelation,
		"guardian_pan":                 next.GuardianPAN,
		"remarks":                      next.Remarks,
	}
	return s.repos.Cases.Update(ctx, id, updates)
}

// DeleteCase 删除案件，并尽力删除已上传的附件
func (s *caseService) DeleteCase(ctx context.Context, id int64) error {
	c, err := s.GetCase(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repos.Cases.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return ErrCaseNotFound
		}
		return err
	}
	if c.Document != nil {
		removeStoredFile(*c.Document, id)
	}
	return nil
}

// ResolveCaseView 每个 id 列表一次批量查询；列表为空时结果为空切片。
// 宣誓人选择仅在 allowAffidavit=Yes 时解析，继承人宣誓人另外要求转让类案件。
func (s *caseService) ResolveCaseView(ctx context.Context, id int64) (*models.EnrichedCase, error) {
	c, err := s.GetCase(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &models.EnrichedCase{
		Case:                  *c,
		AffidavitShareholders: []models.ShareHolderDetail{},
		AffidavitLegalHeirs:   []models.LegalHeirDetail{},
	}
	if view.FoliosSet, err = s.repos.Folios.FindByIDs(ctx, c.Folios); err != nil {
		return nil, fmt.Errorf("解析 folios 失败: %w", err)
	}
	if view.Claimants, err = s.repos.LegalHeirs.FindByIDs(ctx, c.SelectClaimant); err != nil {
		return nil, fmt.Errorf("解析 selectClaimant 失败: %w", err)
	}
	if view.Order, err = s.repos.ShareHolders.FindByIDs(ctx, c.TranspositionOrder); err != nil {
		return nil, fmt.Errorf("解析 transpositionOrder 失败: %w", err)
	}
	if view.Nominations, err = s.repos.Nominations.FindByIDs(ctx, c.SelectNomination); err != nil {
		return nil, fmt.Errorf("解析 selectNomination 失败: %w", err)
	}

	if models.Flag(c.AllowAffidavit) {
		if view.AffidavitShareholders, err = s.repos.ShareHolders.FindByIDs(ctx, c.SelectAffidavitShareholder); err != nil {
			return nil, fmt.Errorf("解析 selectAffidavitShareholder 失败: %w", err)
		}
		if c.CaseType.IsTransmission() {
			if view.AffidavitLegalHeirs, err = s.repos.LegalHeirs.FindByIDs(ctx, c.SelectAffidavitLegalHeir); err != nil {
				return nil, fmt.Errorf("解析 selectAffidavitLegalHeir 失败: %w", err)
			}
		}
	}
	return view, nil
}

// AttachDocument 写入 uploadDir/case_<id>_<uuid><ext>，成功更新后删除旧附件
func (s *caseService) AttachDocument(ctx context.Context, id int64, filename string, src io.Reader) (*models.Case, error) {
	c, err := s.GetCase(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	storedPath := filepath.Join(s.uploadDir, fmt.Sprintf("case_%d_%s%s", id, uuid.NewString(), ext))
	if err := writeUpload(storedPath, src); err != nil {
		return nil, err
	}

	updated, err := s.repos.Cases.Update(ctx, id, map[string]interface{}{"document": storedPath})
	if err != nil {
		removeStoredFile(storedPath, id)
		return nil, err
	}
	if c.Document != nil && *c.Document != storedPath {
		removeStoredFile(*c.Document, id)
	}
	return updated, nil
}

func writeUpload(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("保存附件失败: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return fmt.Errorf("保存附件失败: %w", err)
	}
	return dst.Close()
}

// removeStoredFile 删除失败只记录日志
func removeStoredFile(path string, caseID int64) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logging.L().Warn("删除旧附件失败", zap.Int64("caseId", caseID), zap.String("path", path), zap.Error(err))
	}
}

// applyCasePayload 校验请求体并写入 c
func applyCasePayload(c *models.Case, p models.CasePayload) error {
	if !p.CaseType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCaseType, p.CaseType)
	}
	for _, flag := range []string{p.IsDeceased, p.IsMinor, p.IsTestate, p.AllowAffidavit} {
		if !models.ValidFlag(flag) {
			return fmt.Errorf("%w: %q", ErrInvalidFlag, flag)
		}
	}
	dod, err := parseCaseDate(p.DOD)
	if err != nil {
		return err
	}
	dobMinor, err := parseCaseDate(p.DOBMinor)
	if err != nil {
		return err
	}
	guardianPAN := strings.ToUpper(strings.TrimSpace(p.GuardianPAN))
	if err := utils.ValidatePAN(guardianPAN); err != nil {
		return ErrInvalidPAN
	}

	c.CaseType = p.CaseType
	c.ShareCertificateID = p.ShareCertificateID
	c.Folios = orEmptyIDs(p.Folios)
	c.SelectClaimant = orEmptyIDs(p.SelectClaimant)
	c.SelectNomination = orEmptyIDs(p.SelectNomination)
	c.TranspositionOrder = orEmptyIDs(p.TranspositionOrder)
	c.SelectAffidavitShareholder = orEmptyIDs(p.SelectAffidavitShareholder)
	c.SelectAffidavitLegalHeir = orEmptyIDs(p.SelectAffidavitLegalHeir)
	c.IsDeceased = p.IsDeceased
	c.IsMinor = p.IsMinor
	c.IsTestate = p.IsTestate
	c.AllowAffidavit = p.AllowAffidavit
	c.DeadShareholderID = p.DeadShareholderID
	c.DOD = dod
	c.PlaceOfDeath = strings.TrimSpace(p.PlaceOfDeath)
	c.DOBMinor = dobMinor
	c.GuardianName = strings.TrimSpace(p.GuardianName)
	c.GuardianRelation = strings.TrimSpace(p.GuardianRelation)
	c.GuardianPAN = guardianPAN
	c.Remarks = p.Remarks
	return nil
}

func parseCaseDate(s string) (*time.Time, error) {
	t, err := utils.ParseOptionalDate(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func orEmptyIDs(ids models.IDList) models.IDList {
	if ids == nil {
		return models.IDList{}
	}
	return ids
}
