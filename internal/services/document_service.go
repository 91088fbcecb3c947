package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/share_registry/internal/docgen"
	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/repositories"
	"github.com/share_registry/pkg/logging"
	"github.com/share_registry/pkg/utils"
)

// BundleArchiver 把生成好的 zip 上传到外部存储，返回对象键
type BundleArchiver interface {
	Archive(ctx context.Context, zipPath string) (string, error)
}

// DocumentOptions 是文档服务的可注入配置
type DocumentOptions struct {
	OutputDir         string
	IncludeAffidavits bool           // 开启后为选中的宣誓人额外生成 Affidavit
	Archiver          BundleArchiver // 可选
	Now               func() time.Time
}

// FolioPayload 是一个 folio 的目录名与文档数据
type FolioPayload struct {
	FolioID int64
	Folder  string
	Payload *docgen.Payload
}

// DocumentService 定义了案件文档打包服务的接口
type DocumentService interface {
	// GenerateDocumentBundle 生成案件的全部文档并打包，返回 zip 的绝对路径
	GenerateDocumentBundle(ctx context.Context, caseID int64) (string, error)
	// BuildFolioPayloads 只组装数据，不写文件
	BuildFolioPayloads(ctx context.Context, caseID int64) ([]FolioPayload, error)
}

type documentService struct {
	repos CaseRepositories
	opts  DocumentOptions
}

// NewDocumentService 创建一个新的 documentService 实例
func NewDocumentService(repos CaseRepositories, opts DocumentOptions) DocumentService {
	if opts.OutputDir == "" {
		opts.OutputDir = "word_output"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &documentService{repos: repos, opts: opts}
}

// GenerateDocumentBundle 输出目录为 <OutputDir>/doc_<caseId>_<epochMillis>/<folio>[/<kind>]/<kind>_<n>.docx，
// 打包为同名 zip 后删除目录树。文档逐个顺序写入，任何写入失败都会中止整个打包。
// 调用方取消 ctx (例如客户端断开) 不会中止已开始的生成。
func (s *documentService) GenerateDocumentBundle(ctx context.Context, caseID int64) (string, error) {
	ctx = context.WithoutCancel(ctx)
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return "", err
	}
	kinds, err := s.dispatchList(c.CaseType)
	if err != nil {
		return "", err
	}
	folios, err := s.buildPayloads(ctx, c)
	if err != nil {
		return "", err
	}

	log := logging.L().With(zap.Int64("caseId", c.ID), zap.String("caseType", string(c.CaseType)))
	root := filepath.Join(s.opts.OutputDir, fmt.Sprintf("doc_%d_%d", c.ID, s.opts.Now().UnixMilli()))
	defer removeTree(root, log)

	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}
	generated := 0
	for _, fp := range folios {
		if err := os.MkdirAll(filepath.Join(root, fp.Folder), 0o755); err != nil {
			return "", fmt.Errorf("创建 folio 目录失败: %w", err)
		}
		for _, kind := range kinds {
			n, err := generateKind(root, fp, kind)
			if err != nil {
				return "", err
			}
			generated += n
		}
	}

	zipPath := root + ".zip"
	if err := utils.ZipDir(root, zipPath); err != nil {
		return "", fmt.Errorf("打包文档失败: %w", err)
	}
	absPath, err := filepath.Abs(zipPath)
	if err != nil {
		absPath = zipPath
	}
	log.Info("案件文档已生成", zap.Int("folios", len(folios)), zap.Int("documents", generated), zap.String("zip", absPath))

	if s.opts.Archiver != nil {
		if key, err := s.opts.Archiver.Archive(ctx, absPath); err != nil {
			log.Warn("归档文档包失败", zap.String("zip", absPath), zap.Error(err))
		} else {
			log.Info("文档包已归档", zap.String("key", key))
		}
	}
	return absPath, nil
}

// generateKind 单份类型写在 folio 目录下；多份类型写在以类型命名的子目录下，编号 1..N
func generateKind(root string, fp FolioPayload, kind docgen.Kind) (int, error) {
	dir := filepath.Join(root, fp.Folder)
	if !kind.MultiInstance() {
		path := filepath.Join(dir, fmt.Sprintf("%s_1.docx", kind))
		if _, err := docgen.Generate(kind, fp.Payload, 0, path); err != nil {
			return 0, err
		}
		return 1, nil
	}

	count := kind.Count(fp.Payload)
	for i := 0; i < count; i++ {
		path := filepath.Join(dir, string(kind), fmt.Sprintf("%s_%d.docx", kind, i+1))
		if _, err := docgen.Generate(kind, fp.Payload, i, path); err != nil {
			return i, err
		}
	}
	return count, nil
}

func removeTree(root string, log *zap.Logger) {
	if err := os.RemoveAll(root); err != nil {
		log.Warn("删除临时目录失败", zap.String("dir", root), zap.Error(err))
	}
}

// BuildFolioPayloads 组装每个 folio 的文档数据
func (s *documentService) BuildFolioPayloads(ctx context.Context, caseID int64) ([]FolioPayload, error) {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return s.buildPayloads(ctx, c)
}

func (s *documentService) loadCase(ctx context.Context, caseID int64) (*models.Case, error) {
	c, err := s.repos.Cases.GetWithChain(ctx, caseID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	if c.ShareCertificate == nil {
		return nil, fmt.Errorf("%w: 案件 %d 的证书批次", ErrNotFound, caseID)
	}
	return c, nil
}

func (s *documentService) dispatchList(ct models.CaseType) ([]docgen.Kind, error) {
	kinds, err := docgen.DispatchList(ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCaseType, err)
	}
	if s.opts.IncludeAffidavits {
		kinds = append(kinds, docgen.KindAffidavit)
	}
	return kinds, nil
}

// caseRows 是一次打包过程中读取的全部关联记录
type caseRows struct {
	folios       []models.Folio
	claimants    []models.LegalHeirDetail
	projectHeirs []models.LegalHeirDetail
	nominations  []models.Nomination
	order        []models.ShareHolderDetail
	holders      map[int64]models.ShareHolderDetail
	deponents    []docgen.Person
}

// resolveRows 与 ResolveCaseView 使用同样的 id 列表规则；
// 宣誓人只在开启 IncludeAffidavits 时解析。解析失败统一视为 NotFound。
func (s *documentService) resolveRows(ctx context.Context, c *models.Case) (*caseRows, error) {
	notFound := func(field string, err error) error {
		return fmt.Errorf("%w: 解析 %s 失败: %w", ErrNotFound, field, err)
	}

	rows := &caseRows{}
	var err error
	if rows.folios, err = s.repos.Folios.FindByIDs(ctx, c.Folios); err != nil {
		return nil, notFound("folios", err)
	}
	if rows.claimants, err = s.repos.LegalHeirs.FindByIDs(ctx, c.SelectClaimant); err != nil {
		return nil, notFound("selectClaimant", err)
	}
	if rows.nominations, err = s.repos.Nominations.FindByIDs(ctx, c.SelectNomination); err != nil {
		return nil, notFound("selectNomination", err)
	}
	if rows.order, err = s.repos.ShareHolders.FindByIDs(ctx, c.TranspositionOrder); err != nil {
		return nil, notFound("transpositionOrder", err)
	}
	if rows.projectHeirs, err = s.repos.LegalHeirs.FindByProjectID(ctx, c.ShareCertificate.ProjectID); err != nil {
		return nil, notFound("legal heirs", err)
	}

	// 所有 folio 的持有人槽位与身故持有人一次查询
	var holderIDs models.IDList
	for _, f := range rows.folios {
		for _, ref := range f.ShareholderSlots() {
			if ref != nil {
				holderIDs = append(holderIDs, *ref)
			}
		}
	}
	if c.DeadShareholderID != nil {
		holderIDs = append(holderIDs, *c.DeadShareholderID)
	}
	holders, err := s.repos.ShareHolders.FindByIDs(ctx, holderIDs)
	if err != nil {
		return nil, notFound("shareholders", err)
	}
	rows.holders = make(map[int64]models.ShareHolderDetail, len(holders))
	for _, h := range holders {
		rows.holders[h.ID] = h
	}

	if s.opts.IncludeAffidavits && models.Flag(c.AllowAffidavit) {
		shareholders, err := s.repos.ShareHolders.FindByIDs(ctx, c.SelectAffidavitShareholder)
		if err != nil {
			return nil, notFound("selectAffidavitShareholder", err)
		}
		for _, h := range shareholders {
			rows.deponents = append(rows.deponents, docgen.PersonFromShareholder(h))
		}
		if c.CaseType.IsTransmission() {
			heirs, err := s.repos.LegalHeirs.FindByIDs(ctx, c.SelectAffidavitLegalHeir)
			if err != nil {
				return nil, notFound("selectAffidavitLegalHeir", err)
			}
			for _, h := range heirs {
				rows.deponents = append(rows.deponents, docgen.PersonFromLegalHeir(h))
			}
		}
	}
	return rows, nil
}

func (s *documentService) buildPayloads(ctx context.Context, c *models.Case) ([]FolioPayload, error) {
	rows, err := s.resolveRows(ctx, c)
	if err != nil {
		return nil, err
	}
	now := s.opts.Now()

	base := docgen.Payload{
		CaseID:             c.ID,
		CaseType:           c.CaseType,
		Date:               now.Format(utils.DisplayDateLayout),
		IsDeceased:         models.Flag(c.IsDeceased),
		DateOfDeath:        utils.FormatDate(c.DOD),
		PlaceOfDeath:       c.PlaceOfDeath,
		IsTestate:          models.Flag(c.IsTestate),
		IsMinor:            models.Flag(c.IsMinor),
		MinorDOB:           utils.FormatDate(c.DOBMinor),
		GuardianName:       c.GuardianName,
		GuardianRelation:   c.GuardianRelation,
		GuardianPAN:        c.GuardianPAN,
		AffidavitDeponents: rows.deponents,
	}
	fillCompany(&base, c.ShareCertificate.Company)

	base.Claimants = make([]docgen.Person, len(rows.claimants))
	for i, h := range rows.claimants {
		base.Claimants[i] = docgen.PersonFromLegalHeir(h)
	}
	base.LegalHeirs = make([]docgen.Person, len(rows.projectHeirs))
	for i, h := range rows.projectHeirs {
		base.LegalHeirs[i] = docgen.PersonFromLegalHeir(h)
	}
	base.NonClaimants = NonClaimants(base.LegalHeirs, base.Claimants)
	base.Nominees = make([]docgen.Nominee, len(rows.nominations))
	for i, n := range rows.nominations {
		base.Nominees[i] = docgen.NomineeFrom(n, n.MinorNominee(now))
	}
	base.TranspositionOrder = make([]string, len(rows.order))
	for i, h := range rows.order {
		base.TranspositionOrder[i] = h.Name
	}
	if c.DeadShareholderID != nil {
		if dead, ok := rows.holders[*c.DeadShareholderID]; ok {
			base.DeceasedName = dead.Name
		}
	}

	out := make([]FolioPayload, 0, len(rows.folios))
	seen := make(map[string]bool, len(rows.folios))
	for _, f := range rows.folios {
		p := base // 切片字段在各 folio 之间只读共享
		fillFolio(&p, f, rows.holders, c.DeadShareholderID)

		folder := folioFolder(f)
		if seen[folder] {
			folder += "_" + strconv.FormatInt(f.ID, 10)
		}
		seen[folder] = true
		out = append(out, FolioPayload{FolioID: f.ID, Folder: folder, Payload: &p})
	}
	return out, nil
}

// fillCompany 公司名称取自名称历史；companyOldName2 无历史时回落为当前名称
func fillCompany(p *docgen.Payload, company *models.CompanyMaster) {
	if company == nil {
		return
	}
	p.CompanyName = company.CurrentName()
	p.CompanyOldName = company.PreviousName()
	p.CompanyOldName2 = p.CompanyOldName
	if p.CompanyOldName2 == "" {
		p.CompanyOldName2 = p.CompanyName
	}
	p.CompanyTicker = company.CurrentTicker()
	p.CompanyISIN = company.ISIN
	p.CompanyCIN = company.CIN
	p.CompanyAddress = company.Address
	p.FaceValue = docgen.FormatAmount(company.FaceValue)

	branch := company.RegistrarMasterBranch
	if branch == nil {
		return
	}
	p.RTABranch = branch.BranchName
	p.RTAAddress = joinNonEmpty(branch.Address, branch.City, branch.State, branch.PinCode)
	p.RTAContactPerson = branch.ContactPerson
	p.RTAEmail = branch.Email
	p.RTAPhone = branch.Phone
	if rta := branch.RegistrarMaster; rta != nil {
		p.RTAName = rta.RegistrarName
		p.RTASebiRegNo = rta.SebiRegNo
		if p.RTAAddress == "" {
			p.RTAAddress = rta.Address
		}
		if p.RTAEmail == "" {
			p.RTAEmail = rta.Email
		}
		if p.RTAPhone == "" {
			p.RTAPhone = rta.Phone
		}
	}
}

// fillFolio 填充合计股数、证书行、持有人槽位与在世持有人
func fillFolio(p *docgen.Payload, f models.Folio, holders map[int64]models.ShareHolderDetail, deadID *int64) {
	p.FolioNumber = f.FolioNumber
	p.CombinedTotalNoOfShares = f.TotalShares()
	p.CombinedTotalNoOfSharesWords = utils.SharesInWords(p.CombinedTotalNoOfShares)

	p.Certificates = make([]docgen.CertificateLine, len(f.Certificates))
	for i, cert := range f.Certificates {
		p.Certificates[i] = docgen.CertificateLineFrom(i+1, cert)
	}

	latest := f.LatestCertificate()
	p.Survivors = []string{}
	for i, ref := range f.ShareholderSlots() {
		slot := docgen.ShareholderSlot{Slot: i + 1}
		if ref == nil {
			p.Shareholders[i] = slot
			continue
		}
		slot.Present = true
		if h, ok := holders[*ref]; ok {
			slot.Person = docgen.PersonFromShareholder(h)
		} else {
			slot.ID = *ref
		}
		if latest != nil {
			slot.NameOnCertificate = latest.NameTxt(i + 1)
		}
		p.Shareholders[i] = slot

		if deadID != nil && *ref == *deadID {
			if name := slot.DisplayName(); name != "" {
				p.DeceasedName = name
			}
			continue
		}
		if name := slot.DisplayName(); name != "" {
			p.Survivors = append(p.Survivors, name)
		}
	}
}

// NonClaimants 是项目下全部继承人减去已选申请人 (按 id 求差集)
func NonClaimants(heirs, claimants []docgen.Person) []docgen.Person {
	idOf := func(p docgen.Person) int64 { return p.ID }
	return utils.ExcludeByID(heirs, utils.IDsOf(claimants, idOf), idOf)
}

var unsafeFolderChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// folioFolder 以 folio 号命名目录，空号码时用 id
func folioFolder(f models.Folio) string {
	name := unsafeFolderChars.ReplaceAllString(f.FolioNumber, "_")
	if name == "" || name == "_" {
		return fmt.Sprintf("Folio_%d", f.ID)
	}
	return "Folio_" + name
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, s := range parts {
		if s == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += s
	}
	return out
}
