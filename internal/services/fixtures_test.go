package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/repositories"
	"github.com/share_registry/pkg/db"
)

// newTestDB 为每个测试创建独立的 sqlite 文件
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := db.Open("sqlite", filepath.Join(t.TempDir(), "registry.db"), logger.Silent)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return conn
}

func caseRepos(conn *gorm.DB) CaseRepositories {
	return CaseRepositories{
		Cases:        repositories.NewGormCaseRepository(conn),
		Folios:       repositories.NewGormFolioRepository(conn),
		ShareHolders: repositories.NewGormShareHolderRepository(conn),
		LegalHeirs:   repositories.NewGormLegalHeirRepository(conn),
		Nominations:  repositories.NewGormNominationRepository(conn),
	}
}

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// registryFixture 是一套完整的证书批次数据：
// 两个 folio，三个持有人，三个继承人，两个提名人
type registryFixture struct {
	Company     models.CompanyMaster
	Certificate models.ShareCertificate
	Holders     []models.ShareHolderDetail
	Heirs       []models.LegalHeirDetail
	Nominations []models.Nomination
	Folios      []models.Folio
}

func seedRegistry(t *testing.T, conn *gorm.DB, companyNames ...string) *registryFixture {
	t.Helper()
	if len(companyNames) == 0 {
		companyNames = []string{"Acme Mills Ltd", "Acme Industries Ltd"}
	}
	f := &registryFixture{}

	rta := models.RegistrarMaster{RegistrarName: "Link Registry Pvt Ltd", SebiRegNo: "INR000004058", Address: "C-101, LBS Marg, Mumbai"}
	require.NoError(t, conn.Create(&rta).Error)
	branch := models.RegistrarMasterBranch{RegistrarMasterID: rta.ID, BranchName: "Pune", City: "Pune", State: "MH"}
	require.NoError(t, conn.Create(&branch).Error)

	f.Company = models.CompanyMaster{ISIN: "INE000A01010", FaceValue: 10, RegistrarMasterBranchID: &branch.ID}
	require.NoError(t, conn.Omit("NameChanges", "RegistrarMasterBranch").Create(&f.Company).Error)
	for i, name := range companyNames {
		nc := models.NameChangeMaster{
			CompanyID:        f.Company.ID,
			CompanyName:      name,
			Ticker:           "ACME",
			DateOfNameChange: time.Date(2000+i, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, conn.Create(&nc).Error)
	}

	project := models.Project{Name: "Shah estate"}
	require.NoError(t, conn.Create(&project).Error)
	f.Certificate = models.ShareCertificate{ProjectID: project.ID, CompanyID: f.Company.ID}
	require.NoError(t, conn.Create(&f.Certificate).Error)

	for _, name := range []string{"Ramesh Shah", "Sita Shah", "Vijay Shah"} {
		h := models.ShareHolderDetail{PersonDetail: models.PersonDetail{ProjectID: project.ID, Name: name, PAN: "ABCDE1234F"}}
		require.NoError(t, conn.Create(&h).Error)
		f.Holders = append(f.Holders, h)
	}
	for _, name := range []string{"Meera Shah", "Arun Shah", "Kiran Shah"} {
		h := models.LegalHeirDetail{PersonDetail: models.PersonDetail{ProjectID: project.ID, Name: name}, DeceasedRelationship: "Child"}
		require.NoError(t, conn.Create(&h).Error)
		f.Heirs = append(f.Heirs, h)
	}
	for _, name := range []string{"Meera Shah", "Arun Shah"} {
		n := models.Nomination{ProjectID: project.ID, NomineeName: name, NomineeRelationship: "Child", NomineeDOB: date("1990-05-01")}
		require.NoError(t, conn.Create(&n).Error)
		f.Nominations = append(f.Nominations, n)
	}

	folioA := models.Folio{
		ShareCertificateID: f.Certificate.ID,
		FolioNumber:        "A/0042",
		ShareholderName1:   &f.Holders[0].ID,
		ShareholderName2:   &f.Holders[1].ID,
	}
	folioB := models.Folio{
		ShareCertificateID: f.Certificate.ID,
		FolioNumber:        "B0077",
		ShareholderName1:   &f.Holders[2].ID,
	}
	require.NoError(t, conn.Create(&folioA).Error)
	require.NoError(t, conn.Create(&folioB).Error)

	certs := []models.Certificate{
		{FolioID: folioA.ID, CertificateNumber: "1001", NoOfShares: 100, DistinctiveNoFrom: 1, DistinctiveNoTo: 100, ActionDate: date("2001-01-01"), ShareholderName1Txt: "R K Shah"},
		{FolioID: folioA.ID, CertificateNumber: "1002", NoOfShares: 150, DistinctiveNoFrom: 101, DistinctiveNoTo: 250, ActionDate: date("2005-01-01"), ShareholderName1Txt: "R K Shah", ShareholderName2Txt: "S Shah"},
		{FolioID: folioB.ID, CertificateNumber: "2001", NoOfShares: 40, DistinctiveNoFrom: 251, DistinctiveNoTo: 290, ActionDate: date("2003-01-01")},
	}
	require.NoError(t, conn.Create(&certs).Error)

	repo := repositories.NewGormFolioRepository(conn)
	folios, err := repo.FindByIDs(context.Background(), models.IDList{folioA.ID, folioB.ID})
	require.NoError(t, err)
	f.Folios = folios
	return f
}

func (f *registryFixture) holderID(i int) int64 { return f.Holders[i].ID }

func (f *registryFixture) heirIDs(idx ...int) models.IDList {
	ids := models.IDList{}
	for _, i := range idx {
		ids = append(ids, f.Heirs[i].ID)
	}
	return ids
}

func (f *registryFixture) folioIDs() models.IDList {
	return models.IDList{f.Folios[0].ID, f.Folios[1].ID}
}

func (f *registryFixture) nominationIDs() models.IDList {
	return models.IDList{f.Nominations[0].ID, f.Nominations[1].ID}
}

// casePayload 返回一个可直接创建的案件请求体
func (f *registryFixture) casePayload(ct models.CaseType) models.CasePayload {
	dead := f.holderID(0)
	return models.CasePayload{
		CaseType:           ct,
		ShareCertificateID: f.Certificate.ID,
		Folios:             f.folioIDs(),
		SelectClaimant:     f.heirIDs(1),
		SelectNomination:   f.nominationIDs(),
		TranspositionOrder: models.IDList{f.holderID(1)},
		IsDeceased:         models.FlagYes,
		IsTestate:          models.FlagNo,
		AllowAffidavit:     models.FlagNo,
		DeadShareholderID:  &dead,
		DOD:                "2024-02-01",
		PlaceOfDeath:       "Pune",
	}
}
