package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/repositories"
)

func TestCompanyService_CreateUsesFirstNameChange(t *testing.T) {
	conn := newTestDB(t)
	registrars := NewRegistrarService(repositories.NewGormRegistrarRepository(conn))
	branches := NewRegistrarBranchService(repositories.NewGormRegistrarBranchRepository(conn), repositories.NewGormRegistrarRepository(conn))
	companies := NewCompanyService(repositories.NewGormCompanyRepository(conn), repositories.NewGormRegistrarBranchRepository(conn))
	ctx := context.Background()

	rta, err := registrars.CreateRegistrar(ctx, models.RegistrarPayload{RegistrarName: "Link Registry", SebiRegNo: "inr000004058"})
	require.NoError(t, err)
	assert.Equal(t, "INR000004058", rta.SebiRegNo)

	branch, err := branches.CreateBranch(ctx, models.RegistrarBranchPayload{RegistrarMasterID: rta.ID, BranchName: "Pune"})
	require.NoError(t, err)

	company, err := companies.CreateCompany(ctx, models.CompanyPayload{
		CompanyName:             "Acme Mills Ltd",
		Ticker:                  "ACME",
		ISIN:                    "ine000a01010",
		RegistrarMasterBranchID: &branch.ID,
		DateOfNameChange:        "1995-04-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Mills Ltd", company.CompanyName)
	assert.Equal(t, "ACME", company.Ticker)
	assert.Equal(t, "INE000A01010", company.ISIN)
	assert.Empty(t, company.PreviousName)
	require.Len(t, company.NameChanges, 1)

	missing := int64(999)
	_, err = companies.CreateCompany(ctx, models.CompanyPayload{CompanyName: "X", RegistrarMasterBranchID: &missing})
	assert.ErrorIs(t, err, ErrRegistrarBranchNotFound)

	// 被公司引用的分支机构与仍有分支的 RTA 都不能删除
	assert.ErrorIs(t, branches.DeleteBranch(ctx, branch.ID), ErrBranchInUse)
	assert.ErrorIs(t, registrars.DeleteRegistrar(ctx, rta.ID), ErrRegistrarInUse)
	assert.ErrorIs(t, registrars.DeleteRegistrar(ctx, rta.ID), ErrConflict)
}

func TestCompanyService_UpdateOnlyGivenFields(t *testing.T) {
	conn := newTestDB(t)
	companies := NewCompanyService(repositories.NewGormCompanyRepository(conn), repositories.NewGormRegistrarBranchRepository(conn))
	ctx := context.Background()

	created, err := companies.CreateCompany(ctx, models.CompanyPayload{CompanyName: "Acme", Address: "Old address", FaceValue: 10})
	require.NoError(t, err)

	cin := " l17110mh1973plc019786 "
	updated, err := companies.UpdateCompany(ctx, created.ID, models.UpdateCompanyPayload{CIN: &cin})
	require.NoError(t, err)
	assert.Equal(t, "L17110MH1973PLC019786", updated.CIN)
	assert.Equal(t, "Old address", updated.Address)
	assert.Equal(t, 10.0, updated.FaceValue)

	_, err = companies.UpdateCompany(ctx, created.ID+1, models.UpdateCompanyPayload{CIN: &cin})
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	require.NoError(t, companies.DeleteCompany(ctx, created.ID))
	_, err = companies.GetCompany(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNameChangeService_History(t *testing.T) {
	conn := newTestDB(t)
	companyRepo := repositories.NewGormCompanyRepository(conn)
	companies := NewCompanyService(companyRepo, repositories.NewGormRegistrarBranchRepository(conn))
	names := NewNameChangeService(repositories.NewGormNameChangeRepository(conn), companyRepo)
	ctx := context.Background()

	company, err := companies.CreateCompany(ctx, models.CompanyPayload{CompanyName: "Acme Mills Ltd", DateOfNameChange: "1995-04-01"})
	require.NoError(t, err)
	first := company.NameChanges[0]

	// 唯一的名称记录不能删除
	assert.ErrorIs(t, names.DeleteNameChange(ctx, first.ID), ErrLastNameChange)

	renamed, err := names.CreateNameChange(ctx, models.NameChangePayload{
		CompanyID:        company.ID,
		CompanyName:      "Acme Industries Ltd",
		Ticker:           "ACMEIND",
		DateOfNameChange: "2010-07-15",
	})
	require.NoError(t, err)

	got, err := companies.GetCompany(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Industries Ltd", got.CompanyName)
	assert.Equal(t, "Acme Mills Ltd", got.PreviousName)
	assert.Equal(t, "ACMEIND", got.Ticker)

	list, total, err := names.ListNameChanges(ctx, models.ListQuery{}, company.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, list, 2)

	other, err := companies.CreateCompany(ctx, models.CompanyPayload{CompanyName: "Other Ltd"})
	require.NoError(t, err)
	_, err = names.UpdateNameChange(ctx, renamed.ID, models.NameChangePayload{
		CompanyID:        other.ID,
		CompanyName:      "Moved",
		DateOfNameChange: "2010-07-15",
	})
	assert.ErrorIs(t, err, ErrNameChangeCompanyMix)

	require.NoError(t, names.DeleteNameChange(ctx, first.ID))
	assert.ErrorIs(t, names.DeleteNameChange(ctx, renamed.ID), ErrLastNameChange)

	_, err = names.CreateNameChange(ctx, models.NameChangePayload{CompanyID: 999, CompanyName: "Ghost", DateOfNameChange: "2010-07-15"})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestRegistrarBranchService_RequiresRegistrar(t *testing.T) {
	conn := newTestDB(t)
	branches := NewRegistrarBranchService(repositories.NewGormRegistrarBranchRepository(conn), repositories.NewGormRegistrarRepository(conn))

	_, err := branches.CreateBranch(context.Background(), models.RegistrarBranchPayload{RegistrarMasterID: 42, BranchName: "Pune"})
	assert.ErrorIs(t, err, ErrRegistrarNotFound)
}
