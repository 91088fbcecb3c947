package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want IDList
	}{
		{"empty", "", IDList{}},
		{"blank", "   ", IDList{}},
		{"single", "7", IDList{7}},
		{"several", "3_5_9", IDList{3, 5, 9}},
		{"drops junk", "3_abc_5", IDList{3, 5}},
		{"only junk", "id_abc_id", IDList{}},
		{"keeps duplicates", "4_4", IDList{4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIDList(tt.in))
		})
	}
}

func TestIDList_StringAndUnique(t *testing.T) {
	l := IDList{3, 5, 3, 9, 5}
	assert.Equal(t, "3_5_3_9_5", l.String())
	assert.Equal(t, IDList{3, 5, 9}, l.Unique())
	assert.Equal(t, "", IDList{}.String())
}

func TestIDList_JSON(t *testing.T) {
	var payload struct {
		Folios IDList `json:"folios"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"folios":[3,5]}`), &payload))
	assert.Equal(t, IDList{3, 5}, payload.Folios)

	require.NoError(t, json.Unmarshal([]byte(`{"folios":"10_11"}`), &payload))
	assert.Equal(t, IDList{10, 11}, payload.Folios)

	require.NoError(t, json.Unmarshal([]byte(`{"folios":null}`), &payload))
	assert.Equal(t, IDList{}, payload.Folios)

	assert.Error(t, json.Unmarshal([]byte(`{"folios":{"a":1}}`), &payload))

	out, err := json.Marshal(struct {
		Folios IDList `json:"folios"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"folios":[]}`, string(out))
}

func TestIDList_Scan(t *testing.T) {
	var l IDList
	require.NoError(t, l.Scan("1_2"))
	assert.Equal(t, IDList{1, 2}, l)

	require.NoError(t, l.Scan([]byte("8")))
	assert.Equal(t, IDList{8}, l)

	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)

	assert.Error(t, l.Scan(42))

	v, err := IDList{4, 6}.Value()
	require.NoError(t, err)
	assert.Equal(t, "4_6", v)
}

func TestCaseType(t *testing.T) {
	assert.True(t, CaseTypeDeletionTransposition.Valid())
	assert.False(t, CaseType("Gift").Valid())
	assert.True(t, CaseTypeTransmissionIssueDuplicate.IsTransmission())
	assert.False(t, CaseTypeClaim.IsTransmission())

	assert.True(t, Flag(FlagYes))
	assert.False(t, Flag(FlagNo))
	assert.False(t, Flag(""))
	assert.True(t, ValidFlag(""))
	assert.False(t, ValidFlag("yes"))
}

func TestCompanyMaster_NameHistory(t *testing.T) {
	d := func(s string) time.Time {
		v, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return v
	}
	c := CompanyMaster{NameChanges: []NameChangeMaster{
		{ID: 3, CompanyName: "Acme Industries Ltd", Ticker: "ACMI", DateOfNameChange: d("2001-06-01")},
		{ID: 1, CompanyName: "Acme Mills Ltd", Ticker: "ACMM", DateOfNameChange: d("2000-01-01")},
		{ID: 2, CompanyName: "Acme Mills & Co", Ticker: "ACMC", DateOfNameChange: d("2000-01-01")},
	}}

	sorted := c.SortedNameChanges()
	require.Len(t, sorted, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	assert.Equal(t, int64(3), c.NameChanges[0].ID, "original slice untouched")

	assert.Equal(t, "Acme Industries Ltd", c.CurrentName())
	assert.Equal(t, "Acme Mills & Co", c.PreviousName())
	assert.Equal(t, "ACMI", c.CurrentTicker())

	single := CompanyMaster{NameChanges: c.NameChanges[:1]}
	assert.Equal(t, "", single.PreviousName())
	assert.Equal(t, "", CompanyMaster{}.CurrentName())
}

func TestFolio_Shares(t *testing.T) {
	f := Folio{Certificates: []Certificate{
		{NoOfShares: 100, ShareholderName1Txt: "R K Shah"},
		{NoOfShares: 150, ShareholderName2Txt: "S Shah"},
	}}
	assert.Equal(t, int64(250), f.TotalShares())
	latest := f.LatestCertificate()
	require.NotNil(t, latest)
	assert.Equal(t, "S Shah", latest.NameTxt(2))
	assert.Equal(t, "", latest.NameTxt(4))

	huge := Folio{Certificates: []Certificate{{NoOfShares: math.MaxInt64 - 5}, {NoOfShares: 10}, {NoOfShares: 1}}}
	assert.Equal(t, int64(math.MaxInt64), huge.TotalShares())

	assert.Nil(t, Folio{}.LatestCertificate())
	assert.Zero(t, Folio{}.TotalShares())
}

func TestNomination_MinorNominee(t *testing.T) {
	at := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	dob := func(y, m, d int) *time.Time {
		v := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	assert.True(t, Nomination{NomineeDOB: dob(2010, 1, 1)}.MinorNominee(at))
	assert.True(t, Nomination{NomineeDOB: dob(2008, 10, 20)}.MinorNominee(at))
	assert.False(t, Nomination{NomineeDOB: dob(2008, 10, 19)}.MinorNominee(at))
	assert.False(t, Nomination{}.MinorNominee(at))
}

func TestListQuery_Normalize(t *testing.T) {
	q := ListQuery{Page: -1, Limit: 500, SortOrder: "sideways"}
	q.Normalize()
	assert.Equal(t, ListQuery{Page: 1, Limit: 100, SortOrder: "desc"}, q)

	q = ListQuery{Page: 3, Limit: 20, SortOrder: "asc"}
	q.Normalize()
	assert.Equal(t, 40, q.Offset())
}
