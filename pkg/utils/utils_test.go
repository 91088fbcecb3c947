package utils

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{7, "seven"},
		{19, "nineteen"},
		{40, "forty"},
		{250, "two hundred fifty"},
		{1001, "one thousand one"},
		{100000, "one lakh"},
		{1234567, "twelve lakh thirty-four thousand five hundred sixty-seven"},
		{1000000000, "one hundred crore"},
		{-12, ""},
		{math.MinInt64, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumberToWords(tt.n), "n=%d", tt.n)
	}
	assert.True(t, strings.HasSuffix(NumberToWords(math.MaxInt64), "crore forty-seven lakh seventy-five thousand eight hundred seven"))
}

func TestSharesInWords(t *testing.T) {
	assert.Equal(t, "Two Hundred Fifty", SharesInWords(250))
	assert.Equal(t, "One Lakh", SharesInWords(100000))
	assert.Equal(t, "Zero", SharesInWords(0))
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-02-01", "2024/2/1", "01-02-2024", "1/2/2024", " 2024-02-01 "} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	for _, in := range []string{"", "2024-13-45", "yesterday"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, in)
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalDate("2024-02-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "01-02-2024", FormatDate(got))

	_, err = ParseOptionalDate("31-31-2024")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(nil))
	assert.Equal(t, "", FormatDate(&time.Time{}))
	d := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "19-10-2026", FormatDate(&d))
}

func TestValidatePAN(t *testing.T) {
	assert.NoError(t, ValidatePAN(""))
	assert.NoError(t, ValidatePAN("abcde1234f"))
	assert.ErrorIs(t, ValidatePAN("ABCDE12345"), ErrInvalidPANFormat)
	assert.ErrorIs(t, ValidatePAN("AB1"), ErrInvalidPANFormat)
}

func TestValidationDetails_PlainError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, ValidationDetails(errors.New("boom")))
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total       int64
		page, limit int
		wantPages   int64
	}{
		{0, 1, 10, 0},
		{1, 1, 10, 1},
		{10, 1, 10, 1},
		{11, 2, 10, 2},
		{5, 1, 0, 1},
	}
	for _, tt := range tests {
		p := NewPagination(tt.total, tt.page, tt.limit)
		assert.Equal(t, tt.wantPages, p.TotalPages, "total=%d limit=%d", tt.total, tt.limit)
		assert.Equal(t, tt.total, p.TotalItems)
		assert.Equal(t, tt.page, p.CurrentPage)
	}
}

type item struct{ id int64 }

func TestExcludeByID(t *testing.T) {
	idOf := func(i item) int64 { return i.id }
	items := []item{{1}, {2}, {3}, {4}}

	got := ExcludeByID(items, []int64{2, 4, 9}, idOf)
	assert.Equal(t, []int64{1, 3}, IDsOf(got, idOf))
	assert.Len(t, ExcludeByID(items, nil, idOf), 4)
	assert.Empty(t, ExcludeByID(nil, []int64{1}, idOf))
}

func TestZipDir(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "Folio_A", "ISR1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "Folio_A", "ISR1", "ISR1_1.docx"), []byte("one"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "readme.txt"), []byte("two"), 0o644))

	dst := filepath.Join(t.TempDir(), "bundle.zip")
	require.NoError(t, ZipDir(src, dst))

	r, err := zip.OpenReader(dst)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"Folio_A/", "Folio_A/ISR1/", "Folio_A/ISR1/ISR1_1.docx", "readme.txt"}, names)
}

func TestZipDir_MissingSourceRemovesOutput(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "bundle.zip")
	err := ZipDir(filepath.Join(t.TempDir(), "missing"), dst)
	require.Error(t, err)
	assert.NoFileExists(t, dst)
}
