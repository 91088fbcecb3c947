package docgen

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// documentXML 写盘后读回 word/document.xml
func documentXML(t *testing.T, d *Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.docx")
	require.NoError(t, d.WriteFile(path))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatal("word/document.xml missing")
	return ""
}

func TestDocument_WriteFile(t *testing.T) {
	d := NewDocument("Form <A> & B")
	d.Paragraph("Shares of M/s Tata & Sons")
	d.Table([]string{"No.", "Name"}, [][]string{{"1", "Ravi"}, {"2"}})

	body := documentXML(t, d)
	assert.Contains(t, body, "Tata &amp; Sons")
	assert.Contains(t, body, "Form &lt;A&gt; &amp; B")
	assert.NotContains(t, body, "Tata & Sons")
	assert.Contains(t, body, "Ravi")
	assert.Contains(t, body, "<w:tbl>")
}

func TestDocument_Text(t *testing.T) {
	d := NewDocument("Title")
	d.Field("Folio No.", "F-001")
	d.Lines("To,", "", "RTA")

	assert.Equal(t, "Title\nFolio No.: F-001\nTo,\nRTA\n", d.Text())
}

func TestDocument_TablePadsRows(t *testing.T) {
	d := NewDocument("T")
	d.Table([]string{"No.", "Name", "Shares"}, [][]string{{"1", "Ravi"}})

	assert.Equal(t, "T\nNo.\tName\tShares\n1\tRavi\t\n\n", d.Text())
	tbl := d.blocks[1]
	require.Equal(t, blockTable, tbl.kind)
	assert.Equal(t, [][]string{{"1", "Ravi", ""}}, tbl.rows)
}

func TestDocument_MultilineRun(t *testing.T) {
	d := NewDocument("T")
	d.Runs(Bold("Unit: "), Plain("line one\nline two"))

	lines := splitRuns(d.blocks[1].runs)
	require.Len(t, lines, 2)
	assert.Equal(t, []Run{Bold("Unit: "), Plain("line one")}, lines[0])
	assert.Equal(t, []Run{Plain("line two")}, lines[1])

	body := documentXML(t, d)
	assert.Contains(t, body, "line one")
	assert.Contains(t, body, "line two")
	assert.NotContains(t, body, "line one\nline two")
}

func TestDocument_WriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio", "ISR1", "ISR1_1.docx")
	require.NoError(t, NewDocument("ISR1").WriteFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDocument_EmptyTableSkipped(t *testing.T) {
	d := NewDocument("T")
	d.Table(nil, nil)

	assert.Len(t, d.blocks, 1)
	assert.Equal(t, "T\n", d.Text())
}

func TestDocument_Signatures(t *testing.T) {
	d := NewDocument("T")
	d.Signatures("Meera Shah", "Arun Shah")

	tbl := d.blocks[1]
	assert.Equal(t, []string{"Signatory 1", "Signatory 2"}, tbl.headers)
	assert.Equal(t, []string{"Meera Shah", "Arun Shah"}, tbl.rows[1])
	assert.True(t, strings.Contains(d.Text(), "Meera Shah\tArun Shah"))
}
