package docgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/share_registry/internal/models"
)

func samplePayload() *Payload {
	p := &Payload{
		CaseID:                       7,
		CaseType:                     models.CaseTypeTransmissionIssueDuplicateTransposition,
		Date:                         "19-10-2026",
		CompanyName:                  "Acme Industries Ltd",
		CompanyOldName:               "Acme Mills Ltd",
		CompanyOldName2:              "Acme Mills Ltd",
		CompanyISIN:                  "INE000A01010",
		RTAName:                      "Link Registry Pvt Ltd",
		RTAAddress:                   "C-101, Park, Mumbai",
		FolioNumber:                  "A00042",
		CombinedTotalNoOfShares:      250,
		CombinedTotalNoOfSharesWords: "Two Hundred Fifty",
		Certificates: []CertificateLine{
			{SerialNo: 1, CertificateNumber: "1001", NoOfShares: "100", DistinctiveNos: "1-100", NamesOnCertificate: "R K Shah"},
			{SerialNo: 2, CertificateNumber: "1002", NoOfShares: "150", DistinctiveNos: "101-250", NamesOnCertificate: "R K Shah"},
		},
		Claimants:          []Person{{ID: 1, Name: "Meera Shah", Relationship: "Daughter"}},
		NonClaimants:       []Person{{ID: 2, Name: "Arun Shah", Relationship: "Son"}},
		LegalHeirs:         []Person{{ID: 1, Name: "Meera Shah"}, {ID: 2, Name: "Arun Shah"}},
		Nominees:           []Nominee{{ID: 3, Name: "Meera Shah", IsMinor: true, GuardianName: "Arun Shah"}},
		Survivors:          []string{"S Shah"},
		IsDeceased:         true,
		DeceasedName:       "R K Shah",
		DateOfDeath:        "01-02-2024",
		PlaceOfDeath:       "Pune",
		TranspositionOrder: []string{"S Shah"},
		AffidavitDeponents: []Person{{ID: 5, Name: "Arun Shah"}},
	}
	p.Shareholders[0] = ShareholderSlot{Slot: 1, Present: true, NameOnCertificate: "R K Shah", Person: Person{ID: 11, Name: "Ramesh Shah", City: "Pune"}}
	p.Shareholders[1] = ShareholderSlot{Slot: 2, Present: true, NameOnCertificate: "S Shah", Person: Person{ID: 12, Name: "Sita Shah"}}
	p.Shareholders[2] = ShareholderSlot{Slot: 3}
	return p
}

func TestGenerate_AllKinds(t *testing.T) {
	p := samplePayload()
	dir := t.TempDir()

	for kind := range layouts {
		t.Run(string(kind), func(t *testing.T) {
			path := filepath.Join(dir, string(kind)+"_1.docx")
			msg, err := Generate(kind, p, 0, path)
			require.NoError(t, err)
			assert.Contains(t, msg, path)

			_, err = os.Stat(path)
			assert.NoError(t, err)
		})
	}
}

func TestBuild_Content(t *testing.T) {
	p := samplePayload()

	doc, err := Build(KindISR4, p, 0)
	require.NoError(t, err)
	text := doc.Text()
	assert.Contains(t, text, "Acme Industries Ltd")
	assert.Contains(t, text, "1-100")
	assert.Contains(t, text, "101-250")
	assert.Contains(t, text, "250")

	doc, err = Build(KindAnnexureF, p, 0)
	require.NoError(t, err)
	assert.Contains(t, doc.Text(), "Two Hundred Fifty")
	assert.Contains(t, doc.Text(), "Arun Shah")

	doc, err = Build(KindSH13, p, 0)
	require.NoError(t, err)
	assert.Contains(t, doc.Text(), "Particulars of the Guardian")
}

func TestBuild_IndexOutOfRange(t *testing.T) {
	p := samplePayload()

	_, err := Build(KindISR2, p, 1)
	assert.True(t, errors.Is(err, ErrIndexOutRange))

	p.Claimants = nil
	_, err = Build(KindISR5, p, 0)
	assert.True(t, errors.Is(err, ErrIndexOutRange))

	// 单份类型忽略下标
	_, err = Build(KindISR1, p, 5)
	assert.NoError(t, err)
}

func TestBuild_UnknownKind(t *testing.T) {
	_, err := Build(Kind("ISR9"), samplePayload(), 0)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestGenerate_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Generate(KindISR1, samplePayload(), 0, filepath.Join(blocker, "ISR1_1.docx"))
	assert.Error(t, err)
}

func TestCertificateLineFrom(t *testing.T) {
	line := CertificateLineFrom(3, models.Certificate{
		CertificateNumber:   "C-9",
		NoOfShares:          75,
		DistinctiveNoFrom:   501,
		DistinctiveNoTo:     575,
		FaceValue:           10,
		ShareholderName1Txt: "A",
		ShareholderName3Txt: "C",
	})

	assert.Equal(t, 3, line.SerialNo)
	assert.Equal(t, "75", line.NoOfShares)
	assert.Equal(t, "501-575", line.DistinctiveNos)
	assert.Equal(t, "10", line.FaceValue)
	assert.Equal(t, "", line.DateOfAllotment)
	assert.Equal(t, "A, C", line.NamesOnCertificate)
}
