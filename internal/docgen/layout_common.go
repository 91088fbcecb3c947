package docgen

import (
	"fmt"
	"strconv"
	"strings"
)

var certificateHeaders = []string{
	"Sr. No.", "Folio No.", "Certificate No.", "Distinctive Nos.", "No. of Shares", "Face Value", "Name(s) on Certificate",
}

// addressee 输出致 RTA 的抬头
func addressee(d *Document, p *Payload) {
	d.Right("Date: " + p.Date)
	d.Lines("To,", p.RTAName)
	if p.RTABranch != "" {
		d.Lines(p.RTABranch)
	}
	d.Lines(p.RTAAddress)
	d.Blank()
	d.Runs(Bold("Unit: "), Plain(p.CompanyName))
	if p.CompanyOldName != "" {
		d.Runs(Bold("(Formerly known as: "), Plain(p.CompanyOldName), Bold(")"))
	}
	d.Blank()
}

// securitiesTable 证券基本信息
func securitiesTable(d *Document, p *Payload) {
	d.KeyValueTable([][2]string{
		{"Name of the Issuer Company", p.CompanyName},
		{"ISIN", p.CompanyISIN},
		{"Folio No.", p.FolioNumber},
		{"Name(s) of the Security Holder(s) as per the Certificate(s)", strings.Join(p.HolderNames(), ", ")},
		{"Total No. of Securities", totalShares(p)},
	})
}

func totalShares(p *Payload) string {
	return fmt.Sprintf("%d (%s Only)", p.CombinedTotalNoOfShares, p.CombinedTotalNoOfSharesWords)
}

// certificateTable 每张证书一行，末行为合计
func certificateTable(d *Document, p *Payload) {
	rows := make([][]string, 0, len(p.Certificates)+1)
	for _, c := range p.Certificates {
		rows = append(rows, []string{
			strconv.Itoa(c.SerialNo), p.FolioNumber, c.CertificateNumber, c.DistinctiveNos,
			c.NoOfShares, c.FaceValue, c.NamesOnCertificate,
		})
	}
	rows = append(rows, []string{"", "", "", "Total", strconv.FormatInt(p.CombinedTotalNoOfShares, 10), "", ""})
	d.Table(certificateHeaders, rows)
}

// holderKYCTable 每个持有人一列的 KYC 表
func holderKYCTable(d *Document, holders []ShareholderSlot) {
	if len(holders) == 0 {
		return
	}
	headers := []string{"Particulars"}
	for _, h := range holders {
		headers = append(headers, fmt.Sprintf("Holder %d", h.Slot))
	}
	field := func(label string, get func(ShareholderSlot) string) []string {
		row := []string{label}
		for _, h := range holders {
			row = append(row, get(h))
		}
		return row
	}
	d.Table(headers, [][]string{
		field("Name", func(h ShareholderSlot) string { return h.DisplayName() }),
		field("PAN", func(h ShareholderSlot) string { return h.PAN }),
		field("Mobile", func(h ShareholderSlot) string { return h.Mobile }),
		field("E-mail", func(h ShareholderSlot) string { return h.Email }),
		field("Address", func(h ShareholderSlot) string { return h.FullAddress() }),
		field("Bank Name", func(h ShareholderSlot) string { return h.BankName }),
		field("Bank Branch", func(h ShareholderSlot) string { return h.BankBranch }),
		field("Account No.", func(h ShareholderSlot) string { return h.AccountNumber }),
		field("Account Type", func(h ShareholderSlot) string { return h.AccountType }),
		field("IFSC", func(h ShareholderSlot) string { return h.IFSC }),
		field("MICR", func(h ShareholderSlot) string { return h.MICR }),
	})
}

// personTable 单人的完整信息
func personTable(d *Document, person Person) {
	d.KeyValueTable([][2]string{
		{"Name", person.Name},
		{"Father's / Husband's Name", person.FatherName},
		{"Relationship with the Deceased", person.Relationship},
		{"Date of Birth", person.DOB},
		{"Age", person.Age},
		{"Occupation", person.Occupation},
		{"PAN", person.PAN},
		{"Aadhaar", person.Aadhaar},
		{"Address", person.FullAddress()},
		{"Mobile", person.Mobile},
		{"E-mail", person.Email},
	})
}

// bankTable 单人的银行信息
func bankTable(d *Document, person Person) {
	d.KeyValueTable([][2]string{
		{"Bank Name", person.BankName},
		{"Branch", person.BankBranch},
		{"Bank Address", person.BankAddress},
		{"Account No.", person.AccountNumber},
		{"Account Type", person.AccountType},
		{"IFSC", person.IFSC},
		{"MICR", person.MICR},
		{"Demat Account (DP ID / Client ID)", person.DematAccount},
	})
}

// peopleTable 多人的摘要表
func peopleTable(d *Document, people []Person) {
	rows := make([][]string, len(people))
	for i, person := range people {
		rows[i] = []string{
			strconv.Itoa(i + 1), person.Name, person.Relationship, person.Age, person.PAN, person.FullAddress(),
		}
	}
	d.Table([]string{"Sr. No.", "Name", "Relationship", "Age", "PAN", "Address"}, rows)
}

func names(people []Person) []string {
	out := make([]string, len(people))
	for i, person := range people {
		out[i] = person.Name
	}
	return out
}

// deceasedParagraph 身故持有人说明
func deceasedParagraph(d *Document, p *Payload) {
	if !p.IsDeceased {
		return
	}
	text := fmt.Sprintf("%s, one of the registered holder(s) of the above securities, expired on %s", p.DeceasedName, p.DateOfDeath)
	if p.PlaceOfDeath != "" {
		text += " at " + p.PlaceOfDeath
	}
	if p.IsTestate {
		text += ", leaving behind a Will."
	} else {
		text += ", without leaving any Will (intestate)."
	}
	d.Paragraph(text)
}

func place(p *Payload) string {
	for _, h := range p.Shareholders {
		if h.Present && h.City != "" {
			return h.City
		}
	}
	return ""
}

func placeAndDate(d *Document, p *Payload) {
	d.Field("Place", place(p))
	d.Field("Date", p.Date)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
