package docgen

import (
	"fmt"
	"strings"
)

// buildFormA Form A: 补发证书的宣誓书
func buildFormA(p *Payload, _ int) *Document {
	d := NewDocument("Form A")
	d.SubHeading("Affidavit for Issue of Duplicate Share Certificate(s)")
	d.Note("(On non-judicial stamp paper of appropriate value, duly notarised)")

	holders := strings.Join(p.HolderNames(), ", ")
	d.Paragraph(fmt.Sprintf(
		"I / We, %s, holder(s) of the under mentioned securities of %s (formerly known as %s), do hereby solemnly affirm and declare as follows:",
		holders, p.CompanyName, p.CompanyOldName2,
	))
	d.Paragraph(fmt.Sprintf("1. That I / We am / are the registered holder(s) of %d (%s Only) securities under Folio No. %s, as per the details below:",
		p.CombinedTotalNoOfShares, p.CombinedTotalNoOfSharesWords, p.FolioNumber))
	certificateTable(d, p)
	d.Paragraph("2. That the said certificate(s) have been lost / misplaced and are not traceable despite diligent search.")
	d.Paragraph("3. That the said certificate(s) have not been pledged, transferred or otherwise dealt with in any manner.")
	d.Paragraph("4. That I / We undertake to return the original certificate(s) to the Company for cancellation if the same are found later.")

	d.Section("Verification")
	d.Paragraph("Verified at " + place(p) + " on " + p.Date + " that the contents of the above affidavit are true and correct.")
	d.Signatures(p.HolderNames()...)
	return d
}

// buildFormB Form B: 补发证书的赔偿保证书
func buildFormB(p *Payload, _ int) *Document {
	d := NewDocument("Form B")
	d.SubHeading("Indemnity Bond for Issue of Duplicate Share Certificate(s)")
	d.Note("(On non-judicial stamp paper of appropriate value, duly notarised)")
	d.Lines("To,", p.CompanyName, p.CompanyAddress)
	d.Lines("And", p.RTAName, p.RTAAddress)
	d.Blank()

	d.Paragraph(fmt.Sprintf(
		"WHEREAS the under mentioned share certificate(s) of %s (formerly known as %s) standing in the name(s) of %s have been lost / misplaced:",
		p.CompanyName, p.CompanyOldName2, strings.Join(p.HolderNames(), ", "),
	))
	certificateTable(d, p)
	d.Paragraph("NOW THEREFORE in consideration of the Company issuing duplicate certificate(s), I / We hereby agree to indemnify and keep indemnified the Company and its Registrar and Transfer Agent against all claims, demands, losses and expenses arising out of the issue of the duplicate certificate(s).")

	d.Section("Details of the Holder(s)")
	holderKYCTable(d, p.PresentHolders())
	placeAndDate(d, p)
	d.Signatures(p.HolderNames()...)
	d.Section("Surety")
	d.Table([]string{"Name and Address of Surety", "Signature"}, [][]string{{"\n\n", ""}})
	return d
}

// buildAffidavit 通用宣誓书，每个宣誓人一份
func buildAffidavit(p *Payload, i int) *Document {
	deponent := p.AffidavitDeponents[i]
	d := NewDocument("Affidavit")
	d.Note("(On non-judicial stamp paper of appropriate value, duly notarised)")

	d.Paragraph(fmt.Sprintf(
		"I, %s, son / daughter / spouse of %s, aged %s years, residing at %s, holding PAN %s, do hereby solemnly affirm and state as under:",
		deponent.Name, deponent.FatherName, deponent.Age, deponent.FullAddress(), orDash(deponent.PAN),
	))
	d.Paragraph(fmt.Sprintf("1. That I am making this affidavit in respect of %d (%s Only) securities of %s held under Folio No. %s.",
		p.CombinedTotalNoOfShares, p.CombinedTotalNoOfSharesWords, p.CompanyName, p.FolioNumber))
	if p.IsDeceased {
		d.Paragraph(fmt.Sprintf("2. That %s, the holder of the said securities, expired on %s at %s.", p.DeceasedName, p.DateOfDeath, p.PlaceOfDeath))
	}
	if deponent.Relationship != "" {
		d.Paragraph("3. That I am the " + deponent.Relationship + " of the deceased.")
	}
	d.Paragraph("That the facts stated above are true to my knowledge and nothing material has been concealed.")
	placeAndDate(d, p)
	d.Signatures(deponent.Name)
	return d
}
