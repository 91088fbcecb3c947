package docgen

import (
	"fmt"
	"strings"
)

// buildAnnexureD Annexure-D: 继承人宣誓书，项目下每个法定继承人一份
func buildAnnexureD(p *Payload, i int) *Document {
	heir := p.LegalHeirs[i]
	d := NewDocument("Annexure-D")
	d.SubHeading("Affidavit by the Legal Heir")
	d.Note("(On non-judicial stamp paper of appropriate value, duly notarised)")

	d.Paragraph(fmt.Sprintf(
		"I, %s, son / daughter / spouse of %s, aged %s years, residing at %s, do hereby solemnly affirm and state as under:",
		heir.Name, heir.FatherName, heir.Age, heir.FullAddress(),
	))
	d.Paragraph(fmt.Sprintf(
		"1. That %s (the deceased) was the registered holder of %d (%s Only) equity shares of %s under Folio No. %s.",
		p.DeceasedName, p.CombinedTotalNoOfShares, p.CombinedTotalNoOfSharesWords, p.CompanyName, p.FolioNumber,
	))
	d.Paragraph(fmt.Sprintf("2. That the deceased expired on %s at %s.", p.DateOfDeath, p.PlaceOfDeath))
	d.Paragraph(fmt.Sprintf("3. That I am the %s of the deceased and one of the legal heirs.", orDash(heir.Relationship)))
	d.Paragraph("4. That the following are the only legal heirs of the deceased and there are no other legal heirs:")
	peopleTable(d, p.LegalHeirs)
	if len(p.Claimants) > 0 {
		d.Paragraph("5. That the securities may be transmitted in favour of " + strings.Join(names(p.Claimants), ", ") + ".")
	}
	d.Paragraph("I do hereby declare that what is stated above is true to the best of my knowledge and belief.")

	d.Section("Verification")
	d.Paragraph("Verified at " + place(p) + " on " + p.Date + " that the contents of the above affidavit are true and correct and nothing material has been concealed therefrom.")
	d.Signatures(heir.Name)
	return d
}

// buildAnnexureE Annexure-E: 申请人的赔偿保证书
func buildAnnexureE(p *Payload, _ int) *Document {
	d := NewDocument("Annexure-E")
	d.SubHeading("Indemnity Bond for Transmission of Securities")
	d.Note("(On non-judicial stamp paper of appropriate value, duly notarised)")
	d.Lines("To,", p.CompanyName, p.CompanyAddress)
	d.Lines("And", p.RTAName, p.RTAAddress)
	d.Blank()

	d.Paragraph(fmt.Sprintf(
		"WHEREAS %s, since deceased on %s, was the registered holder of the following securities of the Company under Folio No. %s:",
		p.DeceasedName, p.DateOfDeath, p.FolioNumber,
	))
	certificateTable(d, p)

	d.Paragraph("AND WHEREAS the undersigned claimant(s), being the legal heir(s) of the deceased, have applied for transmission of the said securities without production of a succession certificate or probate, and the Company has agreed to do so on the undersigned executing this indemnity.")
	d.Section("Details of the Claimant(s)")
	peopleTable(d, p.Claimants)

	d.Paragraph("NOW THEREFORE the undersigned hereby jointly and severally agree to indemnify and keep indemnified the Company and its Registrar and Transfer Agent against all claims, losses and expenses that may arise by reason of the transmission of the said securities.")
	placeAndDate(d, p)
	d.Signatures(names(p.Claimants)...)
	d.Section("Witnesses")
	d.Table([]string{"Name and Address", "Signature"}, [][]string{{"\n\n", ""}, {"\n\n", ""}})
	return d
}

// buildAnnexureF Annexure-F: 未申请的继承人出具的无异议证明
func buildAnnexureF(p *Payload, _ int) *Document {
	d := NewDocument("Annexure-F")
	d.SubHeading("No Objection Certificate from Non-Claimant Legal Heir(s)")
	d.Note("(On non-judicial stamp paper of appropriate value, duly notarised)")
	d.Lines("To,", p.RTAName, p.RTAAddress)
	d.Blank()
	d.Runs(Bold("Unit: "), Plain(p.CompanyName))
	d.Blank()

	d.Paragraph(fmt.Sprintf(
		"We, the undersigned legal heir(s) of late %s, who expired on %s, hereby give our consent and no objection for the transmission of %d (%s Only) securities held under Folio No. %s in favour of %s.",
		p.DeceasedName, p.DateOfDeath, p.CombinedTotalNoOfShares, p.CombinedTotalNoOfSharesWords,
		p.FolioNumber, strings.Join(names(p.Claimants), ", "),
	))
	d.Section("Details of the Non-Claimant Legal Heir(s)")
	peopleTable(d, p.NonClaimants)

	d.Paragraph("We further confirm that we shall not have any claim against the Company or the RTA in respect of the said securities.")
	placeAndDate(d, p)
	d.Signatures(names(p.NonClaimants)...)
	return d
}

// buildDeletion 删除身故联名持有人的申请
func buildDeletion(p *Payload, _ int) *Document {
	d := NewDocument("Request for Deletion of Name")
	d.SubHeading("Deletion of name of the deceased joint holder")
	addressee(d, p)

	securitiesTable(d, p)
	certificateTable(d, p)
	deceasedParagraph(d, p)

	d.Paragraph("We, the surviving holder(s), request you to delete the name of the deceased holder from the register of members and record the securities in the name(s) of the surviving holder(s) in the following order:")
	rows := make([][]string, len(p.Survivors))
	for i, s := range p.Survivors {
		rows[i] = []string{ordinal(i + 1), s}
	}
	d.Table([]string{"Position", "Name of the Surviving Holder"}, rows)

	d.Paragraph("We enclose herewith a copy of the death certificate of the deceased holder duly attested, along with the original share certificate(s).")
	placeAndDate(d, p)
	d.Signatures(p.Survivors...)
	return d
}
