package docgen

// nomineeTable 被提名人及其监护人信息
func nomineeTable(d *Document, n Nominee) {
	minor := "No"
	if n.IsMinor {
		minor = "Yes"
	}
	d.KeyValueTable([][2]string{
		{"Name", n.Name},
		{"Date of Birth", n.DOB},
		{"Father's / Mother's / Spouse's Name", n.FatherName},
		{"Occupation", n.Occupation},
		{"Nationality", n.Nationality},
		{"Address", n.Address},
		{"E-mail", n.Email},
		{"Mobile", n.Mobile},
		{"PAN", n.PAN},
		{"Relationship with the Security Holder(s)", n.Relationship},
		{"Whether Nominee is a Minor", minor},
	})
	if n.IsMinor {
		d.Section("Particulars of the Guardian (in case the nominee is a minor)")
		d.KeyValueTable([][2]string{
			{"Name of the Guardian", n.GuardianName},
			{"Address of the Guardian", n.GuardianAddress},
			{"Relationship of the Guardian with the Nominee", n.GuardianRelationship},
		})
	}
}

// buildSH13 Form No. SH-13: 提名表，每条提名一份
func buildSH13(p *Payload, i int) *Document {
	n := p.Nominees[i]
	d := NewDocument("Form No. SH-13")
	d.SubHeading("Nomination Form")
	d.Note("[Pursuant to section 72 of the Companies Act, 2013 and rule 19(1) of the Companies (Share Capital and Debentures) Rules 2014]")
	d.Lines("To,", p.CompanyName, p.CompanyAddress)
	d.Blank()

	d.Paragraph("I / We, the holder(s) of the securities particulars of which are given hereunder, wish to make nomination and do hereby nominate the following person(s) in whom shall vest all the rights in respect of such securities in the event of my / our death.")
	d.Section("(1) Particulars of the Securities")
	certificateTable(d, p)

	d.Section("(2) Particulars of the Nominee")
	nomineeTable(d, n)

	placeAndDate(d, p)
	d.Signatures(p.HolderNames()...)
	d.Section("Witness")
	d.Table([]string{"Name and Address of Witness", "Signature"}, [][]string{{"\n\n", ""}})
	return d
}

// buildSH14 Form No. SH-14: 撤销或变更提名，每条提名一份
func buildSH14(p *Payload, i int) *Document {
	n := p.Nominees[i]
	d := NewDocument("Form No. SH-14")
	d.SubHeading("Cancellation or Variation of Nomination")
	d.Note("[Pursuant to sub-section (3) of section 72 of the Companies Act, 2013 and rule 19(9) of the Companies (Share Capital and Debentures) Rules 2014]")
	d.Lines("To,", p.CompanyName, p.CompanyAddress)
	d.Blank()

	d.Paragraph("I / We hereby cancel the nomination(s) made by me / us in favour of the person named below in respect of the securities particulars of which are given hereunder, and nominate the person named in (3) instead.")
	d.Section("(1) Particulars of the Securities")
	certificateTable(d, p)

	d.Section("(2) Particulars of the Nominee whose nomination is cancelled")
	d.KeyValueTable([][2]string{
		{"Name", orDash(n.DeceasedNomineeName)},
		{"Date of Death (if deceased)", orDash(n.DeceasedNomineeDOD)},
	})

	d.Section("(3) Particulars of the New Nominee")
	nomineeTable(d, n)

	placeAndDate(d, p)
	d.Signatures(p.HolderNames()...)
	d.Section("Witness")
	d.Table([]string{"Name and Address of Witness", "Signature"}, [][]string{{"\n\n", ""}})
	return d
}
