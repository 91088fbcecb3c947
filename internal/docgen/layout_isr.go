package docgen

import "strings"

// buildISR1 Form ISR-1: 登记 PAN / KYC 变更申请
func buildISR1(p *Payload, _ int) *Document {
	d := NewDocument("Form ISR-1")
	d.SubHeading("Request for registering PAN, KYC details or changes / updation thereof")
	d.Note("[For Securities held in physical form]")
	addressee(d, p)

	d.Paragraph("I / We request you to register / change / update the following in respect of the securities held in physical form mentioned below:")
	d.Table([]string{"", "Item", "Tick (✓)"}, [][]string{
		{"1", "PAN", "✓"},
		{"2", "Signature", ""},
		{"3", "Mobile Number", "✓"},
		{"4", "E-mail ID", "✓"},
		{"5", "Bank details", "✓"},
		{"6", "Address", "✓"},
		{"7", "Demat Account Number", ""},
	})
	securitiesTable(d, p)

	d.Section("Details of the Holder(s)")
	holderKYCTable(d, p.PresentHolders())

	d.Section("Declaration")
	d.Paragraph("I / We hereby declare that the particulars given above are true, correct and complete and that I / We shall be responsible for any consequences arising out of any incorrect or incomplete information.")
	placeAndDate(d, p)
	d.Signatures(p.HolderNames()...)
	return d
}

// buildISR2 Form ISR-2: 银行确认签名，每个申请人一份
func buildISR2(p *Payload, i int) *Document {
	c := p.Claimants[i]
	d := NewDocument("Form ISR-2")
	d.SubHeading("Confirmation of Signature of Securities Holder by the Banker")
	addressee(d, p)

	d.Section("1. Bank details of the Securities Holder")
	bankTable(d, c)

	d.Section("2. Details of the Securities Holder")
	d.KeyValueTable([][2]string{
		{"Name of the Company", p.CompanyName},
		{"Folio No.", p.FolioNumber},
		{"Name of the Securities Holder", c.Name},
		{"Address as per Bank Records", c.FullAddress()},
		{"Mobile", c.Mobile},
		{"E-mail", c.Email},
	})
	d.Paragraph("Specimen signature of the account holder, duly attested by the Bank Manager:")
	d.Signatures(c.Name)

	d.Section("3. Confirmation by the Banker")
	d.Paragraph("It is certified that the above account is maintained with our branch by the above named account holder since ______________ and that the signature(s) and particulars given above are as per our records.")
	d.Blank()
	d.Lines("Signature of the Bank Manager", "Name of the Bank Manager:", "Employee Code:", "E-mail / Phone:", "Bank Seal with IFSC: "+c.IFSC)
	d.Field("Date", p.Date)
	return d
}

// buildISR3 Form ISR-3: 放弃提名声明
func buildISR3(p *Payload, _ int) *Document {
	d := NewDocument("Form ISR-3")
	d.SubHeading("Declaration Form for Opting-out of Nomination")
	addressee(d, p)

	securitiesTable(d, p)
	certificateTable(d, p)

	d.Paragraph("I / We hereby confirm that I / We do not wish to appoint any nominee(s) in respect of the above securities and understand that in the event of my / our death, the legal heir(s) would need to submit all the requisite documents as prescribed for transmission of the securities.")
	placeAndDate(d, p)
	d.Signatures(p.HolderNames()...)
	return d
}

// buildISR4 Form ISR-4: 补发 / 转让 / 删除等服务申请
func buildISR4(p *Payload, _ int) *Document {
	ct := string(p.CaseType)
	tick := func(ok bool) string {
		if ok {
			return "✓"
		}
		return ""
	}

	d := NewDocument("Form ISR-4")
	d.SubHeading("Request for issue of Duplicate Certificate and other Service Requests")
	addressee(d, p)

	d.Paragraph("I / We request you to process the following service request(s) in respect of the securities mentioned below:")
	d.Table([]string{"", "Service Request", "Tick (✓)"}, [][]string{
		{"1", "Issue of duplicate securities certificate", tick(strings.Contains(ct, "IssueDuplicate"))},
		{"2", "Claim from unclaimed suspense account", tick(strings.HasPrefix(ct, "Claim"))},
		{"3", "Transmission", tick(strings.HasPrefix(ct, "Transmission"))},
		{"4", "Transposition", tick(strings.Contains(ct, "Transposition"))},
		{"5", "Deletion of name of the deceased holder", tick(strings.HasPrefix(ct, "Deletion"))},
	})
	securitiesTable(d, p)
	certificateTable(d, p)

	if len(p.TranspositionOrder) > 0 {
		d.Section("Order of holders after transposition")
		rows := make([][]string, len(p.TranspositionOrder))
		for i, n := range p.TranspositionOrder {
			rows[i] = []string{ordinal(i + 1), n}
		}
		d.Table([]string{"Position", "Name"}, rows)
	}
	deceasedParagraph(d, p)

	d.Section("Details of the Holder(s)")
	holderKYCTable(d, p.PresentHolders())
	placeAndDate(d, p)
	d.Signatures(p.HolderNames()...)
	return d
}

// buildISR5 Form ISR-5: 提名人或继承人申请转移，每个申请人一份
func buildISR5(p *Payload, i int) *Document {
	c := p.Claimants[i]
	d := NewDocument("Form ISR-5")
	d.SubHeading("Request for Transmission of Securities by Nominee or Legal Heir")
	addressee(d, p)

	d.Section("1. Details of the Deceased Holder")
	d.KeyValueTable([][2]string{
		{"Name of the Deceased", p.DeceasedName},
		{"Date of Death", p.DateOfDeath},
		{"Place of Death", p.PlaceOfDeath},
		{"Folio No.", p.FolioNumber},
		{"Total No. of Securities", totalShares(p)},
	})
	certificateTable(d, p)

	d.Section("2. Details of the Claimant")
	personTable(d, c)
	d.Section("3. Bank Details of the Claimant")
	bankTable(d, c)

	d.Section("Declaration")
	d.Paragraph("I, " + c.Name + ", the claimant above named, hereby request that the securities held in the name of the deceased holder be transmitted in my name. I confirm that the information provided is true and correct and I shall indemnify the Company and the RTA against any claim arising out of the transmission.")
	placeAndDate(d, p)
	d.Signatures(c.Name)
	return d
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "First Holder"
	case 2:
		return "Second Holder"
	case 3:
		return "Third Holder"
	}
	return "Holder"
}
