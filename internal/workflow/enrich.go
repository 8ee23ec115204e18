package workflow

// Enrich joins each project's four foreign keys against the reference
// snapshot and copies the display fields onto the record. The join is
// lenient: an unresolved key degrades to empty-string display fields and the
// record is always kept. The full list is re-enriched every time the raw
// projects or any reference collection change; there is no partial update.
func Enrich(projects []Project, refs ReferenceData) []Project {
	enriched := make([]Project, len(projects))
	for i, p := range projects {
		if customer, ok := refs.Customers[p.CustomerID]; ok {
			p.CustomerName = customer.CustomerName
			p.CustomerAbbreviation = customer.CustomerAbbreviation
			p.CustomerCode = customer.CustomerCode
		} else {
			p.CustomerName = ""
			p.CustomerAbbreviation = ""
			p.CustomerCode = ""
		}

		if bu, ok := refs.BusinessUnits[p.BUID]; ok {
			p.BUName = bu.BUName
			p.BUCode = bu.BUCode
		} else {
			p.BUName = ""
			p.BUCode = ""
		}

		if billingType, ok := refs.BillingTypes[p.BillingTypeID]; ok {
			p.BillingTypeName = billingType.BillingTypeName
			p.BillingTypeCode = billingType.BillingTypeCode
		} else {
			p.BillingTypeName = ""
			p.BillingTypeCode = ""
		}

		if segment, ok := refs.Segments[p.SegmentID]; ok {
			p.SegmentName = segment.SegmentName
		} else {
			p.SegmentName = ""
		}

		enriched[i] = p
	}
	return enriched
}
