package workflow

import (
	"testing"

	"github.com/piddash/pidgen/internal/model"
	"github.com/stretchr/testify/assert"
)

func testRefs() ReferenceData {
	return ReferenceData{
		Customers: map[int64]model.Customer{
			10: {CustomerID: 10, CustomerName: "Acme Corp", CustomerAbbreviation: "ACME", CustomerCode: "C100", BUID: 5},
		},
		BusinessUnits: map[int64]model.BusinessUnit{
			5: {BUID: 5, BUName: "Digital Services", BUCode: "DS"},
		},
		BillingTypes: map[int64]model.BillingType{
			3: {BillingTypeID: 3, BillingTypeName: "Fixed Price", BillingTypeCode: "FP"},
		},
		Segments: map[int64]model.Segment{
			7: {SegmentID: 7, SegmentName: "Banking"},
		},
	}
}

func TestEnrichPopulatesDisplayFields(t *testing.T) {
	projects := []Project{
		{ProjectInternalID: 1, CustomerID: 10, BUID: 5, BillingTypeID: 3, SegmentID: 7},
	}

	got := Enrich(projects, testRefs())
	assert.Len(t, got, 1)
	assert.Equal(t, "Acme Corp", got[0].CustomerName)
	assert.Equal(t, "ACME", got[0].CustomerAbbreviation)
	assert.Equal(t, "C100", got[0].CustomerCode)
	assert.Equal(t, "Digital Services", got[0].BUName)
	assert.Equal(t, "DS", got[0].BUCode)
	assert.Equal(t, "Fixed Price", got[0].BillingTypeName)
	assert.Equal(t, "FP", got[0].BillingTypeCode)
	assert.Equal(t, "Banking", got[0].SegmentName)
}

func TestEnrichUnresolvedKeysDegradeToEmptyStrings(t *testing.T) {
	projects := []Project{
		{ProjectInternalID: 1, CustomerID: 999, BUID: 999, BillingTypeID: 999, SegmentID: 999},
	}

	got := Enrich(projects, testRefs())
	// record is kept, display fields are blank
	assert.Len(t, got, 1)
	assert.Empty(t, got[0].CustomerName)
	assert.Empty(t, got[0].BUName)
	assert.Empty(t, got[0].BillingTypeName)
	assert.Empty(t, got[0].SegmentName)
}

func TestEnrichNeverDropsRecords(t *testing.T) {
	projects := []Project{
		{ProjectInternalID: 1, CustomerID: 10, BUID: 5, BillingTypeID: 3, SegmentID: 7},
		{ProjectInternalID: 2},
		{ProjectInternalID: 3, CustomerID: 10},
	}

	got := Enrich(projects, testRefs())
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}

func TestReferenceDataReady(t *testing.T) {
	refs := testRefs()
	assert.True(t, refs.Ready())

	refs.Segments = map[int64]model.Segment{}
	assert.False(t, refs.Ready())
}
