package workflow

import (
	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
)

// Project is the enriched dashboard view model: the raw project record plus
// the display fields joined in from the reference cache. It is what the
// filter/sort engine operates on and what the list endpoint returns.
type Project struct {
	ProjectInternalID   int64                  `json:"projectInternalID"`
	CoreProjectID       int64                  `json:"coreProjectID"`
	ProjectName         string                 `json:"projectName"`
	ProjectAbbreviation string                 `json:"projectAbbreviation"`
	LocationCity        string                 `json:"locationCity"`
	CustomerAddress     string                 `json:"customerAddress"`
	ProjectStartDate    string                 `json:"projectStartDate"`
	ProjectEndDate      string                 `json:"projectEndDate"`
	ResourceRequirement string                 `json:"resourceRequirement"`
	CustomerID          int64                  `json:"customerID"`
	BUID                int64                  `json:"buid"`
	BillingTypeID       int64                  `json:"billingTypeID"`
	SegmentID           int64                  `json:"segmentID"`
	Status              constant.ProjectStatus `json:"status"`
	GeneratedPID        string                 `json:"generatedPID,omitempty"`
	ApprovalRemarks     string                 `json:"approvalRemarks,omitempty"`
	CreatedDate         string                 `json:"createdDate"`

	// CreatedTS is the normalized created timestamp, computed once at decode
	// time so sorting never re-parses and stays a total order.
	CreatedTS int64 `json:"-"`

	// Display fields populated by Enrich; empty string when the foreign key
	// has no match in the reference cache.
	CustomerName         string `json:"customerName"`
	CustomerAbbreviation string `json:"customerAbbreviation"`
	CustomerCode         string `json:"customerCode"`
	BUName               string `json:"buName"`
	BUCode               string `json:"buCode"`
	BillingTypeName      string `json:"billingTypeName"`
	BillingTypeCode      string `json:"billingTypeCode"`
	SegmentName          string `json:"segmentName"`
}

// ReferenceData is a read-only snapshot of the four lookup collections keyed
// by their natural identifiers. Collections may start empty and populate
// asynchronously; Ready gates enrichment until all four are present.
type ReferenceData struct {
	Customers     map[int64]model.Customer
	BusinessUnits map[int64]model.BusinessUnit
	BillingTypes  map[int64]model.BillingType
	Segments      map[int64]model.Segment
}

func (r ReferenceData) Ready() bool {
	return len(r.Customers) > 0 && len(r.BusinessUnits) > 0 &&
		len(r.BillingTypes) > 0 && len(r.Segments) > 0
}
