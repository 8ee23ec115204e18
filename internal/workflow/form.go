package workflow

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/datenorm"
)

// ProjectForm is the create/edit payload composed by the dashboard modal.
// Dates travel as strings because the date inputs emit "YYYY-MM-DD".
type ProjectForm struct {
	CoreProjectID       int64  `json:"coreProjectID" form:"coreProjectID"`
	ProjectAbbreviation string `json:"projectAbbreviation" form:"projectAbbreviation"`
	LocationCity        string `json:"locationCity" form:"locationCity"`
	CustomerAddress     string `json:"customerAddress" form:"customerAddress"`
	ProjectStartDate    string `json:"projectStartDate" form:"projectStartDate"`
	ProjectEndDate      string `json:"projectEndDate" form:"projectEndDate"`
	ResourceRequirement string `json:"resourceRequirement" form:"resourceRequirement"`
	CustomerID          int64  `json:"customerID" form:"customerID"`
	BUID                int64  `json:"buid" form:"buid"`
	BillingTypeID       int64  `json:"billingTypeID" form:"billingTypeID"`
	SegmentID           int64  `json:"segmentID" form:"segmentID"`
}

// ValidationError carries the per-field messages the form renders inline.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

// Validate is the pre-submit gate: no remote call runs while it fails. now is
// injected so the not-in-the-past rule is testable. refs, when ready, backs
// the customer-belongs-to-BU check (the form clears the customer whenever the
// BU changes because customer options are scoped to the selected BU).
func (f ProjectForm) Validate(now time.Time, refs ReferenceData) error {
	errs := make(map[string]string)

	if f.CoreProjectID == 0 {
		errs["coreProjectID"] = "Please select a Project Name."
	}
	if strings.TrimSpace(f.ProjectAbbreviation) == "" {
		errs["projectAbbreviation"] = "Project abbreviation is required."
	} else if len(f.ProjectAbbreviation) > 4 {
		errs["projectAbbreviation"] = "Project abbreviation must be at most 4 characters."
	}
	if f.BUID == 0 {
		errs["buid"] = "Please select a Business Unit."
	}
	if f.CustomerID == 0 {
		errs["customerID"] = "Please select a Customer."
	} else if customer, ok := refs.Customers[f.CustomerID]; ok && customer.BUID != f.BUID {
		errs["customerID"] = "Customer does not belong to the selected Business Unit."
	}
	if f.BillingTypeID == 0 {
		errs["billingTypeID"] = "Please select a Billing Type."
	}
	if f.SegmentID == 0 {
		errs["segmentID"] = "Please select a Segment."
	}

	todayMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	startTS := datenorm.ToEpochMillis(f.ProjectStartDate)
	if strings.TrimSpace(f.ProjectStartDate) == "" {
		errs["projectStartDate"] = "Start date is required."
	} else if startTS == 0 {
		errs["projectStartDate"] = "Start date is not a valid date."
	} else if startTS < todayMidnight.UnixMilli() {
		errs["projectStartDate"] = "Start date cannot be in the past."
	}

	endTS := datenorm.ToEpochMillis(f.ProjectEndDate)
	if strings.TrimSpace(f.ProjectEndDate) == "" {
		errs["projectEndDate"] = "End date is required."
	} else if endTS == 0 {
		errs["projectEndDate"] = "End date is not a valid date."
	} else if startTS != 0 {
		minEnd := startTS + constant.MinProjectDurationDays*24*int64(time.Hour/time.Millisecond)
		if endTS < minEnd {
			errs["projectEndDate"] = "End date must be at least 14 days after the start date."
		}
	}

	if strings.TrimSpace(f.ResourceRequirement) == "" {
		errs["resourceRequirement"] = "Resource requirement is required."
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
