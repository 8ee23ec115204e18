package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formNow = time.Date(2025, time.August, 20, 10, 0, 0, 0, time.UTC)

func validForm() ProjectForm {
	return ProjectForm{
		CoreProjectID:       1,
		ProjectAbbreviation: "ACPL",
		ProjectStartDate:    "2025-09-01",
		ProjectEndDate:      "2025-09-15",
		ResourceRequirement: "2 backend engineers",
		CustomerID:          10,
		BUID:                5,
		BillingTypeID:       3,
		SegmentID:           7,
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
	return ve.Fields
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	assert.NoError(t, validForm().Validate(formNow, testRefs()))
}

func TestValidateEndDateMinimumGap(t *testing.T) {
	form := validForm()
	form.ProjectEndDate = "2025-09-10" // 9 days after start, below the 14-day minimum

	errs := fieldErrors(t, form.Validate(formNow, testRefs()))
	assert.Equal(t, "End date must be at least 14 days after the start date.", errs["projectEndDate"])

	form.ProjectEndDate = "2025-09-15" // exactly 14 days
	assert.NoError(t, form.Validate(formNow, testRefs()))
}

func TestValidateStartDateNotInPast(t *testing.T) {
	form := validForm()
	form.ProjectStartDate = "2025-08-19"

	errs := fieldErrors(t, form.Validate(formNow, testRefs()))
	assert.Equal(t, "Start date cannot be in the past.", errs["projectStartDate"])

	// today is fine
	form.ProjectStartDate = "2025-08-20"
	form.ProjectEndDate = "2025-09-03"
	assert.NoError(t, form.Validate(formNow, testRefs()))
}

func TestValidateRequiredFields(t *testing.T) {
	errs := fieldErrors(t, ProjectForm{}.Validate(formNow, testRefs()))

	assert.Equal(t, "Please select a Project Name.", errs["coreProjectID"])
	assert.Equal(t, "Project abbreviation is required.", errs["projectAbbreviation"])
	assert.Equal(t, "Please select a Business Unit.", errs["buid"])
	assert.Equal(t, "Please select a Customer.", errs["customerID"])
	assert.Equal(t, "Please select a Billing Type.", errs["billingTypeID"])
	assert.Equal(t, "Please select a Segment.", errs["segmentID"])
	assert.Equal(t, "Start date is required.", errs["projectStartDate"])
	assert.Equal(t, "End date is required.", errs["projectEndDate"])
	assert.Equal(t, "Resource requirement is required.", errs["resourceRequirement"])
}

func TestValidateCustomerMustBelongToSelectedBU(t *testing.T) {
	form := validForm()
	form.BUID = 99 // customer 10 belongs to BU 5

	errs := fieldErrors(t, form.Validate(formNow, testRefs()))
	assert.Equal(t, "Customer does not belong to the selected Business Unit.", errs["customerID"])
}

func TestValidateWhitespaceResourceRequirement(t *testing.T) {
	form := validForm()
	form.ResourceRequirement = "   "

	errs := fieldErrors(t, form.Validate(formNow, testRefs()))
	assert.Equal(t, "Resource requirement is required.", errs["resourceRequirement"])
}
