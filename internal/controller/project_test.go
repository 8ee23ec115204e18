package controller

import (
	"context"
	"testing"

	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
	"github.com/piddash/pidgen/internal/util"
	"github.com/piddash/pidgen/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listOnlyResource serves a fixed project list; transitions record the
// identifier they were keyed with and succeed.
type listOnlyResource struct {
	rows          []map[string]any
	generateCalls []int64
}

func (f *listOnlyResource) List(ctx context.Context) ([]map[string]any, error) {
	return f.rows, nil
}

func (f *listOnlyResource) Create(ctx context.Context, form workflow.ProjectForm, createdBy string) error {
	return nil
}

func (f *listOnlyResource) Update(ctx context.Context, coreProjectID int64, form workflow.ProjectForm) error {
	return nil
}

func (f *listOnlyResource) Delete(ctx context.Context, projectInternalID int64) error {
	return nil
}

func (f *listOnlyResource) GeneratePID(ctx context.Context, coreProjectID int64) error {
	f.generateCalls = append(f.generateCalls, coreProjectID)
	return nil
}

func (f *listOnlyResource) SubmitForSuperAdminReview(ctx context.Context, coreProjectID int64) error {
	return nil
}

func (f *listOnlyResource) AdminApprove(ctx context.Context, coreProjectID int64, remarks string) error {
	return nil
}

func (f *listOnlyResource) AdminReject(ctx context.Context, projectInternalID int64, remarks string) error {
	return nil
}

func (f *listOnlyResource) SuperAdminApprove(ctx context.Context, coreProjectID int64, remarks string) error {
	return nil
}

func (f *listOnlyResource) SuperAdminReject(ctx context.Context, coreProjectID int64, remarks string) error {
	return nil
}

type staticRefs struct {
	refs workflow.ReferenceData
}

func (s staticRefs) Snapshot(ctx context.Context) (workflow.ReferenceData, error) {
	return s.refs, nil
}

func controllerTestRefs() workflow.ReferenceData {
	return workflow.ReferenceData{
		Customers:     map[int64]model.Customer{10: {CustomerID: 10, CustomerName: "Acme", BUID: 5}},
		BusinessUnits: map[int64]model.BusinessUnit{5: {BUID: 5, BUName: "Digital", BUCode: "DSC"}},
		BillingTypes:  map[int64]model.BillingType{3: {BillingTypeID: 3, BillingTypeName: "Fixed"}},
		Segments:      map[int64]model.Segment{7: {SegmentID: 7, SegmentName: "Enterprise"}},
	}
}

func rawRow(internalID, coreID int64, status constant.ProjectStatus) map[string]any {
	return map[string]any{
		"projectInternalID": float64(internalID),
		"coreProjectID":     float64(coreID),
		"projectName":       "Core Platform",
		"customerID":        float64(10),
		"buid":              float64(5),
		"billingTypeID":     float64(3),
		"segmentID":         float64(7),
		"status":            string(status),
		"createdDate":       "2024-01-01",
	}
}

func newRowOrchestrator(t *testing.T, resource *listOnlyResource) *workflow.Orchestrator {
	t.Helper()
	o := workflow.NewOrchestrator(resource, staticRefs{refs: controllerTestRefs()},
		workflow.Session{Username: "tester", Role: constant.RoleAdmin}, util.NewLogger("development"))
	require.NoError(t, o.Reload(context.Background()))
	return o
}

// A core project accumulates one row per recurrence; only the newest row is
// actionable. Resolving a core id must return the row with the highest
// internal id, not whichever instance happens to sort first.
func TestFindByCoreIdPicksLatestInstance(t *testing.T) {
	resource := &listOnlyResource{rows: []map[string]any{
		rawRow(1, 100, constant.StatusApproved),
		rawRow(2, 100, constant.StatusPendingPIDGeneration),
		rawRow(3, 200, constant.StatusPendingPIDGeneration),
	}}
	o := newRowOrchestrator(t, resource)
	pc := ProjectController{}

	p, found := pc.findByCoreId(o, 100)
	require.True(t, found)
	assert.Equal(t, int64(2), p.ProjectInternalID)
	assert.Equal(t, constant.StatusPendingPIDGeneration, p.Status)

	// the resolved row passes the guard even though the older instance is
	// already Approved
	require.NoError(t, o.GeneratePID(context.Background(), p))
	assert.Equal(t, []int64{100}, resource.generateCalls)

	_, found = pc.findByCoreId(o, 999)
	assert.False(t, found)
}

func TestFindByInternalIdMatchesExactRow(t *testing.T) {
	resource := &listOnlyResource{rows: []map[string]any{
		rawRow(1, 100, constant.StatusApproved),
		rawRow(2, 100, constant.StatusPendingPIDGeneration),
	}}
	o := newRowOrchestrator(t, resource)
	pc := ProjectController{}

	p, found := pc.findByInternalId(o, 1)
	require.True(t, found)
	assert.Equal(t, constant.StatusApproved, p.Status)

	_, found = pc.findByInternalId(o, 42)
	assert.False(t, found)
}
