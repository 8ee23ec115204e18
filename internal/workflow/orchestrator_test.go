package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResource simulates the remote project resource: records live in rawByID
// the way the wire would deliver them, and every transition mutates that
// store so a reload observes the post-transition state.
type fakeResource struct {
	mu       sync.Mutex
	rawByID  map[int64]map[string]any
	failWith error

	generateCalls       []int64
	submitCalls         []int64
	adminApproveCalls   []int64
	adminRejectCalls    []int64
	superApproveCalls   []int64
	superApproveRemarks []string
	superRejectCalls    []int64
	deleteCalls         []int64

	// blockCall, when set, is received from before a transition returns so a
	// test can hold a row in flight.
	blockCall chan struct{}
}

func newFakeResource(records ...map[string]any) *fakeResource {
	byID := make(map[int64]map[string]any)
	for _, r := range records {
		byID[int64(r["projectInternalID"].(float64))] = r
	}
	return &fakeResource{rawByID: byID}
}

func (f *fakeResource) maybeBlockAndFail() error {
	if f.blockCall != nil {
		<-f.blockCall
	}
	return f.failWith
}

func (f *fakeResource) byCoreID(coreProjectID int64) map[string]any {
	for _, r := range f.rawByID {
		if int64(r["coreProjectID"].(float64)) == coreProjectID {
			return r
		}
	}
	return nil
}

func (f *fakeResource) List(ctx context.Context) ([]map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]any, 0, len(f.rawByID))
	for _, r := range f.rawByID {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeResource) Create(ctx context.Context, form ProjectForm, createdBy string) error {
	return f.maybeBlockAndFail()
}

func (f *fakeResource) Update(ctx context.Context, coreProjectID int64, form ProjectForm) error {
	return f.maybeBlockAndFail()
}

func (f *fakeResource) Delete(ctx context.Context, projectInternalID int64) error {
	if err := f.maybeBlockAndFail(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls = append(f.deleteCalls, projectInternalID)
	delete(f.rawByID, projectInternalID)
	return nil
}

func (f *fakeResource) GeneratePID(ctx context.Context, coreProjectID int64) error {
	if err := f.maybeBlockAndFail(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generateCalls = append(f.generateCalls, coreProjectID)
	if r := f.byCoreID(coreProjectID); r != nil {
		r["generatedPID"] = "DSC100-ACPL-25-0001"
		r["status"] = string(constant.StatusPendingSubmission)
	}
	return nil
}

func (f *fakeResource) SubmitForSuperAdminReview(ctx context.Context, coreProjectID int64) error {
	if err := f.maybeBlockAndFail(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitCalls = append(f.submitCalls, coreProjectID)
	if r := f.byCoreID(coreProjectID); r != nil {
		r["status"] = string(constant.StatusPendingSuperAdminApproval)
	}
	return nil
}

func (f *fakeResource) AdminApprove(ctx context.Context, coreProjectID int64, remarks string) error {
	if err := f.maybeBlockAndFail(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adminApproveCalls = append(f.adminApproveCalls, coreProjectID)
	if r := f.byCoreID(coreProjectID); r != nil {
		r["status"] = string(constant.StatusApproved)
		r["approvalRemarks"] = remarks
	}
	return nil
}

func (f *fakeResource) AdminReject(ctx context.Context, projectInternalID int64, remarks string) error {
	if err := f.maybeBlockAndFail(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adminRejectCalls = append(f.adminRejectCalls, projectInternalID)
	if r, ok := f.rawByID[projectInternalID]; ok {
		r["status"] = string(constant.StatusRejected)
		r["approvalRemarks"] = remarks
	}
	return nil
}

func (f *fakeResource) SuperAdminApprove(ctx context.Context, coreProjectID int64, remarks string) error {
	if err := f.maybeBlockAndFail(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.superApproveCalls = append(f.superApproveCalls, coreProjectID)
	f.superApproveRemarks = append(f.superApproveRemarks, remarks)
	if r := f.byCoreID(coreProjectID); r != nil {
		r["status"] = string(constant.StatusApproved)
		r["approvalRemarks"] = remarks
	}
	return nil
}

func (f *fakeResource) SuperAdminReject(ctx context.Context, coreProjectID int64, remarks string) error {
	if err := f.maybeBlockAndFail(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.superRejectCalls = append(f.superRejectCalls, coreProjectID)
	if r := f.byCoreID(coreProjectID); r != nil {
		r["status"] = string(constant.StatusNeedsRevision)
		r["approvalRemarks"] = remarks
	}
	return nil
}

type fakeRefs struct {
	refs ReferenceData
	err  error
}

func (f fakeRefs) Snapshot(ctx context.Context) (ReferenceData, error) {
	return f.refs, f.err
}

func rawProject(internalID, coreID int64, status constant.ProjectStatus) map[string]any {
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

func newTestOrchestrator(resource *fakeResource, role constant.Role) *Orchestrator {
	o := NewOrchestrator(resource, fakeRefs{refs: testRefs()}, Session{Username: "tester", Role: role}, util.NewLogger("development"))
	o.now = func() time.Time { return formNow }
	return o
}

func findProject(t *testing.T, o *Orchestrator, internalID int64) Project {
	t.Helper()
	list, _ := o.View(Filters{}, "", "")
	for _, p := range list {
		if p.ProjectInternalID == internalID {
			return p
		}
	}
	t.Fatalf("project %d not found in view", internalID)
	return Project{}
}

func TestGeneratePIDSuccess(t *testing.T) {
	resource := newFakeResource(rawProject(1, 100, constant.StatusPendingPIDGeneration))
	o := newTestOrchestrator(resource, constant.RoleAdmin)
	require.NoError(t, o.Reload(context.Background()))

	p := findProject(t, o, 1)
	require.NoError(t, o.GeneratePID(context.Background(), p))

	reloaded := findProject(t, o, 1)
	assert.Equal(t, "DSC100-ACPL-25-0001", reloaded.GeneratedPID)
	assert.Equal(t, constant.StatusPendingSubmission, reloaded.Status)

	success, errMsg := o.Messages()
	assert.Equal(t, "PID generated successfully.", success)
	assert.Empty(t, errMsg)
	assert.Equal(t, []int64{100}, resource.generateCalls)
	assert.False(t, o.InFlight(1))
}

func TestGeneratePIDFailureLeavesStateUntouched(t *testing.T) {
	resource := newFakeResource(rawProject(1, 100, constant.StatusPendingPIDGeneration))
	o := newTestOrchestrator(resource, constant.RoleAdmin)
	require.NoError(t, o.Reload(context.Background()))

	resource.failWith = errors.New("pid service unavailable")
	p := findProject(t, o, 1)
	err := o.GeneratePID(context.Background(), p)
	require.Error(t, err)

	unchanged := findProject(t, o, 1)
	assert.Empty(t, unchanged.GeneratedPID)
	assert.Equal(t, constant.StatusPendingPIDGeneration, unchanged.Status)

	success, errMsg := o.Messages()
	assert.Empty(t, success)
	assert.Equal(t, "pid service unavailable", errMsg)
	assert.False(t, o.InFlight(1))
}

func TestGeneratePIDBlockedForWrongStatusAndRole(t *testing.T) {
	resource := newFakeResource(rawProject(1, 100, constant.StatusPendingSuperAdminApproval))
	o := newTestOrchestrator(resource, constant.RoleAdmin)
	require.NoError(t, o.Reload(context.Background()))

	p := findProject(t, o, 1)
	assert.Error(t, o.GeneratePID(context.Background(), p))
	assert.Empty(t, resource.generateCalls)

	userOrch := newTestOrchestrator(newFakeResource(rawProject(1, 100, constant.StatusPendingPIDGeneration)), constant.RoleUser)
	require.NoError(t, userOrch.Reload(context.Background()))
	assert.Error(t, userOrch.GeneratePID(context.Background(), findProject(t, userOrch, 1)))
}

func TestSuperAdminApproveRequiresRemarks(t *testing.T) {
	resource := newFakeResource(rawProject(1, 100, constant.StatusPendingSuperAdminApproval))
	o := newTestOrchestrator(resource, constant.RoleSuperAdmin)
	require.NoError(t, o.Reload(context.Background()))
	p := findProject(t, o, 1)

	assert.ErrorIs(t, o.SuperAdminApprove(context.Background(), p, ""), ErrRemarksRequired)
	assert.ErrorIs(t, o.SuperAdminApprove(context.Background(), p, "   "), ErrRemarksRequired)
	assert.ErrorIs(t, o.SuperAdminReject(context.Background(), p, "\t"), ErrRemarksRequired)
	assert.Empty(t, resource.superApproveCalls, "remote call must not fire without remarks")

	require.NoError(t, o.SuperAdminApprove(context.Background(), p, "Budget confirmed"))
	assert.Equal(t, []string{"Budget confirmed"}, resource.superApproveRemarks)
	assert.Equal(t, constant.StatusApproved, findProject(t, o, 1).Status)
}

func TestAdminTransitionsUseObservedIdentifiers(t *testing.T) {
	resource := newFakeResource(
		rawProject(1, 100, constant.StatusPendingAdminApproval),
		rawProject(2, 200, constant.StatusPendingAdminApproval),
	)
	o := newTestOrchestrator(resource, constant.RoleAdmin)
	require.NoError(t, o.Reload(context.Background()))

	require.NoError(t, o.AdminApprove(context.Background(), findProject(t, o, 1)))
	require.NoError(t, o.AdminReject(context.Background(), findProject(t, o, 2)))

	// approve is keyed by core project id, reject by internal id
	assert.Equal(t, []int64{100}, resource.adminApproveCalls)
	assert.Equal(t, []int64{2}, resource.adminRejectCalls)
}

func TestRowExclusivity(t *testing.T) {
	resource := newFakeResource(
		rawProject(1, 100, constant.StatusPendingPIDGeneration),
		rawProject(2, 200, constant.StatusPendingPIDGeneration),
	)
	o := newTestOrchestrator(resource, constant.RoleAdmin)
	require.NoError(t, o.Reload(context.Background()))

	resource.blockCall = make(chan struct{})
	p1 := findProject(t, o, 1)
	p2 := findProject(t, o, 2)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- o.GeneratePID(context.Background(), p1)
	}()

	// wait until row 1 is marked in flight
	require.Eventually(t, func() bool { return o.InFlight(1) }, time.Second, time.Millisecond)

	assert.ErrorIs(t, o.GeneratePID(context.Background(), p1), ErrRowBusy)

	// release row 1 and confirm its marker clears
	resource.blockCall <- struct{}{}
	require.NoError(t, <-firstDone)
	assert.False(t, o.InFlight(1))

	// a different row was never blocked by row 1's marker
	go func() { resource.blockCall <- struct{}{} }()
	assert.NoError(t, o.GeneratePID(context.Background(), p2))
}

func TestGuardFailureReplacesPriorSuccessBanner(t *testing.T) {
	resource := newFakeResource(rawProject(1, 100, constant.StatusPendingPIDGeneration))
	o := newTestOrchestrator(resource, constant.RoleAdmin)
	require.NoError(t, o.Reload(context.Background()))

	require.NoError(t, o.GeneratePID(context.Background(), findProject(t, o, 1)))
	success, _ := o.Messages()
	require.Equal(t, "PID generated successfully.", success)

	// row is now past admin approval's precondition, the guard rejects
	assert.Error(t, o.AdminApprove(context.Background(), findProject(t, o, 1)))

	success, errMsg := o.Messages()
	assert.Empty(t, success, "stale success banner must not survive a failed action")
	assert.NotEmpty(t, errMsg)
}

func TestCreateProjectSnapshotErrorSetsErrorBanner(t *testing.T) {
	o := NewOrchestrator(newFakeResource(), fakeRefs{err: errors.New("reference store down")},
		Session{Username: "tester", Role: constant.RoleAdmin}, util.NewLogger("development"))

	require.Error(t, o.CreateProject(context.Background(), validForm()))

	success, errMsg := o.Messages()
	assert.Empty(t, success)
	assert.Equal(t, "reference store down", errMsg)
}

func TestReloadGatedOnReferenceReadiness(t *testing.T) {
	resource := newFakeResource(rawProject(1, 100, constant.StatusPendingPIDGeneration))
	o := NewOrchestrator(resource, fakeRefs{refs: ReferenceData{}}, Session{Role: constant.RoleAdmin}, util.NewLogger("development"))

	assert.ErrorIs(t, o.Reload(context.Background()), ErrReferenceNotReady)
}

func TestCreateProjectValidationBlocksRemoteCall(t *testing.T) {
	resource := newFakeResource()
	o := newTestOrchestrator(resource, constant.RoleAdmin)

	form := validForm()
	form.ProjectEndDate = "2025-09-10"
	err := o.CreateProject(context.Background(), form)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "projectEndDate")
}

func TestDeleteProjectReloads(t *testing.T) {
	resource := newFakeResource(
		rawProject(1, 100, constant.StatusApproved),
		rawProject(2, 200, constant.StatusPendingPIDGeneration),
	)
	o := newTestOrchestrator(resource, constant.RoleSuperAdmin)
	require.NoError(t, o.Reload(context.Background()))

	require.NoError(t, o.DeleteProject(context.Background(), findProject(t, o, 1)))

	list, _ := o.View(Filters{}, "", "")
	assert.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ProjectInternalID)
}
