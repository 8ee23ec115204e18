package workflow

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/piddash/pidgen/internal/constant"
	"go.uber.org/zap"
)

// Session identifies the dashboard user driving the orchestrator. It is
// injected at construction so role gating is testable without any ambient
// storage.
type Session struct {
	Username string
	Role     constant.Role
}

// ProjectResource is the remote collaborator owning project records and the
// workflow transition endpoints. Note the identifier split inherited from the
// deployed API: AdminReject is keyed by the internal id while every other
// transition is keyed by the core project id.
type ProjectResource interface {
	List(ctx context.Context) ([]map[string]any, error)
	Create(ctx context.Context, form ProjectForm, createdBy string) error
	Update(ctx context.Context, coreProjectID int64, form ProjectForm) error
	Delete(ctx context.Context, projectInternalID int64) error
	GeneratePID(ctx context.Context, coreProjectID int64) error
	SubmitForSuperAdminReview(ctx context.Context, coreProjectID int64) error
	AdminApprove(ctx context.Context, coreProjectID int64, remarks string) error
	AdminReject(ctx context.Context, projectInternalID int64, remarks string) error
	SuperAdminApprove(ctx context.Context, coreProjectID int64, remarks string) error
	SuperAdminReject(ctx context.Context, coreProjectID int64, remarks string) error
}

// ReferenceSource supplies the reference snapshot the enrichment pipeline
// joins against.
type ReferenceSource interface {
	Snapshot(ctx context.Context) (ReferenceData, error)
}

var (
	ErrRowBusy           = errors.New("another action is already in progress for this project")
	ErrRemarksRequired   = errors.New("remarks are required")
	ErrReferenceNotReady = errors.New("reference data is still loading")
)

const (
	msgPIDGenerated      = "PID generated successfully."
	msgCreated           = "Project created successfully."
	msgAdminApproved     = "Project approved by admin."
	msgAdminRejected     = "Project rejected by admin."
	msgSuperAdminApprove = "Project approved by superadmin."
	msgSuperAdminReject  = "Project rejected by superadmin."
)

// Orchestrator owns the dashboard's view state: the enriched project list,
// the per-row in-flight markers, and the page-level success/error banners.
// Every mutating action follows the same sequence: mark the row in flight,
// clear prior messages, guard the transition, fire the remote call, then on
// success reload the whole list. The in-flight marker is cleared on both
// paths; the displayed list only ever changes after a confirmed reload.
type Orchestrator struct {
	resource ProjectResource
	refs     ReferenceSource
	session  Session
	logger   *zap.SugaredLogger
	now      func() time.Time

	mu             sync.Mutex
	projects       []Project
	inFlight       map[int64]struct{}
	createInFlight bool
	successMsg     string
	errMsg         string
}

func NewOrchestrator(resource ProjectResource, refs ReferenceSource, session Session, logger *zap.SugaredLogger) *Orchestrator {
	return &Orchestrator{
		resource: resource,
		refs:     refs,
		session:  session,
		logger:   logger,
		now:      time.Now,
		inFlight: make(map[int64]struct{}),
	}
}

// Reload re-fetches and re-enriches the entire list. It is gated on the
// reference snapshot being ready: reference data first, enrichment second.
func (o *Orchestrator) Reload(ctx context.Context) error {
	refs, err := o.refs.Snapshot(ctx)
	if err != nil {
		return err
	}
	if !refs.Ready() {
		return ErrReferenceNotReady
	}

	raw, err := o.resource.List(ctx)
	if err != nil {
		return err
	}

	enriched := Enrich(DecodeProjects(raw), refs)

	o.mu.Lock()
	o.projects = enriched
	o.mu.Unlock()
	return nil
}

// View returns the rows the dashboard renders for the given filters and sort,
// plus the status options for the filter dropdown.
func (o *Orchestrator) View(f Filters, sortBy SortBy, order SortOrder) ([]Project, []string) {
	o.mu.Lock()
	projects := make([]Project, len(o.projects))
	copy(projects, o.projects)
	o.mu.Unlock()

	return Apply(projects, f, sortBy, order), StatusOptions(projects)
}

// Messages returns the current success and error banners.
func (o *Orchestrator) Messages() (success, errMsg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.successMsg, o.errMsg
}

// InFlight reports whether a transition is currently running for the row.
func (o *Orchestrator) InFlight(projectInternalID int64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.inFlight[projectInternalID]
	return ok
}

// beginRow marks the row in flight. Transitions are exclusive per row;
// concurrent transitions on different rows are permitted.
func (o *Orchestrator) beginRow(projectInternalID int64) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, busy := o.inFlight[projectInternalID]; busy {
		return ErrRowBusy
	}
	o.inFlight[projectInternalID] = struct{}{}
	return nil
}

func (o *Orchestrator) endRow(projectInternalID int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inFlight, projectInternalID)
}

// clearMessages runs at the start of every action so the banners always
// reflect the most recent attempt, never a mix of two.
func (o *Orchestrator) clearMessages() {
	o.mu.Lock()
	o.successMsg = ""
	o.errMsg = ""
	o.mu.Unlock()
}

func (o *Orchestrator) setError(err error) {
	o.mu.Lock()
	o.errMsg = err.Error()
	o.mu.Unlock()
}

func (o *Orchestrator) setSuccess(msg string) {
	if msg == "" {
		return
	}
	o.mu.Lock()
	o.successMsg = msg
	o.mu.Unlock()
}

// finish applies the shared tail of every transition: error banner on
// failure, success banner plus full reload on success.
func (o *Orchestrator) finish(ctx context.Context, err error, successMsg string) error {
	if err != nil {
		o.setError(err)
		return err
	}
	o.setSuccess(successMsg)
	if err := o.Reload(ctx); err != nil {
		o.logger.Errorf("reload after transition failed: %v", err)
		o.setError(err)
		return err
	}
	return nil
}

// transition runs one guarded remote call for a project row. The row marker
// is cleared on every path.
func (o *Orchestrator) transition(ctx context.Context, action Action, p Project, successMsg string, call func(context.Context) error) error {
	o.clearMessages()
	if err := CanTransition(action, p.Status, o.session.Role); err != nil {
		o.setError(err)
		return err
	}
	if err := o.beginRow(p.ProjectInternalID); err != nil {
		return err
	}
	defer o.endRow(p.ProjectInternalID)

	o.logger.Debugw("running workflow transition",
		"action", action,
		"projectInternalID", p.ProjectInternalID,
		"coreProjectID", p.CoreProjectID,
		"user", o.session.Username,
	)

	return o.finish(ctx, call(ctx), successMsg)
}

func (o *Orchestrator) GeneratePID(ctx context.Context, p Project) error {
	return o.transition(ctx, ActionGeneratePID, p, msgPIDGenerated, func(ctx context.Context) error {
		return o.resource.GeneratePID(ctx, p.CoreProjectID)
	})
}

func (o *Orchestrator) SubmitForSuperAdminReview(ctx context.Context, p Project) error {
	return o.transition(ctx, ActionSubmitForReview, p, "", func(ctx context.Context) error {
		return o.resource.SubmitForSuperAdminReview(ctx, p.CoreProjectID)
	})
}

func (o *Orchestrator) AdminApprove(ctx context.Context, p Project) error {
	return o.transition(ctx, ActionAdminApprove, p, msgAdminApproved, func(ctx context.Context) error {
		return o.resource.AdminApprove(ctx, p.CoreProjectID, "Approved by admin")
	})
}

func (o *Orchestrator) AdminReject(ctx context.Context, p Project) error {
	return o.transition(ctx, ActionAdminReject, p, msgAdminRejected, func(ctx context.Context) error {
		// keyed by the internal id, unlike every other transition
		return o.resource.AdminReject(ctx, p.ProjectInternalID, "Rejected by admin")
	})
}

func (o *Orchestrator) SuperAdminApprove(ctx context.Context, p Project, remarks string) error {
	if strings.TrimSpace(remarks) == "" {
		return ErrRemarksRequired
	}
	return o.transition(ctx, ActionSuperAdminApprove, p, msgSuperAdminApprove, func(ctx context.Context) error {
		return o.resource.SuperAdminApprove(ctx, p.CoreProjectID, remarks)
	})
}

func (o *Orchestrator) SuperAdminReject(ctx context.Context, p Project, remarks string) error {
	if strings.TrimSpace(remarks) == "" {
		return ErrRemarksRequired
	}
	return o.transition(ctx, ActionSuperAdminReject, p, msgSuperAdminReject, func(ctx context.Context) error {
		return o.resource.SuperAdminReject(ctx, p.CoreProjectID, remarks)
	})
}

func (o *Orchestrator) DeleteProject(ctx context.Context, p Project) error {
	return o.transition(ctx, ActionDelete, p, "", func(ctx context.Context) error {
		return o.resource.Delete(ctx, p.ProjectInternalID)
	})
}

// CreateProject validates the form before any remote call; a validation
// failure is returned for inline rendering and never reaches the resource.
func (o *Orchestrator) CreateProject(ctx context.Context, form ProjectForm) error {
	o.clearMessages()
	if err := CanTransition(ActionCreate, "", o.session.Role); err != nil {
		o.setError(err)
		return err
	}

	refs, err := o.refs.Snapshot(ctx)
	if err != nil {
		o.setError(err)
		return err
	}
	if err := form.Validate(o.now(), refs); err != nil {
		return err
	}

	o.mu.Lock()
	if o.createInFlight {
		o.mu.Unlock()
		return ErrRowBusy
	}
	o.createInFlight = true
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.createInFlight = false
		o.mu.Unlock()
	}()

	return o.finish(ctx, o.resource.Create(ctx, form, o.session.Username), msgCreated)
}

// UpdateProject re-runs the same validation gate as create and is keyed by
// the core project id.
func (o *Orchestrator) UpdateProject(ctx context.Context, p Project, form ProjectForm) error {
	o.clearMessages()
	if err := CanTransition(ActionUpdate, p.Status, o.session.Role); err != nil {
		o.setError(err)
		return err
	}

	refs, err := o.refs.Snapshot(ctx)
	if err != nil {
		o.setError(err)
		return err
	}
	if err := form.Validate(o.now(), refs); err != nil {
		return err
	}

	if err := o.beginRow(p.ProjectInternalID); err != nil {
		return err
	}
	defer o.endRow(p.ProjectInternalID)

	return o.finish(ctx, o.resource.Update(ctx, p.CoreProjectID, form), "")
}
