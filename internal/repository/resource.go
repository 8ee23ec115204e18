package repository

import (
	"context"

	"github.com/piddash/pidgen/internal/workflow"
)

// WorkflowResource adapts the project repository to the narrower interface
// the workflow orchestrator drives. It binds tx to nil; transitions manage
// their own transactions inside the repository.
type WorkflowResource struct {
	project *ProjectRepository
}

func NewWorkflowResource(project *ProjectRepository) *WorkflowResource {
	return &WorkflowResource{project: project}
}

var _ workflow.ProjectResource = (*WorkflowResource)(nil)

func (w WorkflowResource) List(ctx context.Context) ([]map[string]any, error) {
	return w.project.List(ctx, nil)
}

func (w WorkflowResource) Create(ctx context.Context, form workflow.ProjectForm, createdBy string) error {
	return w.project.Create(ctx, nil, form, createdBy)
}

func (w WorkflowResource) Update(ctx context.Context, coreProjectID int64, form workflow.ProjectForm) error {
	return w.project.Update(ctx, nil, coreProjectID, form)
}

func (w WorkflowResource) Delete(ctx context.Context, projectInternalID int64) error {
	return w.project.Delete(ctx, nil, projectInternalID)
}

func (w WorkflowResource) GeneratePID(ctx context.Context, coreProjectID int64) error {
	return w.project.GeneratePID(ctx, nil, coreProjectID)
}

func (w WorkflowResource) SubmitForSuperAdminReview(ctx context.Context, coreProjectID int64) error {
	return w.project.SubmitForSuperAdminReview(ctx, nil, coreProjectID)
}

func (w WorkflowResource) AdminApprove(ctx context.Context, coreProjectID int64, remarks string) error {
	return w.project.AdminApprove(ctx, nil, coreProjectID, remarks)
}

func (w WorkflowResource) AdminReject(ctx context.Context, projectInternalID int64, remarks string) error {
	return w.project.AdminReject(ctx, nil, projectInternalID, remarks)
}

func (w WorkflowResource) SuperAdminApprove(ctx context.Context, coreProjectID int64, remarks string) error {
	return w.project.SuperAdminApprove(ctx, nil, coreProjectID, remarks)
}

func (w WorkflowResource) SuperAdminReject(ctx context.Context, coreProjectID int64, remarks string) error {
	return w.project.SuperAdminReject(ctx, nil, coreProjectID, remarks)
}
