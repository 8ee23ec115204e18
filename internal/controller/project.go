package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/auth"
	"github.com/piddash/pidgen/internal/mailer"
	"github.com/piddash/pidgen/internal/repository"
	"github.com/piddash/pidgen/internal/util"
	"github.com/piddash/pidgen/internal/workflow"
)

type ProjectController struct {
	*baseController
}

const defaultBadgeSize = 256

// orchestratorFor builds a per-request workflow orchestrator bound to the
// authenticated user. Reload is left to the caller so read-only endpoints can
// skip it when they fail early.
func (pc ProjectController) orchestratorFor(ctx *gin.Context) (*workflow.Orchestrator, *auth.JWTPayload, error) {
	user, err := pc.getAuthUser(ctx)
	if err != nil {
		return nil, nil, err
	}

	resource := repository.NewWorkflowResource(pc.app.Repository.Project)
	o := workflow.NewOrchestrator(resource, pc.app.RefCache, workflow.Session{
		Username: user.Username,
		Role:     user.Role,
	}, pc.app.Logger)

	return o, user, nil
}

func (pc ProjectController) reloadedOrchestrator(ctx *gin.Context) (*workflow.Orchestrator, *auth.JWTPayload, bool) {
	o, user, err := pc.orchestratorFor(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return nil, nil, false
	}

	if err := o.Reload(ctx); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, workflow.ErrReferenceNotReady) {
			status = http.StatusServiceUnavailable
		}
		util.ResponseFailed(ctx, status, "", util.GenerateErrorMessages(err), nil)
		return nil, nil, false
	}

	return o, user, true
}

func paramInt64(ctx *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}

// findByCoreId resolves a core project id to the latest instance, the row
// with the highest internal id. Core ids group recurring instances and
// transitions always target the newest one; older rows keep their terminal
// status and must never be the guard's input.
func (pc ProjectController) findByCoreId(o *workflow.Orchestrator, coreProjectID int64) (workflow.Project, bool) {
	list, _ := o.View(workflow.Filters{}, "", "")
	var latest workflow.Project
	found := false
	for _, p := range list {
		if p.CoreProjectID != coreProjectID {
			continue
		}
		if !found || p.ProjectInternalID > latest.ProjectInternalID {
			latest = p
			found = true
		}
	}
	return latest, found
}

func (pc ProjectController) findByInternalId(o *workflow.Orchestrator, projectInternalID int64) (workflow.Project, bool) {
	list, _ := o.View(workflow.Filters{}, "", "")
	for _, p := range list {
		if p.ProjectInternalID == projectInternalID {
			return p, true
		}
	}
	return workflow.Project{}, false
}

// Dashboard returns the enriched, filtered and sorted project list plus the
// status options for the filter dropdown.
func (pc ProjectController) Dashboard(ctx *gin.Context) {
	o, _, ok := pc.reloadedOrchestrator(ctx)
	if !ok {
		return
	}

	var filters workflow.Filters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	sortBy := workflow.SortBy(ctx.Query("sortBy"))
	order := workflow.SortOrder(ctx.DefaultQuery("sortOrder", string(workflow.SortDesc)))

	projects, statusOptions := o.View(filters, sortBy, order)
	util.ResponseSuccess(ctx, gin.H{
		"projects":      projects,
		"statusOptions": statusOptions,
	})
}

func (pc ProjectController) Create(ctx *gin.Context) {
	o, _, ok := pc.reloadedOrchestrator(ctx)
	if !ok {
		return
	}

	var form workflow.ProjectForm
	if err := ctx.ShouldBind(&form); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := o.CreateProject(ctx, form); err != nil {
		pc.respondWorkflowError(ctx, err)
		return
	}

	successMsg, _ := o.Messages()
	util.ResponseSuccess(ctx, gin.H{"message": successMsg})
}

func (pc ProjectController) Update(ctx *gin.Context) {
	coreProjectID, err := paramInt64(ctx, "coreProjectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid core project id", util.GenerateErrorMessages(err), nil)
		return
	}

	o, _, ok := pc.reloadedOrchestrator(ctx)
	if !ok {
		return
	}

	project, found := pc.findByCoreId(o, coreProjectID)
	if !found {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
		return
	}

	var form workflow.ProjectForm
	if err := ctx.ShouldBind(&form); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := o.UpdateProject(ctx, project, form); err != nil {
		pc.respondWorkflowError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (pc ProjectController) Delete(ctx *gin.Context) {
	projectInternalID, err := paramInt64(ctx, "projectInternalId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", util.GenerateErrorMessages(err), nil)
		return
	}

	o, _, ok := pc.reloadedOrchestrator(ctx)
	if !ok {
		return
	}

	project, found := pc.findByInternalId(o, projectInternalID)
	if !found {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
		return
	}

	if err := o.DeleteProject(ctx, project); err != nil {
		pc.respondWorkflowError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (pc ProjectController) GeneratePID(ctx *gin.Context) {
	coreProjectID, err := paramInt64(ctx, "coreProjectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid core project id", util.GenerateErrorMessages(err), nil)
		return
	}

	o, _, ok := pc.reloadedOrchestrator(ctx)
	if !ok {
		return
	}

	project, found := pc.findByCoreId(o, coreProjectID)
	if !found {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
		return
	}

	if err := o.GeneratePID(ctx, project); err != nil {
		pc.respondWorkflowError(ctx, err)
		return
	}

	successMsg, _ := o.Messages()
	reloaded, _ := pc.findByCoreId(o, coreProjectID)
	util.ResponseSuccess(ctx, gin.H{
		"message": successMsg,
		"project": reloaded,
	})
}

func (pc ProjectController) SubmitForSuperAdminReview(ctx *gin.Context) {
	coreProjectID, err := paramInt64(ctx, "coreProjectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid core project id", util.GenerateErrorMessages(err), nil)
		return
	}

	o, _, ok := pc.reloadedOrchestrator(ctx)
	if !ok {
		return
	}

	project, found := pc.findByCoreId(o, coreProjectID)
	if !found {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
		return
	}

	if err := o.SubmitForSuperAdminReview(ctx, project); err != nil {
		pc.respondWorkflowError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

type remarksRequest struct {
	Remarks string `json:"remarks" form:"remarks"`
}

func (pc ProjectController) AdminApprove(ctx *gin.Context) {
	coreProjectID, err := paramInt64(ctx, "coreProjectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid core project id", util.GenerateErrorMessages(err), nil)
		return
	}

	o, _, ok := pc.reloadedOrchestrator(ctx)
	if !ok {
		return
	}

	project, found := pc.findByCoreId(o, coreProjectID)
	if !found {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
		return
	}

	if err := o.AdminApprove(ctx, project); err != nil {
		pc.respondWorkflowError(ctx, err)
		return
	}

	pc.notifyCreator(project, mailer.PROJECT_APPROVED_TEMPLATE, "")
	successMsg, _ := o.Messages()
	util.ResponseSuccess(ctx, gin.H{"message": successMsg})
}

// AdminReject is the one transition addressed by the internal id; see the
// project repository for why the identifier differs.
func (pc ProjectController) AdminReject(ctx *gin.Context) {
	projectInternalID, err := paramInt64(ctx, "projectInternalId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", util.GenerateErrorMessages(err), nil)
		return
	}

	o, _, ok := pc.reloadedOrchestrator(ctx)
	if !ok {
		return
	}

	project, found := pc.findByInternalId(o, projectInternalID)
	if !found {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
		return
	}

	if err := o.AdminReject(ctx, project); err != nil {
		pc.respondWorkflowError(ctx, err)
		return
	}

	pc.notifyCreator(project, mailer.PROJECT_REJECTED_TEMPLATE, "")
	successMsg, _ := o.Messages()
	util.ResponseSuccess(ctx, gin.H{"message": successMsg})
}

func (pc ProjectController) SuperAdminApprove(ctx *gin.Context) {
	pc.superAdminDecision(ctx, true)
}

func (pc ProjectController) SuperAdminReject(ctx *gin.Context) {
	pc.superAdminDecision(ctx, false)
}

func (pc ProjectController) superAdminDecision(ctx *gin.Context, approve bool) {
	coreProjectID, err := paramInt64(ctx, "coreProjectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid core project id", util.GenerateErrorMessages(err), nil)
		return
	}

	var req remarksRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	o, _, ok := pc.reloadedOrchestrator(ctx)
	if !ok {
		return
	}

	project, found := pc.findByCoreId(o, coreProjectID)
	if !found {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
		return
	}

	if approve {
		err = o.SuperAdminApprove(ctx, project, req.Remarks)
	} else {
		err = o.SuperAdminReject(ctx, project, req.Remarks)
	}
	if err != nil {
		pc.respondWorkflowError(ctx, err)
		return
	}

	template := mailer.PROJECT_APPROVED_TEMPLATE
	if !approve {
		template = mailer.PROJECT_NEEDS_REVISION_TEMPLATE
	}
	pc.notifyCreator(project, template, req.Remarks)

	successMsg, _ := o.Messages()
	util.ResponseSuccess(ctx, gin.H{"message": successMsg})
}

// Logs returns the workflow audit trail for one project row.
func (pc ProjectController) Logs(ctx *gin.Context) {
	projectInternalID, err := paramInt64(ctx, "projectInternalId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", util.GenerateErrorMessages(err), nil)
		return
	}

	logs, err := pc.app.Repository.ProjectLog.GetByProjectInternalId(ctx, nil, projectInternalID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"logs": logs})
}

// PIDBadge renders the generated PID as a PNG QR code for printing on project
// paperwork.
func (pc ProjectController) PIDBadge(ctx *gin.Context) {
	projectInternalID, err := paramInt64(ctx, "projectInternalId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetByInternalId(ctx, nil, projectInternalID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if project.GeneratedPID == nil || *project.GeneratedPID == "" {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project has no generated PID yet", nil, nil)
		return
	}

	size, err := strconv.Atoi(ctx.DefaultQuery("size", strconv.Itoa(defaultBadgeSize)))
	if err != nil || size <= 0 {
		size = defaultBadgeSize
	}

	png, err := util.GeneratePIDBadge(*project.GeneratedPID, size)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

// respondWorkflowError maps workflow failures onto status codes: validation
// problems and remark gates are client errors, everything else that the
// transition table rejects is a conflict with current state.
func (pc ProjectController) respondWorkflowError(ctx *gin.Context, err error) {
	var ve *workflow.ValidationError
	switch {
	case errors.As(err, &ve):
		util.ResponseFailed(ctx, http.StatusBadRequest, "Validation failed", ve.Fields, nil)
	case errors.Is(err, workflow.ErrRemarksRequired):
		util.ResponseFailed(ctx, http.StatusBadRequest, "Remarks are required", nil, nil)
	case errors.Is(err, workflow.ErrRowBusy):
		util.ResponseFailed(ctx, http.StatusConflict, "Another action is already in progress for this project", nil, nil)
	case errors.Is(err, workflow.ErrReferenceNotReady):
		util.ResponseFailed(ctx, http.StatusServiceUnavailable, "", util.GenerateErrorMessages(err), nil)
	default:
		util.ResponseFailed(ctx, http.StatusUnprocessableEntity, "", util.GenerateErrorMessages(err), nil)
	}
}

// notifyCreator emails the user who created the project about the decision.
// Delivery is best effort and never blocks the response.
func (pc ProjectController) notifyCreator(project workflow.Project, template string, remarks string) {
	ctx := context.Background()

	raw, err := pc.app.Repository.Project.GetByInternalId(ctx, nil, project.ProjectInternalID)
	if err != nil || raw.CreatedByUserName == "" {
		return
	}

	creator, err := pc.app.Repository.User.GetByUsername(ctx, nil, raw.CreatedByUserName)
	if err != nil || creator == nil {
		return
	}

	pid := ""
	if raw.GeneratedPID != nil {
		pid = *raw.GeneratedPID
	}

	go func() {
		_, err := pc.app.Mailer.Send(template, creator.Username, creator.Email, mailer.ApprovalMailData{
			Username:     creator.Username,
			ProjectName:  raw.ProjectName,
			GeneratedPID: pid,
			Remarks:      remarks,
		})
		if err != nil {
			pc.app.Logger.Errorf("Failed to send workflow notification mail: %v", err)
		}
	}()
}
