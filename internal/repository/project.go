package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	constant "github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
	"github.com/piddash/pidgen/internal/util"
	"github.com/piddash/pidgen/internal/workflow"
	"gorm.io/gorm"
)

// serialLength is the random tail of a generated PID, drawn from the
// crockford-style alphabet in util.GenerateSerial.
const serialLength = 4

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository struct {
	*baseRepository
	log *ProjectLogRepository
}

// List returns every project as the loosely typed wire shape the dashboard
// decoder consumes. The JSON round-trip keeps the wire field names in one
// place, the model struct tags.
func (pr ProjectRepository) List(ctx context.Context, tx *gorm.DB) ([]map[string]any, error) {
	pr.logger.Debug("List projects")

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var projects []model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).Order("project_internal_id").Find(&projects).Error; err != nil {
		return nil, err
	}

	blob, err := json.Marshal(projects)
	if err != nil {
		return nil, err
	}
	var raw []map[string]any
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (pr ProjectRepository) GetByInternalId(ctx context.Context, tx *gorm.DB, projectInternalID int64) (*model.Project, error) {
	pr.logger.Debugf("Get project by internal id: %d \n", projectInternalID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).Where(&model.Project{ProjectInternalID: projectInternalID}).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

// GetByCoreId returns the most recent project row for a core project. Core ids
// group recurring instances; workflow transitions always target the latest.
func (pr ProjectRepository) GetByCoreId(ctx context.Context, tx *gorm.DB, coreProjectID int64) (*model.Project, error) {
	pr.logger.Debugf("Get project by core id: %d \n", coreProjectID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).Where(&model.Project{CoreProjectID: coreProjectID}).
		Order("project_internal_id desc").First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

func parseFormDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// Create mints a new project from its core project template. Name and
// abbreviation are copied from the core project so the dashboard cannot drift
// from the template; the new row always starts in PendingPIDGeneration.
func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, form workflow.ProjectForm, createdBy string) error {
	pr.logger.Debugf("Create project for core id %d by %s \n", form.CoreProjectID, createdBy)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	startDate, err := parseFormDate(form.ProjectStartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", form.ProjectStartDate, err)
	}
	endDate, err := parseFormDate(form.ProjectEndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", form.ProjectEndDate, err)
	}

	return pr.withTx(db, func(tx2 *gorm.DB) error {
		var core model.CoreProject
		if err := tx2.WithContext(ctx).Model(&model.CoreProject{}).Where(&model.CoreProject{CoreProjectID: form.CoreProjectID}).First(&core).Error; err != nil {
			return fmt.Errorf("core project %d: %w", form.CoreProjectID, err)
		}

		now := time.Now()
		return tx2.WithContext(ctx).Model(&model.Project{}).Create(&model.Project{
			CoreProjectID:       core.CoreProjectID,
			ProjectName:         core.ProjectName,
			ProjectAbbreviation: core.ProjectAbbreviation,
			LocationCity:        form.LocationCity,
			CustomerAddress:     form.CustomerAddress,
			ProjectStartDate:    startDate,
			ProjectEndDate:      endDate,
			ResourceRequirement: form.ResourceRequirement,
			CustomerID:          form.CustomerID,
			BUID:                form.BUID,
			BillingTypeID:       form.BillingTypeID,
			SegmentID:           form.SegmentID,
			Status:              constant.StatusPendingPIDGeneration,
			AuditFields: model.AuditFields{
				CreatedDate:       &now,
				CreatedByUserName: createdBy,
			},
		}).Error
	})
}

// Update rewrites the editable fields of the latest row for a core project.
// The status gate mirrors the dashboard's edit button; the generated PID and
// audit fields are never touched here.
func (pr ProjectRepository) Update(ctx context.Context, tx *gorm.DB, coreProjectID int64, form workflow.ProjectForm) error {
	pr.logger.Debugf("Update project for core id: %d \n", coreProjectID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	startDate, err := parseFormDate(form.ProjectStartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", form.ProjectStartDate, err)
	}
	endDate, err := parseFormDate(form.ProjectEndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", form.ProjectEndDate, err)
	}

	return pr.withTx(db, func(tx2 *gorm.DB) error {
		project, err := pr.GetByCoreId(ctx, tx2, coreProjectID)
		if err != nil {
			return err
		}
		if err := workflow.StatusAllows(workflow.ActionUpdate, project.Status); err != nil {
			return err
		}

		return tx2.WithContext(ctx).Model(&model.Project{}).
			Where(&model.Project{ProjectInternalID: project.ProjectInternalID}).
			Updates(map[string]any{
				"location_city":        form.LocationCity,
				"customer_address":     form.CustomerAddress,
				"project_start_date":   startDate,
				"project_end_date":     endDate,
				"resource_requirement": form.ResourceRequirement,
				"customer_id":          form.CustomerID,
				"buid":                 form.BUID,
				"billing_type_id":      form.BillingTypeID,
				"segment_id":           form.SegmentID,
			}).Error
	})
}

func (pr ProjectRepository) Delete(ctx context.Context, tx *gorm.DB, projectInternalID int64) error {
	pr.logger.Debugf("Delete project by internal id: %d \n", projectInternalID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Where(&model.Project{ProjectInternalID: projectInternalID}).Delete(&model.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// composePID builds the identifier from its four segments: the BU code fused
// with the customer code, the project abbreviation, the start year, and a
// random serial. The customer code falls back to the core project's start
// series when the customer has none assigned.
func composePID(project *model.Project, core *model.CoreProject, customer *model.Customer, bu *model.BusinessUnit) (string, error) {
	customerCode := customer.CustomerCode
	if customerCode == "" {
		customerCode = core.CustomerCodeStartSeries
	}
	if bu.BUCode == "" || customerCode == "" {
		return "", fmt.Errorf("cannot compose PID: missing BU code or customer code for project %d", project.ProjectInternalID)
	}

	serial, err := util.GenerateSerial(serialLength)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%s-%s-%s-%s",
		bu.BUCode,
		customerCode,
		project.ProjectAbbreviation,
		project.ProjectStartDate.Format("06"),
		serial,
	), nil
}

// GeneratePID composes and stores the project identifier and advances the
// workflow. A project that already carries a PID keeps it; regeneration after
// a revision loop only re-runs the status transition, so identifiers stay
// stable.
func (pr ProjectRepository) GeneratePID(ctx context.Context, tx *gorm.DB, coreProjectID int64) error {
	pr.logger.Debugf("Generate PID for core id: %d \n", coreProjectID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return pr.withTx(db, func(tx2 *gorm.DB) error {
		project, err := pr.GetByCoreId(ctx, tx2, coreProjectID)
		if err != nil {
			return err
		}
		if err := workflow.StatusAllows(workflow.ActionGeneratePID, project.Status); err != nil {
			return err
		}

		updates := map[string]any{}
		if project.GeneratedPID == nil || *project.GeneratedPID == "" {
			var core model.CoreProject
			if err := tx2.WithContext(ctx).Where(&model.CoreProject{CoreProjectID: project.CoreProjectID}).First(&core).Error; err != nil {
				return err
			}
			var customer model.Customer
			if err := tx2.WithContext(ctx).Where(&model.Customer{CustomerID: project.CustomerID}).First(&customer).Error; err != nil {
				return err
			}
			var bu model.BusinessUnit
			if err := tx2.WithContext(ctx).Where(&model.BusinessUnit{BUID: project.BUID}).First(&bu).Error; err != nil {
				return err
			}

			pid, err := composePID(project, &core, &customer, &bu)
			if err != nil {
				return err
			}
			updates["generated_pid"] = pid
		}

		next, _ := workflow.NextStatus(workflow.ActionGeneratePID)
		updates["status"] = next

		if err := tx2.WithContext(ctx).Model(&model.Project{}).
			Where(&model.Project{ProjectInternalID: project.ProjectInternalID}).
			Updates(updates).Error; err != nil {
			return err
		}

		return pr.log.Append(ctx, tx2, model.ProjectLog{
			ProjectInternalID: project.ProjectInternalID,
			Action:            string(workflow.ActionGeneratePID),
			FromStatus:        string(project.Status),
			ToStatus:          string(next),
		})
	})
}

// transitionByCore is the shared body of the status-only transitions keyed by
// core project id.
func (pr ProjectRepository) transitionByCore(ctx context.Context, tx *gorm.DB, action workflow.Action, coreProjectID int64, remarks *string) error {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return pr.withTx(db, func(tx2 *gorm.DB) error {
		project, err := pr.GetByCoreId(ctx, tx2, coreProjectID)
		if err != nil {
			return err
		}
		return pr.applyTransition(ctx, tx2, action, project, remarks)
	})
}

func (pr ProjectRepository) applyTransition(ctx context.Context, tx *gorm.DB, action workflow.Action, project *model.Project, remarks *string) error {
	if err := workflow.StatusAllows(action, project.Status); err != nil {
		return err
	}

	next, ok := workflow.NextStatus(action)
	if !ok {
		return fmt.Errorf("action %s does not change status", action)
	}

	updates := map[string]any{"status": next}
	var remarksText string
	if remarks != nil {
		updates["approval_remarks"] = *remarks
		remarksText = *remarks
	}

	if err := tx.WithContext(ctx).Model(&model.Project{}).
		Where(&model.Project{ProjectInternalID: project.ProjectInternalID}).
		Updates(updates).Error; err != nil {
		return err
	}

	return pr.log.Append(ctx, tx, model.ProjectLog{
		ProjectInternalID: project.ProjectInternalID,
		Action:            string(action),
		FromStatus:        string(project.Status),
		ToStatus:          string(next),
		Remarks:           remarksText,
	})
}

func (pr ProjectRepository) SubmitForSuperAdminReview(ctx context.Context, tx *gorm.DB, coreProjectID int64) error {
	pr.logger.Debugf("Submit project for superadmin review, core id: %d \n", coreProjectID)
	return pr.transitionByCore(ctx, tx, workflow.ActionSubmitForReview, coreProjectID, nil)
}

func (pr ProjectRepository) AdminApprove(ctx context.Context, tx *gorm.DB, coreProjectID int64, remarks string) error {
	pr.logger.Debugf("Admin approve project, core id: %d \n", coreProjectID)
	return pr.transitionByCore(ctx, tx, workflow.ActionAdminApprove, coreProjectID, &remarks)
}

// AdminReject is keyed by the internal id. The asymmetry is load-bearing: the
// dashboard sends the internal id for rejection and the core id for everything
// else, and both sides must agree.
func (pr ProjectRepository) AdminReject(ctx context.Context, tx *gorm.DB, projectInternalID int64, remarks string) error {
	pr.logger.Debugf("Admin reject project, internal id: %d \n", projectInternalID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return pr.withTx(db, func(tx2 *gorm.DB) error {
		project, err := pr.GetByInternalId(ctx, tx2, projectInternalID)
		if err != nil {
			return err
		}
		return pr.applyTransition(ctx, tx2, workflow.ActionAdminReject, project, &remarks)
	})
}

func (pr ProjectRepository) SuperAdminApprove(ctx context.Context, tx *gorm.DB, coreProjectID int64, remarks string) error {
	pr.logger.Debugf("Superadmin approve project, core id: %d \n", coreProjectID)
	return pr.transitionByCore(ctx, tx, workflow.ActionSuperAdminApprove, coreProjectID, &remarks)
}

func (pr ProjectRepository) SuperAdminReject(ctx context.Context, tx *gorm.DB, coreProjectID int64, remarks string) error {
	pr.logger.Debugf("Superadmin reject project, core id: %d \n", coreProjectID)
	return pr.transitionByCore(ctx, tx, workflow.ActionSuperAdminReject, coreProjectID, &remarks)
}
