package repository

import (
	"context"

	constant "github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
	"gorm.io/gorm"
)

type CoreProjectRepository struct {
	*baseRepository
}

// ListActive feeds the "Project Name" select on the create form; only active
// templates can mint new projects.
func (cr CoreProjectRepository) ListActive(ctx context.Context, tx *gorm.DB) ([]model.CoreProject, error) {
	cr.logger.Debug("List active core projects")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var cores []model.CoreProject
	if err := db.WithContext(ctx).Model(&model.CoreProject{}).Where(&model.CoreProject{IsActive: true}).
		Order("project_name").Find(&cores).Error; err != nil {
		return nil, err
	}

	return cores, nil
}

func (cr CoreProjectRepository) List(ctx context.Context, tx *gorm.DB) ([]model.CoreProject, error) {
	cr.logger.Debug("List core projects")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var cores []model.CoreProject
	if err := db.WithContext(ctx).Model(&model.CoreProject{}).Order("project_name").Find(&cores).Error; err != nil {
		return nil, err
	}

	return cores, nil
}

func (cr CoreProjectRepository) GetById(ctx context.Context, tx *gorm.DB, coreProjectID int64) (*model.CoreProject, error) {
	cr.logger.Debugf("Get core project by id: %d \n", coreProjectID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var core model.CoreProject
	if err := db.WithContext(ctx).Model(&model.CoreProject{}).Where(&model.CoreProject{CoreProjectID: coreProjectID}).First(&core).Error; err != nil {
		return nil, err
	}

	return &core, nil
}

func (cr *CoreProjectRepository) Create(ctx context.Context, tx *gorm.DB, core model.CoreProject) error {
	cr.logger.Debugf("Create core project: %s \n", core.ProjectName)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.CoreProject{}).Create(&core).Error
}

func (cr *CoreProjectRepository) Update(ctx context.Context, tx *gorm.DB, coreProjectID int64, core model.CoreProject) error {
	cr.logger.Debugf("Update core project id: %d \n", coreProjectID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.CoreProject{}).
		Where(&model.CoreProject{CoreProjectID: coreProjectID}).
		Updates(map[string]any{
			"project_name":               core.ProjectName,
			"project_abbreviation":       core.ProjectAbbreviation,
			"customer_code_start_series": core.CustomerCodeStartSeries,
			"is_active":                  core.IsActive,
		}).Error
}

func (cr *CoreProjectRepository) Delete(ctx context.Context, tx *gorm.DB, coreProjectID int64) error {
	cr.logger.Debugf("Delete core project id: %d \n", coreProjectID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where(&model.CoreProject{CoreProjectID: coreProjectID}).Delete(&model.CoreProject{}).Error
}
