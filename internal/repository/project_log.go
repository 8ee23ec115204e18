package repository

import (
	"context"
	"time"

	constant "github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
	"gorm.io/gorm"
)

type ProjectLogRepository struct {
	*baseRepository
}

func (plr ProjectLogRepository) GetByProjectInternalId(ctx context.Context, tx *gorm.DB, projectInternalID int64) ([]*model.ProjectLog, error) {
	plr.logger.Debugf("Get project logs by internal id: %d", projectInternalID)

	db := plr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var logs []*model.ProjectLog
	if err := db.WithContext(ctx).Model(&model.ProjectLog{}).Where(model.ProjectLog{
		ProjectInternalID: projectInternalID,
	}).Order("timestamp asc").Find(&logs).Error; err != nil {
		return logs, err
	}

	return logs, nil
}

func (plr *ProjectLogRepository) Append(ctx context.Context, tx *gorm.DB, entry model.ProjectLog) error {
	plr.logger.Debugf("Append project log: %s for internal id %d", entry.Action, entry.ProjectInternalID)

	db := plr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	return db.WithContext(ctx).Model(&model.ProjectLog{}).Create(&entry).Error
}
