package repository

import (
	"context"

	constant "github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
	"gorm.io/gorm"
)

type SegmentRepository struct {
	*baseRepository
}

func (sr SegmentRepository) ListActive(ctx context.Context, tx *gorm.DB) ([]model.Segment, error) {
	sr.logger.Debug("List active segments")

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var segments []model.Segment
	if err := db.WithContext(ctx).Model(&model.Segment{}).Where(&model.Segment{IsActive: true}).
		Order("segment_name").Find(&segments).Error; err != nil {
		return nil, err
	}

	return segments, nil
}

func (sr SegmentRepository) List(ctx context.Context, tx *gorm.DB) ([]model.Segment, error) {
	sr.logger.Debug("List segments")

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var segments []model.Segment
	if err := db.WithContext(ctx).Model(&model.Segment{}).Order("segment_name").Find(&segments).Error; err != nil {
		return nil, err
	}

	return segments, nil
}

func (sr *SegmentRepository) Create(ctx context.Context, tx *gorm.DB, segment model.Segment) error {
	sr.logger.Debugf("Create segment: %s \n", segment.SegmentName)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Segment{}).Create(&segment).Error
}

func (sr *SegmentRepository) Update(ctx context.Context, tx *gorm.DB, segmentID int64, segment model.Segment) error {
	sr.logger.Debugf("Update segment id: %d \n", segmentID)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Segment{}).
		Where(&model.Segment{SegmentID: segmentID}).
		Updates(map[string]any{
			"segment_name": segment.SegmentName,
			"is_active":    segment.IsActive,
		}).Error
}

func (sr *SegmentRepository) Delete(ctx context.Context, tx *gorm.DB, segmentID int64) error {
	sr.logger.Debugf("Delete segment id: %d \n", segmentID)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where(&model.Segment{SegmentID: segmentID}).Delete(&model.Segment{}).Error
}
