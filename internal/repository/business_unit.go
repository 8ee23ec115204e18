package repository

import (
	"context"

	constant "github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
	"gorm.io/gorm"
)

type BusinessUnitRepository struct {
	*baseRepository
}

func (br BusinessUnitRepository) ListActive(ctx context.Context, tx *gorm.DB) ([]model.BusinessUnit, error) {
	br.logger.Debug("List active business units")

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var units []model.BusinessUnit
	if err := db.WithContext(ctx).Model(&model.BusinessUnit{}).Where(&model.BusinessUnit{IsActive: true}).
		Order("bu_name").Find(&units).Error; err != nil {
		return nil, err
	}

	return units, nil
}

func (br BusinessUnitRepository) List(ctx context.Context, tx *gorm.DB) ([]model.BusinessUnit, error) {
	br.logger.Debug("List business units")

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var units []model.BusinessUnit
	if err := db.WithContext(ctx).Model(&model.BusinessUnit{}).Order("bu_name").Find(&units).Error; err != nil {
		return nil, err
	}

	return units, nil
}

func (br BusinessUnitRepository) GetById(ctx context.Context, tx *gorm.DB, buid int64) (*model.BusinessUnit, error) {
	br.logger.Debugf("Get business unit by id: %d \n", buid)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var unit model.BusinessUnit
	if err := db.WithContext(ctx).Model(&model.BusinessUnit{}).Where(&model.BusinessUnit{BUID: buid}).First(&unit).Error; err != nil {
		return nil, err
	}

	return &unit, nil
}

func (br *BusinessUnitRepository) Create(ctx context.Context, tx *gorm.DB, unit model.BusinessUnit) error {
	br.logger.Debugf("Create business unit: %s \n", unit.BUName)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.BusinessUnit{}).Create(&unit).Error
}

func (br *BusinessUnitRepository) Update(ctx context.Context, tx *gorm.DB, buid int64, unit model.BusinessUnit) error {
	br.logger.Debugf("Update business unit id: %d \n", buid)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.BusinessUnit{}).
		Where(&model.BusinessUnit{BUID: buid}).
		Updates(map[string]any{
			"bu_name":   unit.BUName,
			"bu_code":   unit.BUCode,
			"is_active": unit.IsActive,
		}).Error
}

func (br *BusinessUnitRepository) Delete(ctx context.Context, tx *gorm.DB, buid int64) error {
	br.logger.Debugf("Delete business unit id: %d \n", buid)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where(&model.BusinessUnit{BUID: buid}).Delete(&model.BusinessUnit{}).Error
}
