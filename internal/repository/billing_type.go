package repository

import (
	"context"

	constant "github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
	"gorm.io/gorm"
)

type BillingTypeRepository struct {
	*baseRepository
}

func (br BillingTypeRepository) ListActive(ctx context.Context, tx *gorm.DB) ([]model.BillingType, error) {
	br.logger.Debug("List active billing types")

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var types []model.BillingType
	if err := db.WithContext(ctx).Model(&model.BillingType{}).Where(&model.BillingType{IsActive: true}).
		Order("billing_type_name").Find(&types).Error; err != nil {
		return nil, err
	}

	return types, nil
}

func (br BillingTypeRepository) List(ctx context.Context, tx *gorm.DB) ([]model.BillingType, error) {
	br.logger.Debug("List billing types")

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var types []model.BillingType
	if err := db.WithContext(ctx).Model(&model.BillingType{}).Order("billing_type_name").Find(&types).Error; err != nil {
		return nil, err
	}

	return types, nil
}

func (br *BillingTypeRepository) Create(ctx context.Context, tx *gorm.DB, billingType model.BillingType) error {
	br.logger.Debugf("Create billing type: %s \n", billingType.BillingTypeName)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.BillingType{}).Create(&billingType).Error
}

func (br *BillingTypeRepository) Update(ctx context.Context, tx *gorm.DB, billingTypeID int64, billingType model.BillingType) error {
	br.logger.Debugf("Update billing type id: %d \n", billingTypeID)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.BillingType{}).
		Where(&model.BillingType{BillingTypeID: billingTypeID}).
		Updates(map[string]any{
			"billing_type_name": billingType.BillingTypeName,
			"billing_type_code": billingType.BillingTypeCode,
			"is_active":         billingType.IsActive,
		}).Error
}

func (br *BillingTypeRepository) Delete(ctx context.Context, tx *gorm.DB, billingTypeID int64) error {
	br.logger.Debugf("Delete billing type id: %d \n", billingTypeID)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where(&model.BillingType{BillingTypeID: billingTypeID}).Delete(&model.BillingType{}).Error
}
