package repository

import (
	"context"

	constant "github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	*baseRepository
}

// ListActive feeds the reference cache; inactive customers disappear from the
// dashboard selects but stay joinable on existing projects through the cache
// until the next refresh.
func (cr CustomerRepository) ListActive(ctx context.Context, tx *gorm.DB) ([]model.Customer, error) {
	cr.logger.Debug("List active customers")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var customers []model.Customer
	if err := db.WithContext(ctx).Model(&model.Customer{}).Where(&model.Customer{IsActive: true}).
		Order("customer_name").Find(&customers).Error; err != nil {
		return nil, err
	}

	return customers, nil
}

func (cr CustomerRepository) List(ctx context.Context, tx *gorm.DB) ([]model.Customer, error) {
	cr.logger.Debug("List customers")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var customers []model.Customer
	if err := db.WithContext(ctx).Model(&model.Customer{}).Order("customer_name").Find(&customers).Error; err != nil {
		return nil, err
	}

	return customers, nil
}

func (cr CustomerRepository) GetById(ctx context.Context, tx *gorm.DB, customerID int64) (*model.Customer, error) {
	cr.logger.Debugf("Get customer by id: %d \n", customerID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var customer model.Customer
	if err := db.WithContext(ctx).Model(&model.Customer{}).Where(&model.Customer{CustomerID: customerID}).First(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

func (cr *CustomerRepository) Create(ctx context.Context, tx *gorm.DB, customer model.Customer) error {
	cr.logger.Debugf("Create customer: %s \n", customer.CustomerName)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Customer{}).Create(&customer).Error
}

func (cr *CustomerRepository) Update(ctx context.Context, tx *gorm.DB, customerID int64, customer model.Customer) error {
	cr.logger.Debugf("Update customer id: %d \n", customerID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Customer{}).
		Where(&model.Customer{CustomerID: customerID}).
		Updates(map[string]any{
			"customer_name":         customer.CustomerName,
			"customer_abbreviation": customer.CustomerAbbreviation,
			"customer_code":         customer.CustomerCode,
			"buid":                  customer.BUID,
			"is_active":             customer.IsActive,
		}).Error
}

func (cr *CustomerRepository) Delete(ctx context.Context, tx *gorm.DB, customerID int64) error {
	cr.logger.Debugf("Delete customer id: %d \n", customerID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where(&model.Customer{CustomerID: customerID}).Delete(&model.Customer{}).Error
}
