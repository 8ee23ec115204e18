package repository

import (
	"context"

	constant "github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
	"gorm.io/gorm"
)

type RoleRepository struct {
	*baseRepository
}

func (rr RoleRepository) List(ctx context.Context, tx *gorm.DB) ([]model.Role, error) {
	rr.logger.Debug("List roles")

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var roles []model.Role
	if err := db.WithContext(ctx).Model(&model.Role{}).Order("name").Find(&roles).Error; err != nil {
		return nil, err
	}

	return roles, nil
}

func (rr *RoleRepository) Create(ctx context.Context, tx *gorm.DB, role model.Role) error {
	rr.logger.Debugf("Create role: %s \n", role.Name)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Role{}).Create(&role).Error
}

func (rr *RoleRepository) Update(ctx context.Context, tx *gorm.DB, roleId string, role model.Role) error {
	rr.logger.Debugf("Update role id: %s \n", roleId)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Role{}).
		Where(&model.Role{BaseModel: model.BaseModel{ID: roleId}}).
		Updates(map[string]any{
			"name":        role.Name,
			"description": role.Description,
		}).Error
}

func (rr *RoleRepository) Delete(ctx context.Context, tx *gorm.DB, roleId string) error {
	rr.logger.Debugf("Delete role id: %s \n", roleId)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where(&model.Role{BaseModel: model.BaseModel{ID: roleId}}).Delete(&model.Role{}).Error
}
