package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	constant "github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
	"github.com/piddash/pidgen/internal/util"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId string) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %s \n", userId)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur UserRepository) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*model.User, error) {
	ur.logger.Debugf("Get user by username: %s \n", username)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{Username: username}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur UserRepository) List(ctx context.Context, tx *gorm.DB) ([]model.User, error) {
	ur.logger.Debug("List users")

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var users []model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Order("username").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// Create hashes the password before the row is written; the plain text never
// reaches the database.
func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser model.User) error {
	ur.logger.Debugf("Create user: %s \n", newUser.Username)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	hashed, err := util.HashPassword(newUser.Password)
	if err != nil {
		return err
	}

	if err := db.WithContext(ctx).Model(&model.User{}).Create(&model.User{
		Username: newUser.Username,
		Email:    newUser.Email,
		Password: hashed,
		Role:     newUser.Role,
		IsActive: true,
	}).Error; err != nil {
		return err
	}

	return nil
}

// CheckDupAndCreate rejects a duplicate username or email inside one
// transaction so two concurrent signups cannot both pass the check.
func (ur *UserRepository) CheckDupAndCreate(ctx context.Context, tx *gorm.DB, newUser model.User) error {
	ur.logger.Debugf("Check duplicate and create user: %s \n", newUser.Username)

	db := ur.getDB(tx)
	txErr := ur.withTx(db, func(tx2 *gorm.DB) error {
		existingUser, err := ur.GetByUsername(ctx, tx2, newUser.Username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if existingUser != nil && strings.EqualFold(existingUser.Username, newUser.Username) {
			return fmt.Errorf("user %s already exists", existingUser.Username)
		}

		return ur.Create(ctx, tx2, newUser)
	})

	return txErr
}

func (ur *UserRepository) UpdateRoleAndStatus(ctx context.Context, tx *gorm.DB, userId string, role constant.Role, isActive bool) error {
	ur.logger.Debugf("Update role and status for user id: %s \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.User{}).
		Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).
		Updates(map[string]any{"role": role, "is_active": isActive}).Error
}

func (ur *UserRepository) Delete(ctx context.Context, tx *gorm.DB, userId string) error {
	ur.logger.Debugf("Delete user by id: %s \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).Delete(&model.User{}).Error
}
