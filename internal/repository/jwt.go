package repository

import (
	"context"
	"errors"

	"github.com/piddash/pidgen/internal/auth"
	constant "github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
	"gorm.io/gorm"
)

type JWTRepository struct {
	*baseRepository
	user *UserRepository
}

func jwtPayloadFor(user model.User) auth.JWTPayload {
	return auth.JWTPayload{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

func (jr JWTRepository) GenRefreshAndAccessToken(ctx context.Context, tx *gorm.DB, user model.User) (*string, *string, error) {
	jr.logger.Debugf("Generate refresh and access token for userId: %s \n", user.ID)

	refreshToken, accessToken, err := jr.jwtService.GenerateRefreshAndAccessToken(jwtPayloadFor(user))
	if err != nil {
		return nil, nil, err
	}

	db := jr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Token{}).Create(&model.Token{
		RefreshToken: *refreshToken,
		AccessToken:  *accessToken,
		CanAccess:    true,
		CanRefresh:   true,
		UserID:       user.ID,
	}).Error; err != nil {
		return nil, nil, err
	}

	return refreshToken, accessToken, err
}

func (jr JWTRepository) GetTokenByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*model.Token, error) {
	jr.logger.Debug("Get token by refresh token")

	db := jr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var token model.Token

	if err := db.WithContext(ctx).Model(&model.Token{}).Where(model.Token{
		RefreshToken: refreshToken,
	}).First(&token).Error; err != nil {
		return nil, err
	}

	return &token, nil
}

/*
 * Refresh token by rotating the stored pair: the old refresh token is replaced
 * in place so it cannot be replayed after the exchange.
 */
func (jr JWTRepository) RefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*string, *string, error) {
	jr.logger.Debug("Refresh token")

	db := jr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var newRefreshToken, newAccessToken *string

	txErr := jr.withTx(db, func(tx2 *gorm.DB) error {
		token, err := jr.GetTokenByRefreshToken(ctx, tx2, refreshToken)
		if err != nil {
			return err
		}

		if !token.CanRefresh {
			return errors.New("token is valid but cannot be refreshed")
		}

		var user model.User
		if err := tx2.WithContext(ctx).Model(&model.User{}).Where(model.User{
			BaseModel: model.BaseModel{
				ID: token.UserID,
			},
		}).First(&user).Error; err != nil {
			return err
		}

		if !user.IsActive {
			return errors.New("user account is deactivated")
		}

		newRefreshToken, newAccessToken, err = jr.jwtService.GenerateRefreshAndAccessToken(jwtPayloadFor(user))
		if err != nil {
			return err
		}

		if newRefreshToken == nil || newAccessToken == nil {
			return errors.New("failed to generate refresh and access token")
		}

		if err := tx2.WithContext(ctx).Model(&model.Token{}).Select("refresh_token", "access_token", "can_access", "can_refresh", "user_id").Where(model.Token{
			RefreshToken: refreshToken,
		}).Updates(model.Token{
			RefreshToken: *newRefreshToken,
			AccessToken:  *newAccessToken,
			CanAccess:    true,
			CanRefresh:   true,
			UserID:       user.ID,
		}).Error; err != nil {
			return err
		}

		return nil
	})

	if txErr != nil {
		jr.logger.Debugf("Refresh token, Transaction error: %v \n", txErr)
	}

	return newRefreshToken, newAccessToken, txErr
}

func (jr JWTRepository) DeleteToken(ctx context.Context, tx *gorm.DB, refreshToken string) error {
	jr.logger.Debug("Delete token using refresh token")

	db := jr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Token{}).Where(model.Token{
		RefreshToken: refreshToken,
	}).Delete(&model.Token{}).Error; err != nil {
		return err
	}

	return nil
}
