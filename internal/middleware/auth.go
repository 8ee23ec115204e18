package middleware

import (
	"errors"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/auth"
	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/util"
)

func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, 401, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token, constant.JWT_TYPE_ACCESS)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, 401, "Invalid token", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	ctx.Set("user", claim.User)
	ctx.Next()
}

func authUserFromContext(ctx *gin.Context) (auth.JWTPayload, error) {
	v, exists := ctx.Get("user")
	if !exists {
		return auth.JWTPayload{}, errors.New("user not found in context")
	}

	user, ok := v.(auth.JWTPayload)
	if !ok {
		return auth.JWTPayload{}, errors.New("user in context has unexpected type")
	}

	return user, nil
}

// RequireRoles allows the request through only when the authenticated user's
// role is in the list. Must run after AuthMiddleware.
func (m Middleware) RequireRoles(roles ...constant.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := authUserFromContext(ctx)
		if err != nil {
			util.ResponseFailed(ctx, 401, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
			ctx.Abort()
			return
		}

		if !slices.Contains(roles, user.Role) {
			m.app.Logger.Debugf("Role %s denied, requires one of %v", user.Role, roles)
			util.ResponseFailed(ctx, 403, "Insufficient permissions", nil, nil)
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
