package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/model"
	"github.com/piddash/pidgen/internal/util"
)

type UserController struct {
	*baseController
}

// Me returns the authenticated user's profile from the token claims.
func (uc UserController) Me(ctx *gin.Context) {
	user, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"user": user})
}

func (uc UserController) List(ctx *gin.Context) {
	users, err := uc.app.Repository.User.List(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"users": users})
}

func (uc UserController) GetUserById(ctx *gin.Context) {
	userId := ctx.Param("userId")
	user, err := uc.app.Repository.User.GetById(ctx, nil, userId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

type registerUserRequest struct {
	Username string        `json:"username" form:"username" binding:"required,strNotEmpty"`
	Email    string        `json:"email" form:"email" binding:"required,email"`
	Password string        `json:"password" form:"password" binding:"required,min=8"`
	Role     constant.Role `json:"role" form:"role"`
}

func (uc UserController) RegisterUser(ctx *gin.Context) {
	var req registerUserRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	role := req.Role
	if role == "" {
		role = constant.RoleUser
	}
	if !role.Valid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid role", nil, nil)
		return
	}

	if err := uc.app.Repository.User.CheckDupAndCreate(ctx, nil, model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	}); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"username": req.Username})
}

type updateUserRequest struct {
	Role     constant.Role `json:"role" form:"role" binding:"required"`
	IsActive bool          `json:"isActive" form:"isActive"`
}

func (uc UserController) UpdateUser(ctx *gin.Context) {
	var req updateUserRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if !req.Role.Valid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid role", nil, nil)
		return
	}

	if err := uc.app.Repository.User.UpdateRoleAndStatus(ctx, nil, ctx.Param("userId"), req.Role, req.IsActive); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (uc UserController) DeleteUser(ctx *gin.Context) {
	if err := uc.app.Repository.User.Delete(ctx, nil, ctx.Param("userId")); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
