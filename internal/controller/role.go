package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/model"
	"github.com/piddash/pidgen/internal/util"
)

type RoleController struct {
	*baseController
}

func (rc RoleController) List(ctx *gin.Context) {
	roles, err := rc.app.Repository.Role.List(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, gin.H{"roles": roles})
}

func (rc RoleController) Create(ctx *gin.Context) {
	var role model.Role
	if err := ctx.ShouldBind(&role); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.Role.Create(ctx, nil, role); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc RoleController) Update(ctx *gin.Context) {
	var role model.Role
	if err := ctx.ShouldBind(&role); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.Role.Update(ctx, nil, ctx.Param("roleId"), role); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc RoleController) Delete(ctx *gin.Context) {
	if err := rc.app.Repository.Role.Delete(ctx, nil, ctx.Param("roleId")); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}
