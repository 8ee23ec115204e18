package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/model"
	"github.com/piddash/pidgen/internal/util"
)

type CoreProjectController struct {
	*baseController
}

// List returns active templates only by default; pass ?all=true for the
// management screen.
func (cc CoreProjectController) List(ctx *gin.Context) {
	var (
		cores []model.CoreProject
		err   error
	)
	if ctx.Query("all") == "true" {
		cores, err = cc.app.Repository.CoreProject.List(ctx, nil)
	} else {
		cores, err = cc.app.Repository.CoreProject.ListActive(ctx, nil)
	}
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"coreProjects": cores})
}

func (cc CoreProjectController) Create(ctx *gin.Context) {
	var core model.CoreProject
	if err := ctx.ShouldBind(&core); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.CoreProject.Create(ctx, nil, core); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (cc CoreProjectController) Update(ctx *gin.Context) {
	coreProjectID, err := paramInt64(ctx, "coreProjectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid core project id", util.GenerateErrorMessages(err), nil)
		return
	}

	var core model.CoreProject
	if err := ctx.ShouldBind(&core); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.CoreProject.Update(ctx, nil, coreProjectID, core); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (cc CoreProjectController) Delete(ctx *gin.Context) {
	coreProjectID, err := paramInt64(ctx, "coreProjectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid core project id", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.CoreProject.Delete(ctx, nil, coreProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}
