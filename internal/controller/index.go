package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"name": "Projects ID Generator API",
		"env":  ic.app.Config.ENV,
	})
}
