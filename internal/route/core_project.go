package route

import (
	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/controller"
	"github.com/piddash/pidgen/internal/middleware"
)

func V1_CoreProjects(r *gin.RouterGroup, cc *controller.CoreProjectController, middleware *middleware.Middleware) {
	manage := middleware.RequireRoles(constant.RoleAdmin, constant.RoleSuperAdmin)

	v1 := r.Group("/v1/core-projects")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", cc.List)
		v1.POST("", manage, cc.Create)
		v1.PATCH("/:coreProjectId", manage, cc.Update)
		v1.DELETE("/:coreProjectId", manage, cc.Delete)
	}
}
