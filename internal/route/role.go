package route

import (
	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/controller"
	"github.com/piddash/pidgen/internal/middleware"
)

func V1_Roles(r *gin.RouterGroup, roleController *controller.RoleController, middleware *middleware.Middleware) {
	superAdminOnly := middleware.RequireRoles(constant.RoleSuperAdmin)

	v1 := r.Group("/v1/roles")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", roleController.List)
		v1.POST("", superAdminOnly, roleController.Create)
		v1.PATCH("/:roleId", superAdminOnly, roleController.Update)
		v1.DELETE("/:roleId", superAdminOnly, roleController.Delete)
	}
}
