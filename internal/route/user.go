package route

import (
	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/controller"
	"github.com/piddash/pidgen/internal/middleware"
)

func V1_Users(r *gin.RouterGroup, userController *controller.UserController, middleware *middleware.Middleware) {
	superAdminOnly := middleware.RequireRoles(constant.RoleSuperAdmin)

	v1 := r.Group("/v1/users")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", superAdminOnly, userController.List)
		v1.POST("", superAdminOnly, userController.RegisterUser)
		v1.GET("/:userId", superAdminOnly, userController.GetUserById)
		v1.PATCH("/:userId", superAdminOnly, userController.UpdateUser)
		v1.DELETE("/:userId", superAdminOnly, userController.DeleteUser)
	}
}
