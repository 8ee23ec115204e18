package route

import (
	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/controller"
	"github.com/piddash/pidgen/internal/middleware"
)

func V1_Projects(r *gin.RouterGroup, pc *controller.ProjectController, middleware *middleware.Middleware) {
	adminOnly := middleware.RequireRoles(constant.RoleAdmin)
	superAdminOnly := middleware.RequireRoles(constant.RoleSuperAdmin)
	reviewers := middleware.RequireRoles(constant.RoleAdmin, constant.RoleSuperAdmin)

	v1 := r.Group("/v1/projects")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", pc.Dashboard)
		v1.POST("", pc.Create)
		v1.PATCH("/:coreProjectId", pc.Update)
		v1.DELETE("/rows/:projectInternalId", pc.Delete)

		v1.POST("/:coreProjectId/generate-pid", reviewers, pc.GeneratePID)
		v1.POST("/:coreProjectId/submit", reviewers, pc.SubmitForSuperAdminReview)
		v1.POST("/:coreProjectId/admin-approve", adminOnly, pc.AdminApprove)
		v1.POST("/rows/:projectInternalId/admin-reject", adminOnly, pc.AdminReject)
		v1.POST("/:coreProjectId/superadmin-approve", superAdminOnly, pc.SuperAdminApprove)
		v1.POST("/:coreProjectId/superadmin-reject", superAdminOnly, pc.SuperAdminReject)

		v1.GET("/rows/:projectInternalId/logs", pc.Logs)
		v1.GET("/rows/:projectInternalId/pid-badge", pc.PIDBadge)
	}
}
