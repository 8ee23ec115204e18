package route

import (
	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/constant"
	"github.com/piddash/pidgen/internal/controller"
	"github.com/piddash/pidgen/internal/middleware"
)

func V1_References(r *gin.RouterGroup, rc *controller.ReferenceController, middleware *middleware.Middleware) {
	manage := middleware.RequireRoles(constant.RoleAdmin, constant.RoleSuperAdmin)

	v1 := r.Group("/v1/references")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", rc.Snapshot)

		v1.GET("/customers", rc.ListCustomers)
		v1.POST("/customers", manage, rc.CreateCustomer)
		v1.PATCH("/customers/:customerId", manage, rc.UpdateCustomer)
		v1.DELETE("/customers/:customerId", manage, rc.DeleteCustomer)

		v1.GET("/business-units", rc.ListBusinessUnits)
		v1.POST("/business-units", manage, rc.CreateBusinessUnit)
		v1.PATCH("/business-units/:buid", manage, rc.UpdateBusinessUnit)
		v1.DELETE("/business-units/:buid", manage, rc.DeleteBusinessUnit)

		v1.GET("/billing-types", rc.ListBillingTypes)
		v1.POST("/billing-types", manage, rc.CreateBillingType)
		v1.PATCH("/billing-types/:billingTypeId", manage, rc.UpdateBillingType)
		v1.DELETE("/billing-types/:billingTypeId", manage, rc.DeleteBillingType)

		v1.GET("/segments", rc.ListSegments)
		v1.POST("/segments", manage, rc.CreateSegment)
		v1.PATCH("/segments/:segmentId", manage, rc.UpdateSegment)
		v1.DELETE("/segments/:segmentId", manage, rc.DeleteSegment)
	}
}
