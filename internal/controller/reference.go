package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/model"
	"github.com/piddash/pidgen/internal/util"
)

// ReferenceController owns the four lookup collections the dashboard joins
// against. Reads serve the form dropdowns; writes are restricted to admins by
// the route layer and invalidate nothing eagerly, the reference cache catches
// up on its refresh schedule.
type ReferenceController struct {
	*baseController
}

// Snapshot returns all four collections in one payload, the shape the
// dashboard loads before rendering anything else.
func (rc ReferenceController) Snapshot(ctx *gin.Context) {
	refs, err := rc.app.RefCache.Snapshot(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusServiceUnavailable, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"customers":     refs.Customers,
		"businessUnits": refs.BusinessUnits,
		"billingTypes":  refs.BillingTypes,
		"segments":      refs.Segments,
	})
}

func (rc ReferenceController) ListCustomers(ctx *gin.Context) {
	customers, err := rc.app.Repository.Customer.List(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, gin.H{"customers": customers})
}

func (rc ReferenceController) CreateCustomer(ctx *gin.Context) {
	var customer model.Customer
	if err := ctx.ShouldBind(&customer); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.Customer.Create(ctx, nil, customer); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc ReferenceController) UpdateCustomer(ctx *gin.Context) {
	customerID, err := paramInt64(ctx, "customerId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid customer id", util.GenerateErrorMessages(err), nil)
		return
	}

	var customer model.Customer
	if err := ctx.ShouldBind(&customer); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.Customer.Update(ctx, nil, customerID, customer); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc ReferenceController) DeleteCustomer(ctx *gin.Context) {
	customerID, err := paramInt64(ctx, "customerId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid customer id", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.Customer.Delete(ctx, nil, customerID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc ReferenceController) ListBusinessUnits(ctx *gin.Context) {
	units, err := rc.app.Repository.BusinessUnit.List(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, gin.H{"businessUnits": units})
}

func (rc ReferenceController) CreateBusinessUnit(ctx *gin.Context) {
	var unit model.BusinessUnit
	if err := ctx.ShouldBind(&unit); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.BusinessUnit.Create(ctx, nil, unit); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc ReferenceController) UpdateBusinessUnit(ctx *gin.Context) {
	buid, err := paramInt64(ctx, "buid")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid business unit id", util.GenerateErrorMessages(err), nil)
		return
	}

	var unit model.BusinessUnit
	if err := ctx.ShouldBind(&unit); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.BusinessUnit.Update(ctx, nil, buid, unit); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc ReferenceController) DeleteBusinessUnit(ctx *gin.Context) {
	buid, err := paramInt64(ctx, "buid")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid business unit id", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.BusinessUnit.Delete(ctx, nil, buid); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc ReferenceController) ListBillingTypes(ctx *gin.Context) {
	types, err := rc.app.Repository.BillingType.List(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, gin.H{"billingTypes": types})
}

func (rc ReferenceController) CreateBillingType(ctx *gin.Context) {
	var billingType model.BillingType
	if err := ctx.ShouldBind(&billingType); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.BillingType.Create(ctx, nil, billingType); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc ReferenceController) UpdateBillingType(ctx *gin.Context) {
	billingTypeID, err := paramInt64(ctx, "billingTypeId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid billing type id", util.GenerateErrorMessages(err), nil)
		return
	}

	var billingType model.BillingType
	if err := ctx.ShouldBind(&billingType); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.BillingType.Update(ctx, nil, billingTypeID, billingType); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc ReferenceController) DeleteBillingType(ctx *gin.Context) {
	billingTypeID, err := paramInt64(ctx, "billingTypeId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid billing type id", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.BillingType.Delete(ctx, nil, billingTypeID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc ReferenceController) ListSegments(ctx *gin.Context) {
	segments, err := rc.app.Repository.Segment.List(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, gin.H{"segments": segments})
}

func (rc ReferenceController) CreateSegment(ctx *gin.Context) {
	var segment model.Segment
	if err := ctx.ShouldBind(&segment); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.Segment.Create(ctx, nil, segment); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc ReferenceController) UpdateSegment(ctx *gin.Context) {
	segmentID, err := paramInt64(ctx, "segmentId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid segment id", util.GenerateErrorMessages(err), nil)
		return
	}

	var segment model.Segment
	if err := ctx.ShouldBind(&segment); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.Segment.Update(ctx, nil, segmentID, segment); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}

func (rc ReferenceController) DeleteSegment(ctx *gin.Context) {
	segmentID, err := paramInt64(ctx, "segmentId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid segment id", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := rc.app.Repository.Segment.Delete(ctx, nil, segmentID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}
	util.ResponseSuccess(ctx, nil)
}
