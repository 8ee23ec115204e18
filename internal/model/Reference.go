package model

// The four reference entities are owned by the generic CRUD layer; the
// workflow engine only reads them through the reference cache.

type Customer struct {
	CustomerID           int64  `gorm:"primaryKey;autoIncrement" json:"customerID"`
	CustomerName         string `gorm:"type:varchar(100);not null" json:"customerName" form:"customerName" binding:"required,strNotEmpty"`
	CustomerAbbreviation string `gorm:"type:varchar(10)" json:"customerAbbreviation" form:"customerAbbreviation"`
	CustomerCode         string `gorm:"type:varchar(20)" json:"customerCode" form:"customerCode"`
	// Customer options in the project form are scoped to the selected BU.
	BUID     int64 `gorm:"column:buid;not null;index" json:"buid" form:"buid" binding:"required"`
	IsActive bool  `gorm:"default:true" json:"isActive" form:"isActive"`
	AuditFields
}

func (c Customer) TableName() string {
	return "customers"
}

type BusinessUnit struct {
	BUID     int64  `gorm:"column:buid;primaryKey;autoIncrement" json:"buid"`
	BUName   string `gorm:"column:bu_name;type:varchar(100);not null" json:"buName" form:"buName" binding:"required,strNotEmpty"`
	BUCode   string `gorm:"column:bu_code;type:varchar(10);not null" json:"buCode" form:"buCode" binding:"required"`
	IsActive bool   `gorm:"default:true" json:"isActive" form:"isActive"`
	AuditFields
}

func (bu BusinessUnit) TableName() string {
	return "business_units"
}

type BillingType struct {
	BillingTypeID   int64  `gorm:"primaryKey;autoIncrement" json:"billingTypeID"`
	BillingTypeName string `gorm:"type:varchar(100);not null" json:"billingTypeName" form:"billingTypeName" binding:"required,strNotEmpty"`
	BillingTypeCode string `gorm:"type:varchar(10)" json:"billingTypeCode" form:"billingTypeCode"`
	IsActive        bool   `gorm:"default:true" json:"isActive" form:"isActive"`
	AuditFields
}

func (bt BillingType) TableName() string {
	return "billing_types"
}

type Segment struct {
	SegmentID   int64  `gorm:"primaryKey;autoIncrement" json:"segmentID"`
	SegmentName string `gorm:"type:varchar(100);not null" json:"segmentName" form:"segmentName" binding:"required,strNotEmpty"`
	IsActive    bool   `gorm:"default:true" json:"isActive" form:"isActive"`
	AuditFields
}

func (s Segment) TableName() string {
	return "segments"
}
