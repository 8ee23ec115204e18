package model

import (
	"time"

	"github.com/piddash/pidgen/internal/constant"
)

// Project is a dated instance of a CoreProject running through the PID
// approval workflow. ProjectInternalID is the stable server key used for
// workflow operations and deletion; CoreProjectID groups recurring project
// names and is the key for create/update and PID generation.
type Project struct {
	ProjectInternalID   int64                  `gorm:"primaryKey;autoIncrement" json:"projectInternalID"`
	CoreProjectID       int64                  `gorm:"not null;index" json:"coreProjectID"`
	ProjectName         string                 `gorm:"type:varchar(100);not null" json:"projectName"`
	ProjectAbbreviation string                 `gorm:"type:varchar(4);not null" json:"projectAbbreviation"`
	LocationCity        string                 `gorm:"type:varchar(100)" json:"locationCity"`
	CustomerAddress     string                 `gorm:"type:text" json:"customerAddress"`
	ProjectStartDate    time.Time              `gorm:"type:date;not null" json:"projectStartDate"`
	ProjectEndDate      time.Time              `gorm:"type:date;not null" json:"projectEndDate"`
	ResourceRequirement string                 `gorm:"type:text;not null" json:"resourceRequirement"`
	CustomerID          int64                  `gorm:"not null;index" json:"customerID"`
	BUID                int64                  `gorm:"column:buid;not null;index" json:"buid"`
	BillingTypeID       int64                  `gorm:"not null" json:"billingTypeID"`
	SegmentID           int64                  `gorm:"not null" json:"segmentID"`
	Status              constant.ProjectStatus `gorm:"type:varchar(40);not null" json:"status"`
	GeneratedPID        *string                `gorm:"type:varchar(40)" json:"generatedPID"`
	ApprovalRemarks     *string                `gorm:"type:text" json:"approvalRemarks"`
	AuditFields
}

func (p Project) TableName() string {
	return "projects"
}

// CoreProject is the reusable name/abbreviation template a Project is minted
// from. CustomerCodeStartSeries seeds the numbering portion of generated PIDs.
type CoreProject struct {
	CoreProjectID           int64  `gorm:"primaryKey;autoIncrement" json:"coreProjectID"`
	ProjectName             string `gorm:"type:varchar(100);not null" json:"projectName"`
	ProjectAbbreviation     string `gorm:"type:varchar(4);not null" json:"projectAbbreviation"`
	CustomerCodeStartSeries string `gorm:"type:varchar(20)" json:"customerCodeStartSeries"`
	IsActive                bool   `gorm:"default:true" json:"isActive"`
	AuditFields
}

func (cp CoreProject) TableName() string {
	return "core_projects"
}
