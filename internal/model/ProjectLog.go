package model

import "time"

// ProjectLog is the append-only audit trail of workflow transitions. One row
// per action, written in the same transaction as the status change.
type ProjectLog struct {
	BaseModel
	ProjectInternalID int64     `gorm:"not null;index" json:"projectInternalID"`
	Action            string    `gorm:"type:varchar(40);not null" json:"action"`
	FromStatus        string    `gorm:"type:varchar(40)" json:"fromStatus"`
	ToStatus          string    `gorm:"type:varchar(40)" json:"toStatus"`
	Remarks           string    `gorm:"type:text" json:"remarks"`
	Timestamp         time.Time `gorm:"type:timestamptz;default:CURRENT_TIMESTAMP;not null" json:"timestamp"`
}

func (pl ProjectLog) TableName() string {
	return "project_logs"
}
