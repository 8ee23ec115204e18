package model

type Role struct {
	BaseModel
	Name        string `gorm:"unique;not null;type:varchar(30)" json:"name" form:"name" binding:"required,strNotEmpty"`
	Description string `gorm:"type:text" json:"description" form:"description"`
}

func (r Role) TableName() string {
	return "roles"
}
