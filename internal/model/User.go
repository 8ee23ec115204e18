package model

import "github.com/piddash/pidgen/internal/constant"

type User struct {
	BaseModel
	Username string        `gorm:"unique;not null;type:varchar(50)" json:"username" form:"username" binding:"required"`
	Email    string        `gorm:"unique;not null;type:citext" json:"email" form:"email" binding:"required,email"`
	Password string        `gorm:"type:text;not null" json:"-"`
	Role     constant.Role `gorm:"type:varchar(20);not null;default:'User'" json:"role"`
	IsActive bool          `gorm:"default:true" json:"isActive"`
}

func (u User) TableName() string {
	return "users"
}
