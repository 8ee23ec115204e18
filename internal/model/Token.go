package model

type Token struct {
	BaseModel
	RefreshToken string `gorm:"type:text;not null;index" json:"refreshToken"`
	AccessToken  string `gorm:"type:text;not null" json:"accessToken"`
	CanAccess    bool   `gorm:"default:true" json:"canAccess"`
	CanRefresh   bool   `gorm:"default:true" json:"canRefresh"`
	UserID       string `gorm:"type:text;not null;index" json:"userId"`
}

func (t Token) TableName() string {
	return "tokens"
}
