package db_models

type Subscription struct {
	BaseModel
	UserID uint  `gorm:"index;not null"`
	PlanID uint  `gorm:"uniqueIndex;not null"`
	AppID  *uint
	Active bool  `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Plan Plan `gorm:"foreignKey:PlanID"`
	App  *App `gorm:"foreignKey:AppID;constraint:OnDelete:SET NULL"`
}
