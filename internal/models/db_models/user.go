package db_models

type User struct {
	BaseModel
	Name         string `gorm:"size:255"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	Username     string `gorm:"size:150;uniqueIndex;not null"`
	PasswordHash string

	Apps          []App          `gorm:"foreignKey:UserID"`
	Subscriptions []Subscription `gorm:"foreignKey:UserID"`
}
