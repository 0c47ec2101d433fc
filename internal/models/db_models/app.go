package db_models

type AppType string

const (
	AppTypeWeb    AppType = "Web"
	AppTypeMobile AppType = "Mobile"
)

type AppFramework string

const (
	FrameworkDjango      AppFramework = "Django"
	FrameworkReactNative AppFramework = "React Native"
)

type App struct {
	BaseModel
	Name        string       `gorm:"size:50;not null"`
	Description string       `gorm:"type:text"`
	Type        AppType      `gorm:"size:50;not null"`
	Framework   AppFramework `gorm:"size:50;not null"`
	DomainName  string       `gorm:"size:50"`
	Screenshot  *string      `gorm:"size:200"`

	// Owner is set from the authenticated session and never from the
	// payload. RESTRICT blocks deleting a user that still owns apps.
	UserID uint `gorm:"index;not null"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}
