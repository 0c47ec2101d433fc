package db_models

import (
	"github.com/shopspring/decimal"
)

type Plan struct {
	BaseModel
	Name        string          `gorm:"size:50;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(13,2);not null"`

	// One plan carries at most one subscription, enforced by the
	// unique index on Subscription.PlanID.
	Subscription *Subscription `gorm:"foreignKey:PlanID"`
}
