package infra

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"botic/internal/models/db_models"
)

type defaultPlan struct {
	name        string
	description string
	price       string
}

var defaultPlans = []defaultPlan{
	{name: "Free", description: "Free Plan", price: "0.00"},
	{name: "Standard", description: "Standard Plan", price: "10.00"},
	{name: "Pro", description: "Pro Plan", price: "25.00"},
}

// SeedDefaultPlans creates the stock pricing tiers once; existing plans
// with the same name are left untouched.
func SeedDefaultPlans(db *gorm.DB) error {
	for _, dp := range defaultPlans {
		var count int64
		if err := db.Model(&db_models.Plan{}).
			Where("name = ?", dp.name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		price, err := decimal.NewFromString(dp.price)
		if err != nil {
			return err
		}

		plan := &db_models.Plan{
			Name:        dp.name,
			Description: dp.description,
			Price:       price,
		}
		if err := db.Create(plan).Error; err != nil {
			return err
		}
		log.Printf("Seeded default plan %q", dp.name)
	}
	return nil
}
