package response_models

import "time"

type SubscriptionResponse struct {
	ID        uint      `json:"id"`
	User      uint      `json:"user"`
	Plan      uint      `json:"plan"`
	App       *uint     `json:"app"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
