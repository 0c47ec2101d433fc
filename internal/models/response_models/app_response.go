package response_models

import "time"

type AppResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Framework   string    `json:"framework"`
	DomainName  string    `json:"domain_name"`
	Screenshot  *string   `json:"screenshot"`
	User        uint      `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Subscription is the id of the newest subscription referencing the
	// app, resolved per request, null when none exists.
	Subscription *uint `json:"subscription"`
}
