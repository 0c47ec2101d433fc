package request_models

type CreateSubscriptionRequest struct {
	Plan   uint  `json:"plan" binding:"required"`
	App    *uint `json:"app"`
	Active *bool `json:"active" binding:"required"`
}

// PatchSubscriptionRequest leaves absent fields unchanged.
type PatchSubscriptionRequest struct {
	Plan   *uint `json:"plan"`
	App    *uint `json:"app"`
	Active *bool `json:"active"`
}
