package request_models

type CreatePlanRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
}

// PatchPlanRequest leaves absent fields unchanged.
type PatchPlanRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
}
