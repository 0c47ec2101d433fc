package request_models

type CreateAppRequest struct {
	Name        string  `json:"name" binding:"required,max=50"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required,oneof='Web' 'Mobile'"`
	Framework   string  `json:"framework" binding:"required,oneof='Django' 'React Native'"`
	DomainName  string  `json:"domain_name" binding:"omitempty,max=50"`
	Screenshot  *string `json:"screenshot" binding:"omitempty,url"`
}

// PatchAppRequest leaves absent fields unchanged. A "user" key in the
// payload is deliberately not bound: ownership never comes from clients.
type PatchAppRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Description *string `json:"description"`
	Type        *string `json:"type" binding:"omitempty,oneof='Web' 'Mobile'"`
	Framework   *string `json:"framework" binding:"omitempty,oneof='Django' 'React Native'"`
	DomainName  *string `json:"domain_name" binding:"omitempty,max=50"`
	Screenshot  *string `json:"screenshot" binding:"omitempty,url"`
}
