package dto

type CreateTPOInput struct {
	Username   string  `json:"username" binding:"required,min=3,max=50"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Institute  *string `json:"institute"`
	Department *string `json:"department"`
}

// UpdateTPOInput carries only the account-state switches a super admin may
// flip; identity fields of a TPO are not editable here.
type UpdateTPOInput struct {
	IsActive              *bool `json:"is_active"`
	IsVerified            *bool `json:"is_verified"`
	RequiresPasswordReset *bool `json:"requires_password_reset"`
}
