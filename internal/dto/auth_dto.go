package dto

import (
	"anoa.com/campusplacement/internal/model"
)

type RegisterInput struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=student employer"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Employer-only, ignored for students
	CompanyName    *string `json:"company_name"`
	CompanyWebsite *string `json:"company_website"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=student employer tpo super_admin"`
}

type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   int64       `json:"expires_at"`
	User        *model.User `json:"user"`
}

type ResetPasswordInput struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
