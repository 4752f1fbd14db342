package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleStudent    Role = "student"
	RoleEmployer   Role = "employer"
	RoleTPO        Role = "tpo"
	RoleSuperAdmin Role = "super_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleEmployer, RoleTPO, RoleSuperAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null" json:"role"`
	FirstName    string    `gorm:"size:50" json:"first_name"`
	LastName     string    `gorm:"size:50" json:"last_name"`

	// Employer-only fields
	CompanyName    *string `gorm:"size:100" json:"company_name,omitempty"`
	CompanyWebsite *string `gorm:"size:255" json:"company_website,omitempty"`

	// TPO-only fields
	Institute  *string `gorm:"size:100" json:"institute,omitempty"`
	Department *string `gorm:"size:100" json:"department,omitempty"`

	// Student-only fields
	ResumeURL *string `gorm:"type:text" json:"resume_url,omitempty"`

	IsActive              bool       `gorm:"not null;default:true" json:"is_active"`
	IsVerified            bool       `gorm:"not null;default:false" json:"is_verified"`
	RequiresPasswordReset bool       `gorm:"not null;default:false" json:"requires_password_reset"`
	CreatedBy             *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
