package dto

import "io"

// ResumeFile is a document uploaded by a student.
type ResumeFile struct {
	Reader   io.Reader
	FileName string
}

type UpdateProfileInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`

	// Employer-only
	CompanyName    *string `json:"company_name"`
	CompanyWebsite *string `json:"company_website"`

	// TPO-only
	Institute  *string `json:"institute"`
	Department *string `json:"department"`
}
