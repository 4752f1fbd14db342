package dto

import (
	"time"

	"anoa.com/campusplacement/internal/model"
	"github.com/google/uuid"
)

type CreateJobInput struct {
	Company      string `json:"company" binding:"required,max=100"`
	Position     string `json:"position" binding:"required,max=100"`
	Requirements string `json:"requirements"`
}

// AppliedJobResponse is a student's application enriched with a summary of
// the job it targets.
type AppliedJobResponse struct {
	ApplicationID uuid.UUID               `json:"application_id"`
	Status        model.ApplicationStatus `json:"status"`
	DateApplied   time.Time               `json:"date_applied"`
	JobID         uuid.UUID               `json:"job_id"`
	Company       string                  `json:"company"`
	Position      string                  `json:"position"`
	JobStatus     model.JobStatus         `json:"job_status"`
}
