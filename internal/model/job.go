package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type Job struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Company      string    `gorm:"size:100;not null" json:"company"`
	Position     string    `gorm:"size:100;not null" json:"position"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	EmployerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"employer_id"`
	Employer     *User     `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Status       JobStatus `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// JobApplication links a student to a job. The composite unique index makes
// a second application by the same student a constraint violation rather
// than something only guarded by a racy pre-check.
type JobApplication struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	JobID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_job_student" json:"job_id"`
	Job         *Job              `gorm:"foreignKey:JobID" json:"job,omitempty"`
	StudentID   uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_job_student" json:"student_id"`
	Student     *User             `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Status      ApplicationStatus `gorm:"size:20;not null;default:pending" json:"status"`
	DateApplied time.Time         `gorm:"autoCreateTime" json:"date_applied"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
