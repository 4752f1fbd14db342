package repository

import (
	"context"
	"strings"

	"anoa.com/campusplacement/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepository interface {
	CreateJob(ctx context.Context, job *model.Job) error
	FindJobByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	ListActiveJobs(ctx context.Context, query string) ([]*model.Job, error)
	ListJobsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Job, error)
	UpdateJob(ctx context.Context, job *model.Job) error
	CreateApplication(ctx context.Context, application *model.JobApplication) error
	FindApplication(ctx context.Context, jobID, studentID uuid.UUID) (*model.JobApplication, error)
	ListApplicationsByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) CreateJob(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&job).Error; err != nil {
		return nil, err
	}

	return &job, nil
}

func (r *jobRepository) ListActiveJobs(ctx context.Context, query string) ([]*model.Job, error) {
	tx := r.db.WithContext(ctx).
		Where("status = ?", model.JobStatusActive).
		Order("created_at DESC")

	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		tx = tx.Where(
			"LOWER(company) LIKE ? OR LOWER(position) LIKE ? OR LOWER(requirements) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var jobs []*model.Job
	if err := tx.Find(&jobs).Error; err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *jobRepository) ListJobsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var jobs []*model.Job
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&jobs).Error; err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *jobRepository) UpdateJob(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) CreateApplication(ctx context.Context, application *model.JobApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *jobRepository) FindApplication(ctx context.Context, jobID, studentID uuid.UUID) (*model.JobApplication, error) {
	var application model.JobApplication
	if err := r.db.WithContext(ctx).
		Where("job_id = ? AND student_id = ?", jobID, studentID).
		First(&application).Error; err != nil {
		return nil, err
	}

	return &application, nil
}

func (r *jobRepository) ListApplicationsByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.JobApplication, error) {
	var applications []*model.JobApplication
	if err := r.db.WithContext(ctx).
		Preload("Job").
		Where("student_id = ?", studentID).
		Order("date_applied DESC").
		Find(&applications).Error; err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *jobRepository) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.JobApplication{}).
		Where("id = ?", id).
		Update("status", status).Error
}
