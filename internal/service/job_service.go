package service

import (
	"context"
	"errors"
	"log"

	"anoa.com/campusplacement/internal/auth"
	"anoa.com/campusplacement/internal/dto"
	"anoa.com/campusplacement/internal/guard"
	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/internal/repository"
	"anoa.com/campusplacement/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobService interface {
	Create(ctx context.Context, identity auth.Identity, input dto.CreateJobInput) (*model.Job, error)
	// List returns all active jobs, optionally filtered by a free-text
	// query. Any authenticated role may call it.
	List(ctx context.Context, query string) ([]*model.Job, error)
	Close(ctx context.Context, identity auth.Identity, jobID uuid.UUID) (*model.Job, error)
	Apply(ctx context.Context, identity auth.Identity, jobID uuid.UUID) (*model.JobApplication, error)
	ListApplied(ctx context.Context, identity auth.Identity) ([]*dto.AppliedJobResponse, error)
}

type jobService struct {
	jobs   repository.JobRepository
	search SearchService
}

// NewJobService builds the job service. search may be nil; listing then
// falls back to database filtering.
func NewJobService(jobs repository.JobRepository, search SearchService) JobService {
	return &jobService{jobs: jobs, search: search}
}

func (s *jobService) Create(ctx context.Context, identity auth.Identity, input dto.CreateJobInput) (*model.Job, error) {
	if err := guard.Authorize(identity.Role, guard.OpCreateJob); err != nil {
		return nil, err
	}

	job := &model.Job{
		Company:      input.Company,
		Position:     input.Position,
		Requirements: input.Requirements,
		EmployerID:   identity.UserID,
		Status:       model.JobStatusActive,
	}

	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexJob(job); err != nil {
			log.Printf("failed to index job %s: %v", job.ID, err)
		}
	}

	return job, nil
}

func (s *jobService) List(ctx context.Context, query string) ([]*model.Job, error) {
	if query != "" && s.search != nil {
		idStrings, err := s.search.SearchJobIDs(query)
		if err != nil {
			log.Printf("job search failed, falling back to database filter: %v", err)
			return s.jobs.ListActiveJobs(ctx, query)
		}

		ids := make([]uuid.UUID, 0, len(idStrings))
		for _, raw := range idStrings {
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}

		jobs, err := s.jobs.ListJobsByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}

		// The index can lag behind a close; filter on the source of truth.
		active := make([]*model.Job, 0, len(jobs))
		for _, job := range jobs {
			if job.Status == model.JobStatusActive {
				active = append(active, job)
			}
		}
		return active, nil
	}

	return s.jobs.ListActiveJobs(ctx, query)
}

func (s *jobService) Close(ctx context.Context, identity auth.Identity, jobID uuid.UUID) (*model.Job, error) {
	if err := guard.Authorize(identity.Role, guard.OpCloseJob); err != nil {
		return nil, err
	}

	job, err := s.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if job.EmployerID != identity.UserID {
		return nil, apperror.Wrap(apperror.ErrForbidden, "job belongs to another employer")
	}

	if job.Status != model.JobStatusActive {
		return nil, apperror.Wrap(apperror.ErrInvalidState, "job is already closed")
	}

	job.Status = model.JobStatusClosed
	if err := s.jobs.UpdateJob(ctx, job); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.RemoveJob(job.ID.String()); err != nil {
			log.Printf("failed to remove job %s from index: %v", job.ID, err)
		}
	}

	return job, nil
}

func (s *jobService) Apply(ctx context.Context, identity auth.Identity, jobID uuid.UUID) (*model.JobApplication, error) {
	if err := guard.Authorize(identity.Role, guard.OpApplyToJob); err != nil {
		return nil, err
	}

	job, err := s.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if job.Status != model.JobStatusActive {
		return nil, apperror.Wrap(apperror.ErrInvalidState, "job is not accepting applications")
	}

	if _, err := s.jobs.FindApplication(ctx, jobID, identity.UserID); err == nil {
		return nil, apperror.Wrap(apperror.ErrConflict, "already applied to this job")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	application := &model.JobApplication{
		JobID:     jobID,
		StudentID: identity.UserID,
		Status:    model.ApplicationStatusPending,
	}

	if err := s.jobs.CreateApplication(ctx, application); err != nil {
		// Two concurrent applies race past the pre-check; the composite
		// unique index decides the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Wrap(apperror.ErrConflict, "already applied to this job")
		}
		return nil, err
	}

	return application, nil
}

func (s *jobService) ListApplied(ctx context.Context, identity auth.Identity) ([]*dto.AppliedJobResponse, error) {
	if err := guard.Authorize(identity.Role, guard.OpListOwnApplications); err != nil {
		return nil, err
	}

	applications, err := s.jobs.ListApplicationsByStudent(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.AppliedJobResponse, 0, len(applications))
	for _, app := range applications {
		entry := &dto.AppliedJobResponse{
			ApplicationID: app.ID,
			Status:        app.Status,
			DateApplied:   app.DateApplied,
			JobID:         app.JobID,
		}
		if app.Job != nil {
			entry.Company = app.Job.Company
			entry.Position = app.Job.Position
			entry.JobStatus = app.Job.Status
		}
		response = append(response, entry)
	}

	return response, nil
}
