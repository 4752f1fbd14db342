package handler

import (
	"net/http"

	"anoa.com/campusplacement/internal/dto"
	"anoa.com/campusplacement/internal/service"
	"anoa.com/campusplacement/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobHandler struct {
	jobService service.JobService
}

func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	identity, err := response.GetIdentity(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.CreateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), identity, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Close(c *gin.Context) {
	identity, err := response.GetIdentity(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job, err := h.jobService.Close(c.Request.Context(), identity, jobID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Apply(c *gin.Context) {
	identity, err := response.GetIdentity(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	application, err := h.jobService.Apply(c.Request.Context(), identity, jobID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *JobHandler) ListApplied(c *gin.Context) {
	identity, err := response.GetIdentity(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	applications, err := h.jobService.ListApplied(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}
