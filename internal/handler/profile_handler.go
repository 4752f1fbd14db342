package handler

import (
	"net/http"

	"anoa.com/campusplacement/internal/dto"
	"anoa.com/campusplacement/internal/service"
	"anoa.com/campusplacement/pkg/response"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	identity, err := response.GetIdentity(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.profileService.Me(c.Request.Context(), identity.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	identity, err := response.GetIdentity(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	user, err := h.profileService.Update(c.Request.Context(), identity, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) UploadResume(c *gin.Context) {
	identity, err := response.GetIdentity(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil || fileHeader == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read resume file"})
		return
	}
	defer file.Close()

	user, err := h.profileService.UploadResume(c.Request.Context(), identity, &dto.ResumeFile{
		Reader:   file,
		FileName: fileHeader.Filename,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
