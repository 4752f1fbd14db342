package handler

import (
	"net/http"

	"anoa.com/campusplacement/internal/dto"
	"anoa.com/campusplacement/internal/service"
	"anoa.com/campusplacement/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func (h *AdminHandler) CreateTPO(c *gin.Context) {
	identity, err := response.GetIdentity(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.CreateTPOInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	user, err := h.adminService.CreateTPO(c.Request.Context(), identity, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AdminHandler) ListTPOs(c *gin.Context) {
	identity, err := response.GetIdentity(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	users, err := h.adminService.ListTPOs(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) UpdateTPO(c *gin.Context) {
	identity, err := response.GetIdentity(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tpoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tpo id"})
		return
	}

	var input dto.UpdateTPOInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	user, err := h.adminService.UpdateTPO(c.Request.Context(), identity, tpoID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
