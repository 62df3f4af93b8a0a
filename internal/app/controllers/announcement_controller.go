package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/middleware"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// AnnouncementController handles department notice endpoints
type AnnouncementController struct {
	service *services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(service *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{service: service}
}

// ListActive handles GET /api/v1/announcements
func (ctrl *AnnouncementController) ListActive(c *gin.Context) {
	announcements, err := ctrl.service.ListActive(c.Request.Context(), 0)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(announcements))
}

// ListAll handles GET /api/v1/admin/announcements
func (ctrl *AnnouncementController) ListAll(c *gin.Context) {
	announcements, err := ctrl.service.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(announcements))
}

// Create handles POST /api/v1/admin/announcements
func (ctrl *AnnouncementController) Create(c *gin.Context) {
	var req dto.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("title and content are required"))
		return
	}

	a, err := ctrl.service.Create(c.Request.Context(), &req, middleware.AdminIDFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(a))
}

// Update handles POST /api/v1/admin/announcements/:id
func (ctrl *AnnouncementController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("title and content are required"))
		return
	}

	a, err := ctrl.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(a))
}

// Delete handles POST /api/v1/admin/announcements/:id/delete
func (ctrl *AnnouncementController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("announcement deleted"))
}
