package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/middleware"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// HandbookController handles the course handbook endpoints
type HandbookController struct {
	service *services.HandbookService
}

// NewHandbookController creates a new HandbookController
func NewHandbookController(service *services.HandbookService) *HandbookController {
	return &HandbookController{service: service}
}

// View handles GET /api/v1/handbook?level=&semester=
func (ctrl *HandbookController) View(c *gin.Context) {
	level := c.DefaultQuery("level", "100")
	semester := c.DefaultQuery("semester", "First")

	resp, err := ctrl.service.View(c.Request.Context(), level, semester)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListAll handles GET /api/v1/admin/handbook
func (ctrl *HandbookController) ListAll(c *gin.Context) {
	entries, err := ctrl.service.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// Create handles POST /api/v1/admin/handbook
func (ctrl *HandbookController) Create(c *gin.Context) {
	var req dto.HandbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("level, semester, course code, title and credit unit are required"))
		return
	}

	h, err := ctrl.service.Create(c.Request.Context(), &req, middleware.AdminIDFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(h))
}

// Update handles POST /api/v1/admin/handbook/:id
func (ctrl *HandbookController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.HandbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("level, semester, course code, title and credit unit are required"))
		return
	}

	h, err := ctrl.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(h))
}

// Delete handles POST /api/v1/admin/handbook/:id/delete
func (ctrl *HandbookController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("handbook entry deleted"))
}
