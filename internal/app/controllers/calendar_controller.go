package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/middleware"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// CalendarController handles the academic calendar endpoints
type CalendarController struct {
	service *services.CalendarService
}

// NewCalendarController creates a new CalendarController
func NewCalendarController(service *services.CalendarService) *CalendarController {
	return &CalendarController{service: service}
}

// View handles GET /api/v1/calendar
func (ctrl *CalendarController) View(c *gin.Context) {
	resp, err := ctrl.service.View(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListAll handles GET /api/v1/admin/calendars
func (ctrl *CalendarController) ListAll(c *gin.Context) {
	calendars, err := ctrl.service.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(calendars))
}

// Create handles POST /api/v1/admin/calendars
func (ctrl *CalendarController) Create(c *gin.Context) {
	var req dto.CalendarRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("title and session are required"))
		return
	}
	image, _ := c.FormFile("image")

	cal, err := ctrl.service.Create(c.Request.Context(), &req, image, middleware.AdminIDFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(cal))
}

// Update handles POST /api/v1/admin/calendars/:id
func (ctrl *CalendarController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.CalendarRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("title and session are required"))
		return
	}
	image, _ := c.FormFile("image")

	cal, err := ctrl.service.Update(c.Request.Context(), id, &req, image)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(cal))
}

// Delete handles POST /api/v1/admin/calendars/:id/delete
func (ctrl *CalendarController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("calendar deleted"))
}
