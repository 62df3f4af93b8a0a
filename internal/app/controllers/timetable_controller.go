package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/middleware"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// TimetableController handles the timetable endpoints
type TimetableController struct {
	service *services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(service *services.TimetableService) *TimetableController {
	return &TimetableController{service: service}
}

// ListActive handles GET /api/v1/timetables?type=&level=
func (ctrl *TimetableController) ListActive(c *gin.Context) {
	timetables, err := ctrl.service.ListActive(c.Request.Context(), c.Query("type"), c.Query("level"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(timetables))
}

// ListAll handles GET /api/v1/admin/timetables
func (ctrl *TimetableController) ListAll(c *gin.Context) {
	timetables, err := ctrl.service.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(timetables))
}

// Get handles GET /api/v1/timetables/:id
func (ctrl *TimetableController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	t, err := ctrl.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(t))
}

// Create handles POST /api/v1/admin/timetables
func (ctrl *TimetableController) Create(c *gin.Context) {
	var req dto.TimetableRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("title, type, semester and session are required"))
		return
	}
	image, _ := c.FormFile("image")

	t, err := ctrl.service.Create(c.Request.Context(), &req, image, middleware.AdminIDFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(t))
}

// Update handles POST /api/v1/admin/timetables/:id
func (ctrl *TimetableController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.TimetableRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("title, type, semester and session are required"))
		return
	}
	image, _ := c.FormFile("image")

	t, err := ctrl.service.Update(c.Request.Context(), id, &req, image)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(t))
}

// Delete handles POST /api/v1/admin/timetables/:id/delete
func (ctrl *TimetableController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("timetable deleted"))
}
