package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/middleware"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
	"github.com/bmefuto/portal/internal/pkg/helpers"
)

// PastQuestionController handles the past question archive endpoints
type PastQuestionController struct {
	service *services.PastQuestionService
}

// NewPastQuestionController creates a new PastQuestionController
func NewPastQuestionController(service *services.PastQuestionService) *PastQuestionController {
	return &PastQuestionController{service: service}
}

// List handles GET /api/v1/past-questions
func (ctrl *PastQuestionController) List(c *gin.Context) {
	filter := repositories.PastQuestionFilter{
		Level:    c.Query("level"),
		Semester: c.Query("semester"),
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 1 {
			_ = c.Error(apperrors.NewBadRequestError("invalid year filter"))
			return
		}
		filter.Year = year
	}

	page, size := helpers.ParsePaginationParams(c)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	questions, total, years, err := ctrl.service.List(c.Request.Context(), filter, int(offset), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"questions":  questions,
		"years":      years,
		"pagination": helpers.NewPaginationInfo(total, page, size),
	}))
}

// Get handles GET /api/v1/past-questions/:id
func (ctrl *PastQuestionController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	q, err := ctrl.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(q))
}

// Create handles POST /api/v1/admin/past-questions
func (ctrl *PastQuestionController) Create(c *gin.Context) {
	var req dto.PastQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("course code, title, level, semester, year and link are required"))
		return
	}

	q, err := ctrl.service.Create(c.Request.Context(), &req, middleware.AdminIDFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(q))
}

// Update handles POST /api/v1/admin/past-questions/:id
func (ctrl *PastQuestionController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.PastQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("course code, title, level, semester, year and link are required"))
		return
	}

	q, err := ctrl.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(q))
}

// Delete handles POST /api/v1/admin/past-questions/:id/delete
func (ctrl *PastQuestionController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("past question deleted"))
}
