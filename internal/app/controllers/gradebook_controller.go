package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/middleware"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// GradebookController handles the student's semesters, courses and CGPA
type GradebookController struct {
	service *services.GradebookService
}

// NewGradebookController creates a new GradebookController
func NewGradebookController(service *services.GradebookService) *GradebookController {
	return &GradebookController{service: service}
}

// ListSemesters handles GET /api/v1/portal/semesters
func (ctrl *GradebookController) ListSemesters(c *gin.Context) {
	semesters, err := ctrl.service.ListSemesters(c.Request.Context(), middleware.RegNumberFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(semesters))
}

// GetSemester handles GET /api/v1/portal/semesters/:id
func (ctrl *GradebookController) GetSemester(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	sem, err := ctrl.service.GetSemester(c.Request.Context(), middleware.RegNumberFromContext(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(sem))
}

// CreateSemester handles POST /api/v1/portal/semesters
func (ctrl *GradebookController) CreateSemester(c *gin.Context) {
	var req dto.SemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("semester name is required"))
		return
	}

	sem, err := ctrl.service.CreateSemester(c.Request.Context(), middleware.RegNumberFromContext(c), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(sem))
}

// UpdateSemester handles POST /api/v1/portal/semesters/:id
func (ctrl *GradebookController) UpdateSemester(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.SemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("semester name is required"))
		return
	}

	sem, err := ctrl.service.UpdateSemester(c.Request.Context(), middleware.RegNumberFromContext(c), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(sem))
}

// DeleteSemester handles POST /api/v1/portal/semesters/:id/delete
func (ctrl *GradebookController) DeleteSemester(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.service.DeleteSemester(c.Request.Context(), middleware.RegNumberFromContext(c), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("semester deleted"))
}

// AddCourse handles POST /api/v1/portal/semesters/:id/courses
func (ctrl *GradebookController) AddCourse(c *gin.Context) {
	semesterID, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("course code, name and credit unit are required"))
		return
	}

	course, err := ctrl.service.AddCourse(c.Request.Context(), middleware.RegNumberFromContext(c), semesterID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// UpdateCourse handles POST /api/v1/portal/courses/:id
func (ctrl *GradebookController) UpdateCourse(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("course code, name and credit unit are required"))
		return
	}

	course, err := ctrl.service.UpdateCourse(c.Request.Context(), middleware.RegNumberFromContext(c), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// DeleteCourse handles POST /api/v1/portal/courses/:id/delete
func (ctrl *GradebookController) DeleteCourse(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.service.DeleteCourse(c.Request.Context(), middleware.RegNumberFromContext(c), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("course deleted"))
}

// CalculateCGPA handles POST /api/v1/portal/cgpa/calculate
func (ctrl *GradebookController) CalculateCGPA(c *gin.Context) {
	result, err := ctrl.service.CalculateCGPA(c.Request.Context(), middleware.RegNumberFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// CGPAHistory handles GET /api/v1/portal/cgpa/history
func (ctrl *GradebookController) CGPAHistory(c *gin.Context) {
	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	history, err := ctrl.service.CGPAHistory(c.Request.Context(), middleware.RegNumberFromContext(c), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(history))
}
