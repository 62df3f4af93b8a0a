package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/middleware"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
	"github.com/bmefuto/portal/internal/pkg/helpers"
)

// LibraryController handles the e-library endpoints
type LibraryController struct {
	service *services.LibraryService
}

// NewLibraryController creates a new LibraryController
func NewLibraryController(service *services.LibraryService) *LibraryController {
	return &LibraryController{service: service}
}

// List handles GET /api/v1/library
func (ctrl *LibraryController) List(c *gin.Context) {
	filter := repositories.LibraryFilter{
		Category: c.Query("category"),
		Level:    c.Query("level"),
	}

	page, size := helpers.ParsePaginationParams(c)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	resources, total, err := ctrl.service.List(c.Request.Context(), filter, int(offset), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      resources,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// Get handles GET /api/v1/library/:id
func (ctrl *LibraryController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	res, err := ctrl.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(res))
}

// Create handles POST /api/v1/admin/library
func (ctrl *LibraryController) Create(c *gin.Context) {
	var req dto.LibraryResourceRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("title, category, description and link are required"))
		return
	}
	cover, _ := c.FormFile("cover")

	res, err := ctrl.service.Create(c.Request.Context(), &req, cover, middleware.AdminIDFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(res))
}

// Update handles POST /api/v1/admin/library/:id
func (ctrl *LibraryController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.LibraryResourceRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("title, category, description and link are required"))
		return
	}
	cover, _ := c.FormFile("cover")

	res, err := ctrl.service.Update(c.Request.Context(), id, &req, cover)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(res))
}

// Delete handles POST /api/v1/admin/library/:id/delete
func (ctrl *LibraryController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("library resource deleted"))
}
