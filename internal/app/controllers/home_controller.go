package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/services"
)

// HomeController serves the aggregate homepage and admin dashboard payloads
type HomeController struct {
	homeService *services.HomeService
}

// NewHomeController creates a new HomeController
func NewHomeController(homeService *services.HomeService) *HomeController {
	return &HomeController{homeService: homeService}
}

// Home handles GET /api/v1/home
func (ctrl *HomeController) Home(c *gin.Context) {
	resp, err := ctrl.homeService.Home(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// AdminDashboard handles GET /api/v1/admin/dashboard
func (ctrl *HomeController) AdminDashboard(c *gin.Context) {
	stats, err := ctrl.homeService.AdminDashboard(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}
