package controller

import (
	"heart-haven/web/service"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the admin dashboard aggregates.
type DashboardController struct {
	dashboardService *service.DashboardService
}

func NewDashboardController(adminGroup *gin.RouterGroup, dashboardService *service.DashboardService) *DashboardController {
	a := &DashboardController{dashboardService: dashboardService}
	adminGroup.GET("/dashboard", a.stats)
	return a
}

func (a *DashboardController) stats(c *gin.Context) {
	stats, err := a.dashboardService.GetStats()
	jsonObj(c, stats, err)
}
