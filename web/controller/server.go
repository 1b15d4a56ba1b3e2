package controller

import (
	"strconv"

	"heart-haven/web/service"

	"github.com/gin-gonic/gin"
)

// ServerController exposes process status and buffered logs to admins.
type ServerController struct {
	serverService *service.ServerService
}

func NewServerController(adminGroup *gin.RouterGroup, serverService *service.ServerService) *ServerController {
	a := &ServerController{serverService: serverService}
	adminGroup.GET("/server/status", a.status)
	adminGroup.GET("/server/logs", a.logs)
	return a
}

func (a *ServerController) status(c *gin.Context) {
	jsonObj(c, a.serverService.GetStatus(), nil)
}

func (a *ServerController) logs(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "50"))
	if err != nil || count <= 0 {
		count = 50
	}
	level := c.DefaultQuery("level", "INFO")
	jsonObj(c, a.serverService.GetLogs(count, level), nil)
}
