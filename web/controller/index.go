package controller

import (
	"net/http"

	"heart-haven/logger"
	"heart-haven/web/service"
	"heart-haven/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController handles login, logout and the current-user endpoint.
type IndexController struct {
	BaseController

	settingService *service.SettingService
	userService    *service.UserService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup, settingService *service.SettingService, userService *service.UserService) *IndexController {
	a := &IndexController{
		settingService: settingService,
		userService:    userService,
	}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

// login authenticates the user and stores the account in the session.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid login data")
		return
	}
	if form.Username == "" {
		pureJsonMsg(c, http.StatusOK, false, "username can not be empty")
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, "password can not be empty")
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	if user == nil {
		logger.Warningf("wrong username or password for %q, IP: %q", form.Username, getRemoteIp(c))
		pureJsonMsg(c, http.StatusOK, false, "wrong username or password")
		return
	}

	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("unable to get session max age:", err)
	}
	if err := session.SetMaxAge(c, sessionMaxAge*60); err != nil {
		logger.Warning("unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", user.UserName(), getRemoteIp(c))
	jsonObj(c, user, nil)
}

// logout clears the session.
func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out successfully", user.UserName())
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	jsonMsg(c, "logged out", nil)
}

// me returns the logged-in user from the session.
func (a *IndexController) me(c *gin.Context) {
	jsonObj(c, session.GetLoginUser(c), nil)
}

// RegisterMe mounts the current-user endpoint on an authenticated group.
func (a *IndexController) RegisterMe(g *gin.RouterGroup) {
	g.GET("/me", a.me)
}
