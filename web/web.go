// Package web provides the web server for the heart-haven panel: routing,
// sessions, the JSON API and background job scheduling. The server is the
// composition root; it owns the database handle and wires it into every
// service explicitly.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"heart-haven/config"
	"heart-haven/database/model"
	"heart-haven/logger"
	"heart-haven/util/common"
	"heart-haven/web/controller"
	"heart-haven/web/job"
	"heart-haven/web/middleware"
	"heart-haven/web/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Server is the heart-haven web server with its controllers, services and
// scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	db *gorm.DB

	settingService   *service.SettingService
	userService      *service.UserService
	heartsService    *service.HeartsService
	purchaseService  *service.PurchaseService
	storeService     *service.StoreService
	historyService   *service.HistoryService
	importService    *service.ImportService
	dashboardService *service.DashboardService
	serverService    *service.ServerService

	index     *controller.IndexController
	students  *controller.StudentController
	store     *controller.StoreController
	history   *controller.HistoryController
	dashboard *controller.DashboardController
	server    *controller.ServerController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a web server over the given database handle.
func NewServer(db *gorm.DB) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{db: db, ctx: ctx, cancel: cancel}

	s.settingService = service.NewSettingService(db)
	s.userService = service.NewUserService(db)
	s.heartsService = service.NewHeartsService(db)
	s.purchaseService = service.NewPurchaseService(db)
	s.storeService = service.NewStoreService(db)
	s.historyService = service.NewHistoryService(db)
	s.importService = service.NewImportService(db)
	s.dashboardService = service.NewDashboardService(db, s.historyService)
	s.serverService = service.NewServerService()

	return s
}

// initRouter initializes Gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	basePath, err := s.settingService.GetBasePath()
	if err != nil {
		return nil, err
	}

	secret, err := s.settingService.GetSecret()
	if err != nil {
		return nil, err
	}
	store := cookie.NewStore(secret)
	engine.Use(sessions.Sessions("heart-haven", store))

	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	g := engine.Group(basePath)
	s.index = controller.NewIndexController(g, s.settingService, s.userService)

	api := g.Group("panel/api")
	api.Use(middleware.LoginRequired())
	s.index.RegisterMe(api)

	admin := api.Group("", middleware.RoleRequired(model.RoleAdmin))
	student := api.Group("", middleware.RoleRequired(model.RoleStudent))

	s.students = controller.NewStudentController(admin, s.userService, s.heartsService, s.importService)
	s.store = controller.NewStoreController(api, admin, student, s.storeService, s.purchaseService)
	s.history = controller.NewHistoryController(api, admin, s.historyService)
	s.dashboard = controller.NewDashboardController(admin, s.dashboardService)
	s.server = controller.NewServerController(admin, s.serverService)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@hourly", job.NewCheckpointJob(s.db))
	s.cron.AddJob("@daily", job.NewActivitySummaryJob(s.dashboardService))
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	loc, err := s.settingService.GetTimeLocation()
	if err != nil {
		return err
	}
	s.cron = cron.New(cron.WithLocation(loc))
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listen, err := s.settingService.GetListen()
	if err != nil {
		return err
	}
	port, err := s.settingService.GetPort()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(listen, strconv.Itoa(port))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
