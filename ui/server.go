package ui

import (
	"github.com/gin-gonic/gin"

	"scenery/app"
	"scenery/internal"
	"scenery/internal/config"
)

// Server represents the JSON API for report building
type Server struct {
	router  *gin.Engine
	service *app.ReportService
	config  *config.Config
	logger  *internal.Logger
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config, service *app.ReportService, logger *internal.Logger) *Server {
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.MaxMultipartMemory = cfg.Upload.MaxUploadMB << 20

	s := &Server{
		router:  router,
		service: service,
		config:  cfg,
		logger:  logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.POST("/reports", s.handleBuildReport)
	api.POST("/reports/upload", s.handleUploadReport)
	api.GET("/reports/demo", s.handleDemoReport)
	api.POST("/palette", s.handlePalette)
}

// Router exposes the underlying router for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := ":" + s.config.Server.Port
	s.logger.Info("listening on %s", addr)
	return s.router.Run(addr)
}
