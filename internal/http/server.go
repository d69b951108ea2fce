package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"signposts/internal/domain"
	"signposts/internal/logging"
	"signposts/internal/storage"
)

// Server represents an individual signpost catalog server
type Server struct {
	config    domain.ServiceConfig
	store     *storage.PathStore
	logger    *logging.Logger
	engine    *gin.Engine
	startTime time.Time
}

// NewServer creates a new signpost server with the given configuration
func NewServer(config domain.ServiceConfig) (*Server, error) {
	// Initialize components
	store := storage.NewPathStore()
	logger := logging.NewLogger(config.Name, config.Port)
	startTime := time.Now()

	// Configure Gin
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Create server instance
	server := &Server{
		config:    config,
		store:     store,
		logger:    logger,
		engine:    engine,
		startTime: startTime,
	}

	// Setup middleware and routes
	server.setupMiddleware()
	server.setupRoutes()

	// Log server startup
	server.logger.WithFields(map[string]interface{}{
		"id":   config.ID,
		"name": config.Name,
		"port": config.Port,
	}).Infof("Started signpost server (id: %s)", config.ID)

	return server, nil
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	// Custom recovery middleware
	s.engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		s.logger.WithFields(map[string]interface{}{
			"error": recovered,
			"path":  c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("Panic recovered")
		c.JSON(500, gin.H{"error": "Internal server error"})
	}))

	// Request logging middleware
	s.engine.Use(s.requestLoggingMiddleware())
}

// requestLoggingMiddleware logs incoming requests and responses
func (s *Server) requestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Log incoming request
		s.logger.InfoRequest(c.Request.Method, c.Request.URL.Path, c.ClientIP())

		// Process request
		c.Next()

		// Log response
		duration := time.Since(start)
		status := c.Writer.Status()
		size := c.Writer.Size()

		if status == 404 && !isAdminPath(c.Request.URL.Path) {
			// Log 404s for non-admin paths as warnings
			s.logger.WarnNoRoute(c.Request.Method, c.Request.URL.Path, duration.String())
		} else {
			s.logger.InfoResponse(status, c.Request.Method, c.Request.URL.Path, int64(size), duration.String())
		}
	}
}

// isAdminPath checks if a path is an admin endpoint
func isAdminPath(path string) bool {
	return len(path) >= 6 && path[:6] == "/admin"
}

// setupRoutes configures all server routes
func (s *Server) setupRoutes() {
	// Admin endpoints group
	admin := s.engine.Group("/admin")
	{
		admin.POST("/paths", s.registerPathHandler())
		admin.GET("/paths", s.listPathsHandler())
		admin.GET("/paths/:id", s.getPathHandler())
		admin.PUT("/paths/:id", s.updatePathHandler())
		admin.DELETE("/paths/:id", s.deletePathHandler())
		admin.DELETE("/paths", s.clearPathsHandler())
		admin.POST("/paths/:id/href", s.hrefHandler())
		admin.POST("/paths/:id/sub", s.subPathHandler())
		admin.GET("/info", s.serviceInfoHandler())
		admin.GET("/health", s.healthHandler())
	}

	// Public redirect surface
	s.engine.GET("/go/:name", s.redirectHandler())

	// Catch-all for everything else
	s.engine.NoRoute(s.notFoundHandler())
}

// Start begins listening on the configured port
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.Infof("Listening on %s", addr)
	return s.engine.Run(addr)
}

// Stop gracefully shuts down the server (placeholder for future implementation)
func (s *Server) Stop() error {
	s.logger.Info("Shutting down signpost server")
	return nil
}

// GetConfig returns the server configuration
func (s *Server) GetConfig() domain.ServiceConfig {
	return s.config
}

// GetPathCount returns the current number of registered paths
func (s *Server) GetPathCount() int {
	return s.store.Count()
}

// GetUptime returns how long the server has been running
func (s *Server) GetUptime() time.Duration {
	return time.Since(s.startTime)
}

// healthHandler handles GET /admin/health
func (s *Server) healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "healthy",
			"uptime": s.GetUptime().String(),
			"paths":  s.GetPathCount(),
		})
	}
}
