package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/zoobzio/clockz"

	"github.com/ridwanfathin/claw-dashboard-service/internal/config"
	"github.com/ridwanfathin/claw-dashboard-service/internal/handler"
	"github.com/ridwanfathin/claw-dashboard-service/internal/middleware"
)

// Handlers groups the route handlers mounted under /v1
type Handlers struct {
	Proxy    *handler.ProxyHandler
	Reports  *handler.ReportHandler
	Stores   *handler.StoreHandler
	Machines *handler.MachineHandler
	Banks    *handler.BankHandler
}

// Stopper is a background component stopped before the HTTP server
type Stopper interface {
	Stop()
}

// Server represents the HTTP server for the dashboard service
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	log        *logrus.Logger
	background []Stopper
}

// NewServer creates and configures a new server instance
func NewServer(cfg *config.Config, handlers Handlers, clock clockz.Clock, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.RequestResponseLogger(log))

	server := &Server{
		router: router,
		config: cfg,
		log:    log,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	server.setupRoutes(handlers, middleware.SessionMiddleware(clock))

	return server
}

// AddBackground registers a component to stop on shutdown
func (s *Server) AddBackground(stopper Stopper) {
	s.background = append(s.background, stopper)
}

// GetRouter returns the gin router instance
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// setupRoutes configures all application routes
func (s *Server) setupRoutes(h Handlers, auth gin.HandlerFunc) {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Swagger UI at /api-docs/index.html
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	s.router.GET("/api-docs/*any", swaggerHandler)

	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})

	v1 := s.router.Group("/v1")
	if h.Proxy != nil {
		h.Proxy.RegisterRoutes(v1, auth)
	}
	if h.Stores != nil {
		h.Stores.RegisterRoutes(v1, auth)
	}
	if h.Reports != nil {
		h.Reports.RegisterRoutes(v1, auth)
	}
	if h.Machines != nil {
		h.Machines.RegisterRoutes(v1, auth)
	}
	if h.Banks != nil {
		h.Banks.RegisterRoutes(v1)
	}
}

// Start begins listening for requests and handles graceful shutdown
func (s *Server) Start() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("port", s.config.Port).Info("server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-quit:
	case err := <-errCh:
		s.stopBackground()
		return fmt.Errorf("failed to start server: %w", err)
	}

	s.log.Info("shutting down server")

	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.log.Info("server exited gracefully")
	return nil
}

// Shutdown stops background components and then the HTTP server
func (s *Server) Shutdown() error {
	s.stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

func (s *Server) stopBackground() {
	for _, b := range s.background {
		b.Stop()
	}
	s.background = nil
}
