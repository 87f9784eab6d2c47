package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatbox-backend/config"
	"chatbox-backend/internal/domain/account"
	"chatbox-backend/internal/handler"
	"chatbox-backend/internal/middleware"
	"chatbox-backend/internal/redis"
	"chatbox-backend/internal/services"
	"chatbox-backend/internal/transport/httpdto"
	"chatbox-backend/pkg/database"
	"chatbox-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Auth  *handler.AuthHandler
	Admin *handler.AdminHandler
	User  *handler.UserHandler
	Chat  *handler.ChatHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// SetupRoutes wires middleware and the route table. The rate limiter is
// optional; passing nil disables credential-endpoint throttling.
func (s *Server) SetupRoutes(handlers *Handlers, authService *services.AuthService, limiter *redis.RateLimiter, db *gorm.DB) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	if limiter != nil {
		s.engine.Use(middleware.RateLimitMiddleware(limiter))
	}

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "pong"})
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(db); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse("Service Unavailable", "database unreachable"))
			return
		}
		c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "healthy"})
	})

	requireAuth := middleware.AuthMiddleware(authService)
	requireAdmin := middleware.RequireRole(account.RoleAdmin)

	admin := s.engine.Group("/admin")
	{
		admin.POST("/login", handlers.Auth.Login)
		admin.GET("/allUsers", requireAuth, requireAdmin, handlers.Admin.AllUsers)
		admin.POST("/addUser", requireAuth, requireAdmin, handlers.Admin.AddUser)
		admin.PUT("/edituser/:id", requireAuth, requireAdmin, handlers.Admin.EditUser)
		admin.DELETE("/deleteuser/:id", requireAuth, requireAdmin, handlers.Admin.DeleteUser)
	}

	user := s.engine.Group("/user")
	{
		user.POST("/signup", handlers.User.Signup)
		user.GET("/data", requireAuth, handlers.User.Data)
		user.POST("/chatbox", requireAuth, handlers.Chat.Chatbox)
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
