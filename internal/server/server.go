package server

import (
	"fmt"
	"strings"

	"anoa.com/campusplacement/internal/auth"
	"anoa.com/campusplacement/internal/config"
	"anoa.com/campusplacement/internal/handler"
	"anoa.com/campusplacement/internal/middleware"
	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/internal/repository"
	"anoa.com/campusplacement/internal/service"
	"anoa.com/campusplacement/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
}

// New wires repositories, services and routes. rdb, search and documents may
// be nil; the features backed by them degrade gracefully.
func New(db *gorm.DB, rdb *redis.Client, search service.SearchService, documents storage.DocumentStorage, cfg *config.Config) (*Server, error) {
	authenticator, sessionAuth, err := buildAuthenticator(cfg)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)

	authService := service.NewAuthService(userRepo, authenticator, rdb, cfg.LoginThrottle)
	authHandler := handler.NewAuthHandler(authService, sessionAuth)

	profileService := service.NewProfileService(userRepo, documents)
	profileHandler := handler.NewProfileHandler(profileService)

	adminService := service.NewAdminService(userRepo)
	adminHandler := handler.NewAdminHandler(adminService)

	jobService := service.NewJobService(jobRepo, search)
	jobHandler := handler.NewJobHandler(jobService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	setupCORS(router, cfg)

	authMiddleware := middleware.NewAuthMiddleware(userRepo, authenticator)

	api := router.Group("/api")

	// Public routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.POST("/auth/reset-password", authHandler.ResetPassword)

		profile := protected.Group("/profile")
		{
			profile.GET("/me", profileHandler.Me)
			profile.PUT("", profileHandler.Update)
			profile.POST("/resume", profileHandler.UploadResume)
		}

		protected.POST("/jobs", jobHandler.Create)
		protected.GET("/jobs", jobHandler.List)
		protected.PATCH("/jobs/:id/close", jobHandler.Close)
		protected.POST("/jobs/:id/apply", jobHandler.Apply)
		protected.GET("/applications", jobHandler.ListApplied)

		admin := protected.Group("/admin")
		admin.Use(authMiddleware.RequireRoles(model.RoleSuperAdmin))
		{
			admin.POST("/tpos", adminHandler.CreateTPO)
			admin.GET("/tpos", adminHandler.ListTPOs)
			admin.PUT("/tpos/:id", adminHandler.UpdateTPO)
		}
	}

	return &Server{engine: router}, nil
}

// Engine exposes the router for httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run(port string) error {
	return s.engine.Run(":" + port)
}

func buildAuthenticator(cfg *config.Config) (auth.Authenticator, *auth.SessionAuthenticator, error) {
	switch cfg.AuthMode {
	case "session":
		if cfg.SessionSecret == "" {
			return nil, nil, fmt.Errorf("SESSION_SECRET is required in session mode")
		}
		sessionAuth := auth.NewSessionAuthenticator(cfg.SessionSecret, cfg.TokenTTL)
		return sessionAuth, sessionAuth, nil
	case "bearer":
		if cfg.JWTSecret == "" {
			return nil, nil, fmt.Errorf("JWT_SECRET is required in bearer mode")
		}
		return auth.NewJWTAuthenticator(cfg.JWTSecret, cfg.TokenTTL), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))
}
