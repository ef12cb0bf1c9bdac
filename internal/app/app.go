package app

import (
	"fmt"
	"time"

	"ycsmatch_backend/database"
	"ycsmatch_backend/internal/auth"
	"ycsmatch_backend/internal/config"
	"ycsmatch_backend/internal/email"
	"ycsmatch_backend/internal/handlers"
	"ycsmatch_backend/internal/logger"
	"ycsmatch_backend/internal/middleware"
	"ycsmatch_backend/internal/repositories"
	"ycsmatch_backend/internal/routes"
	"ycsmatch_backend/internal/services"
	"ycsmatch_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if err := auth.Init(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute); err != nil {
		logger.Fatal("Failed to initialize token signing", "error", err)
	}

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	cleanupExpiredResetTokens(gormDB)

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
			FromName: cfg.Email.FromName,
		})
	} else {
		logger.Warn("SMTP host not configured, using mock email provider")
		emailProvider = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	resetRepo := repositories.NewResetTokenRepository(gormDB)
	notifRepo := repositories.NewNotificationRepository(gormDB)

	authService := services.NewAuthService(userRepo, resetRepo, notifRepo, emailProvider, cfg)
	userService := services.NewUserService(userRepo)
	notificationService := services.NewNotificationService(notifRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		NotificationService: notificationService,
		EmailProvider:       emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, container.UserService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// cleanupExpiredResetTokens drops stale reset tokens at boot so the table
// does not accumulate forever.
func cleanupExpiredResetTokens(gormDB *gorm.DB) {
	resetRepo := repositories.NewResetTokenRepository(gormDB)
	deleted, err := resetRepo.DeleteExpired(time.Now())
	if err != nil {
		logger.WithError(err).Warn("failed to clean up expired reset tokens")
		return
	}
	if deleted > 0 {
		logger.Info("Expired reset tokens removed", "count", deleted)
	}
}
