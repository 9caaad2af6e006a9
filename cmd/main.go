package main

import (
	"scheduler-service/internal/handler"
	"scheduler-service/internal/middleware"
	"scheduler-service/internal/service"
	"scheduler-service/pkg/config"
	"scheduler-service/pkg/database"
	"scheduler-service/pkg/jwtutil"
	"scheduler-service/pkg/logger"
	"scheduler-service/pkg/mailer"
	"scheduler-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting scheduler service...", zap.String("environment", cfg.Server.Env))

	// Initialize database
	if err := database.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	db := database.GetDB()
	log.Info("Database connection established")

	issuer := jwtutil.New(&cfg.JWT)
	notifier := mailer.New(&cfg.SMTP)

	authSvc := service.NewAuthService(db, issuer, notifier, cfg.JWT.Expiry(), log)
	scheduleSvc := service.NewScheduleService(db, log)
	shiftSvc := service.NewShiftService(db, log)
	employeeSvc := service.NewEmployeeService(db, log)
	templateSvc := service.NewShiftTemplateService(db, log)

	authHandler := handler.NewAuthHandler(authSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	shiftHandler := handler.NewShiftHandler(shiftSvc)
	employeeHandler := handler.NewEmployeeHandler(employeeSvc)
	templateHandler := handler.NewTemplateHandler(templateSvc)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	// Authentication routes - these don't belong under /api since they're for getting access to the API
	auth := e.Group("/auth")
	auth.POST("/register-tenant", authHandler.RegisterTenant)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/refresh", authHandler.Refresh)

	// API routes - all require authentication
	api := e.Group("/api")
	api.Use(middleware.AuthMiddleware(issuer))

	schedules := api.Group("/schedules")
	schedules.GET("", scheduleHandler.List)
	schedules.POST("", scheduleHandler.Create)
	schedules.GET("/:id", scheduleHandler.Get)
	schedules.PUT("/:id", scheduleHandler.Update)
	schedules.PUT("/:id/publish", scheduleHandler.Publish)
	schedules.DELETE("/:id", scheduleHandler.Delete)

	shifts := api.Group("/shifts")
	shifts.GET("", shiftHandler.List)
	shifts.POST("", shiftHandler.Create)
	shifts.GET("/:id", shiftHandler.Get)
	shifts.PUT("/:id", shiftHandler.Update)
	shifts.PUT("/:id/status", shiftHandler.UpdateStatus)
	shifts.PUT("/:id/times", shiftHandler.RecordTimes)
	shifts.DELETE("/:id", shiftHandler.Delete)

	employees := api.Group("/employees")
	employees.GET("", employeeHandler.List)
	employees.POST("", employeeHandler.Create)
	employees.GET("/:id", employeeHandler.Get)
	employees.PUT("/:id", employeeHandler.Update)
	employees.DELETE("/:id", employeeHandler.Delete)

	templates := api.Group("/shift-templates")
	templates.GET("", templateHandler.List)
	templates.POST("", templateHandler.Create)
	templates.GET("/:id", templateHandler.Get)
	templates.PUT("/:id", templateHandler.Update)
	templates.DELETE("/:id", templateHandler.Delete)

	// Get server port from configuration
	port := cfg.Server.Port

	// Start server
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
