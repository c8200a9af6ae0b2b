package main

import (
	"net/http"

	"lollyshoppe/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"lollyshoppe/internal/cache"
	"lollyshoppe/internal/config"
	"lollyshoppe/internal/db"
	"lollyshoppe/internal/handler"
	"lollyshoppe/internal/model"
	"lollyshoppe/internal/repository"
	"lollyshoppe/internal/router"
	"lollyshoppe/internal/service"
)

// @title Lollyshoppe API
// @version 1.0
// @description Business-management API for the Lollyshoppe agency: clients, projects, milestones, deliverables, invoices.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider's JWT.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Milestone{},
		&model.Deliverable{},
		&model.Invoice{},
	); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	milestoneRepo := repository.NewMilestoneRepository(gormDB)
	deliverableRepo := repository.NewDeliverableRepository(gormDB)
	invoiceRepo := repository.NewInvoiceRepository(gormDB)

	// Services
	userService := service.NewUserService(userRepo, cacheClient)
	projectService := service.NewProjectService(projectRepo, userRepo, cacheClient)
	milestoneService := service.NewMilestoneService(milestoneRepo, projectRepo, cacheClient)
	deliverableService := service.NewDeliverableService(deliverableRepo, projectRepo, cacheClient)
	invoiceService := service.NewInvoiceService(invoiceRepo, userRepo, cacheClient)
	dashboardService := service.NewDashboardService(userRepo, projectRepo, milestoneRepo, deliverableRepo, invoiceRepo)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	milestoneHandler := handler.NewMilestoneHandler(milestoneService)
	deliverableHandler := handler.NewDeliverableHandler(deliverableService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	router.Register(
		e,
		cfg,
		userService,
		userHandler,
		projectHandler,
		milestoneHandler,
		deliverableHandler,
		invoiceHandler,
		dashboardHandler,
	)

	logger.Info("starting server", zap.String("port", cfg.ServerPort))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start failed", zap.Error(err))
	}
}
