package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"lollyshoppe/internal/config"
	"lollyshoppe/internal/db"
	"lollyshoppe/internal/model"
	"lollyshoppe/internal/repository"
)

// Seeds a local database with an admin, two clients, and enough projects,
// milestones, deliverables, and invoices to make the dashboards show
// something.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
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

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	milestoneRepo := repository.NewMilestoneRepository(gormDB)
	deliverableRepo := repository.NewDeliverableRepository(gormDB)
	invoiceRepo := repository.NewInvoiceRepository(gormDB)

	admin := &model.User{
		SubjectID: "seed|admin",
		Email:     "hello@lollyshoppe.dev",
		FirstName: "Lolly",
		LastName:  "Admin",
		Role:      model.RoleAdmin,
	}
	clients := []*model.User{
		{SubjectID: "seed|client-1", Email: "founder@acme.test", FirstName: "Ada", LastName: "Founder", Role: model.RoleClient},
		{SubjectID: "seed|client-2", Email: "ceo@umbrella.test", FirstName: "Umay", LastName: "Ceo", Role: model.RoleClient},
	}

	for _, u := range append([]*model.User{admin}, clients...) {
		if existing, err := userRepo.FindBySubjectID(ctx, u.SubjectID); err == nil {
			u.ID = existing.ID
			continue
		}
		if err := userRepo.Create(ctx, u); err != nil {
			logger.Fatal("seed user failed", zap.String("subject", u.SubjectID), zap.Error(err))
		}
	}
	logger.Info("seeded users", zap.Int("count", len(clients)+1))

	budget := decimal.NewFromInt(15000)
	start := time.Now().AddDate(0, -1, 0)
	project := &model.Project{
		Title:       "MVP Build",
		Description: "Build and launch the first MVP for the founding team.",
		Status:      model.ProjectStatusInProgress,
		Budget:      &budget,
		StartDate:   &start,
		ClientID:    clients[0].ID,
	}
	if err := projectRepo.Create(ctx, project); err != nil {
		logger.Fatal("seed project failed", zap.Error(err))
	}

	milestones := []*model.Milestone{
		{Title: "Wireframes", Order: 0, ProjectID: project.ID},
		{Title: "Clickable prototype", Order: 1, ProjectID: project.ID},
		{Title: "Beta launch", Order: 2, ProjectID: project.ID},
	}
	for _, m := range milestones {
		if err := milestoneRepo.Create(ctx, m); err != nil {
			logger.Fatal("seed milestone failed", zap.Error(err))
		}
	}
	if _, err := milestoneRepo.ToggleComplete(ctx, milestones[0].ID, time.Now()); err != nil {
		logger.Fatal("seed milestone toggle failed", zap.Error(err))
	}

	fileURL := "https://files.lollyshoppe.dev/wireframes-v1.pdf"
	deliverable := &model.Deliverable{
		Title:     "Wireframe pack",
		FileURL:   &fileURL,
		ProjectID: project.ID,
	}
	if err := deliverableRepo.Create(ctx, deliverable); err != nil {
		logger.Fatal("seed deliverable failed", zap.Error(err))
	}

	due := time.Now().AddDate(0, 0, 14)
	invoice := &model.Invoice{
		InvoiceNumber: "INV-0001",
		Amount:        decimal.NewFromInt(5000),
		Status:        model.InvoiceStatusSent,
		DueDate:       &due,
		ClientID:      clients[0].ID,
		ProjectID:     &project.ID,
	}
	if err := invoiceRepo.Create(ctx, invoice); err != nil {
		logger.Fatal("seed invoice failed", zap.Error(err))
	}

	logger.Info("seed complete",
		zap.String("project", project.ID.String()),
		zap.String("invoice", invoice.ID.String()),
	)
}
