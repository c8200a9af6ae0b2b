package service

import (
	"context"

	"lollyshoppe/internal/auth"
	"lollyshoppe/internal/model"
	"lollyshoppe/internal/repository"
	"lollyshoppe/internal/stats"
)

// AdminSummary is the admin dashboard snapshot.
type AdminSummary struct {
	TotalClients   int                          `json:"total_clients"`
	TotalProjects  int                          `json:"total_projects"`
	ActiveProjects int                          `json:"active_projects"`
	StatusCounts   map[model.ProjectStatus]int  `json:"status_counts"`
	TotalInvoiced  string                       `json:"total_invoiced"`
	TotalPaid      string                       `json:"total_paid"`
	Outstanding    string                       `json:"outstanding"`
}

// ClientSummary is the client dashboard snapshot, scoped to the actor.
type ClientSummary struct {
	ActiveProjects int              `json:"active_projects"`
	TotalProjects  int              `json:"total_projects"`
	UnpaidTotal    string           `json:"unpaid_total"`
	Deliverables   int              `json:"deliverables"`
	NextMilestone  *model.Milestone `json:"next_milestone,omitempty"`
}

// DashboardService derives summary figures from the mutation layer's lists.
// Nothing here is persisted; every call recomputes from the current snapshot.
type DashboardService interface {
	AdminSummary(ctx context.Context, actor *auth.Actor) (*AdminSummary, error)
	ClientSummary(ctx context.Context, actor *auth.Actor) (*ClientSummary, error)
}

type dashboardService struct {
	userRepo        repository.UserRepository
	projectRepo     repository.ProjectRepository
	milestoneRepo   repository.MilestoneRepository
	deliverableRepo repository.DeliverableRepository
	invoiceRepo     repository.InvoiceRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	milestoneRepo repository.MilestoneRepository,
	deliverableRepo repository.DeliverableRepository,
	invoiceRepo repository.InvoiceRepository,
) DashboardService {
	return &dashboardService{
		userRepo:        userRepo,
		projectRepo:     projectRepo,
		milestoneRepo:   milestoneRepo,
		deliverableRepo: deliverableRepo,
		invoiceRepo:     invoiceRepo,
	}
}

func (s *dashboardService) AdminSummary(ctx context.Context, actor *auth.Actor) (*AdminSummary, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	clients, err := s.userRepo.ListByRole(ctx, model.RoleClient)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := stats.ProjectStatusCounts(projects)
	paid := stats.InvoiceTotal(invoices, model.InvoiceStatusPaid)
	outstanding := stats.InvoiceTotal(invoices, model.InvoiceStatusSent, model.InvoiceStatusOverdue)

	return &AdminSummary{
		TotalClients:   len(clients),
		TotalProjects:  len(projects),
		ActiveProjects: counts[model.ProjectStatusInProgress],
		StatusCounts:   counts,
		TotalInvoiced:  stats.InvoiceTotal(invoices).String(),
		TotalPaid:      paid.String(),
		Outstanding:    outstanding.String(),
	}, nil
}

func (s *dashboardService) ClientSummary(ctx context.Context, actor *auth.Actor) (*ClientSummary, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListByClientID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.ListByClientID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	summary := &ClientSummary{
		TotalProjects: len(projects),
		UnpaidTotal:   stats.InvoiceTotal(invoices, model.InvoiceStatusSent, model.InvoiceStatusOverdue).String(),
	}

	for _, p := range projects {
		if p.Status == model.ProjectStatusInProgress {
			summary.ActiveProjects++
		}
		deliverables, err := s.deliverableRepo.ListByProjectID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		summary.Deliverables += len(deliverables)

		if summary.NextMilestone == nil {
			milestones, err := s.milestoneRepo.ListByProjectID(ctx, p.ID)
			if err != nil {
				return nil, err
			}
			summary.NextMilestone = stats.NextMilestone(milestones)
		}
	}

	return summary, nil
}
