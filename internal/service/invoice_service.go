package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lollyshoppe/internal/auth"
	"lollyshoppe/internal/cache"
	errs "lollyshoppe/internal/errors"
	"lollyshoppe/internal/model"
	"lollyshoppe/internal/repository"
	"lollyshoppe/internal/validation"
)

// InvoiceService handles invoice operations.
type InvoiceService interface {
	Create(ctx context.Context, actor *auth.Actor, payload *validation.InvoicePayload) (*model.Invoice, error)
	Update(ctx context.Context, actor *auth.Actor, id uuid.UUID, payload *validation.InvoicePayload) (*model.Invoice, error)
	Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID) error
	Get(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*model.Invoice, error)
	List(ctx context.Context, actor *auth.Actor) ([]model.Invoice, error)
	ListByClient(ctx context.Context, actor *auth.Actor, clientID uuid.UUID) ([]model.Invoice, error)
	MarkAsPaid(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*model.Invoice, error)
}

type invoiceService struct {
	repo     repository.InvoiceRepository
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(repo repository.InvoiceRepository, userRepo repository.UserRepository, cache *cache.Client) InvoiceService {
	return &invoiceService{repo: repo, userRepo: userRepo, cache: cache}
}

func (s *invoiceService) Create(ctx context.Context, actor *auth.Actor, payload *validation.InvoicePayload) (*model.Invoice, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	clientID := payload.ClientUUID()
	if err := s.checkClient(ctx, clientID); err != nil {
		return nil, err
	}

	number := payload.InvoiceNumber
	if number == "" {
		number = generateInvoiceNumber()
	}

	invoice := &model.Invoice{
		InvoiceNumber: number,
		Amount:        payload.AmountDecimal(),
		Status:        model.InvoiceStatus(payload.Status),
		DueDate:       payload.DueTime(),
		ClientID:      clientID,
		ProjectID:     payload.ProjectUUID(),
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	s.cache.Invalidate(ctx, cache.TopicInvoicesList, cache.TopicDashboard)
	return invoice, nil
}

// Update replaces every form field. PaidAt is untouched here; only the
// mark-as-paid transition writes it.
func (s *invoiceService) Update(ctx context.Context, actor *auth.Actor, id uuid.UUID, payload *validation.InvoicePayload) (*model.Invoice, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	invoice, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	clientID := payload.ClientUUID()
	if err := s.checkClient(ctx, clientID); err != nil {
		return nil, err
	}

	number := payload.InvoiceNumber
	if number == "" {
		number = invoice.InvoiceNumber
	}

	invoice.InvoiceNumber = number
	invoice.Amount = payload.AmountDecimal()
	invoice.Status = model.InvoiceStatus(payload.Status)
	invoice.DueDate = payload.DueTime()
	invoice.ClientID = clientID
	invoice.ProjectID = payload.ProjectUUID()
	invoice.Client = nil
	invoice.Project = nil

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}

	s.cache.Invalidate(ctx, cache.TopicInvoicesList, cache.TopicInvoiceDetail(id.String()), cache.TopicDashboard)
	return invoice, nil
}

func (s *invoiceService) Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrInvoiceNotFound
		}
		return fmt.Errorf("delete invoice: %w", err)
	}

	s.cache.Invalidate(ctx, cache.TopicInvoicesList, cache.TopicInvoiceDetail(id.String()), cache.TopicDashboard)
	return nil
}

func (s *invoiceService) Get(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*model.Invoice, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	invoice, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireAdminOrOwner(actor, invoice.ClientID); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) List(ctx context.Context, actor *auth.Actor) ([]model.Invoice, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *invoiceService) ListByClient(ctx context.Context, actor *auth.Actor, clientID uuid.UUID) ([]model.Invoice, error) {
	if err := requireAdminOrOwner(actor, clientID); err != nil {
		return nil, err
	}
	return s.repo.ListByClientID(ctx, clientID)
}

// MarkAsPaid stamps the invoice PAID regardless of its prior status; each
// call advances the paid timestamp. Repeated calls are idempotent on status.
func (s *invoiceService) MarkAsPaid(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*model.Invoice, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	invoice, err := s.repo.MarkPaid(ctx, id, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("mark invoice paid: %w", err)
	}

	s.cache.Invalidate(ctx, cache.TopicInvoicesList, cache.TopicInvoiceDetail(id.String()), cache.TopicDashboard)
	return invoice, nil
}

func (s *invoiceService) find(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrInvoiceNotFound
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) checkClient(ctx context.Context, clientID uuid.UUID) error {
	client, err := s.userRepo.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrUserNotFound
		}
		return err
	}
	if client.Role != model.RoleClient {
		return errs.ErrClientRequired
	}
	return nil
}

// generateInvoiceNumber produces a human-readable number for invoices
// created without one. Uniqueness is intended, not enforced.
func generateInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.New().String()[:8])
}
