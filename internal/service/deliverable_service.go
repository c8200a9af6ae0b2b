package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lollyshoppe/internal/auth"
	"lollyshoppe/internal/cache"
	errs "lollyshoppe/internal/errors"
	"lollyshoppe/internal/model"
	"lollyshoppe/internal/repository"
	"lollyshoppe/internal/validation"
)

// DeliverableService handles deliverable operations.
type DeliverableService interface {
	Create(ctx context.Context, actor *auth.Actor, payload *validation.DeliverablePayload) (*model.Deliverable, error)
	Update(ctx context.Context, actor *auth.Actor, id uuid.UUID, payload *validation.DeliverablePayload) (*model.Deliverable, error)
	Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID) error
	Get(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*model.Deliverable, error)
	ListByProject(ctx context.Context, actor *auth.Actor, projectID uuid.UUID) ([]model.Deliverable, error)
}

type deliverableService struct {
	repo        repository.DeliverableRepository
	projectRepo repository.ProjectRepository
	cache       *cache.Client
}

// NewDeliverableService creates a new deliverable service.
func NewDeliverableService(repo repository.DeliverableRepository, projectRepo repository.ProjectRepository, cache *cache.Client) DeliverableService {
	return &deliverableService{repo: repo, projectRepo: projectRepo, cache: cache}
}

func (s *deliverableService) Create(ctx context.Context, actor *auth.Actor, payload *validation.DeliverablePayload) (*model.Deliverable, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	projectID := payload.ProjectUUID()
	if err := s.checkProject(ctx, projectID); err != nil {
		return nil, err
	}

	deliverable := &model.Deliverable{
		Title:       payload.Title,
		Description: payload.Description,
		FileURL:     payload.FileURLPtr(),
		ProjectID:   projectID,
	}
	if err := s.repo.Create(ctx, deliverable); err != nil {
		return nil, fmt.Errorf("create deliverable: %w", err)
	}

	s.invalidate(ctx, projectID)
	return deliverable, nil
}

func (s *deliverableService) Update(ctx context.Context, actor *auth.Actor, id uuid.UUID, payload *validation.DeliverablePayload) (*model.Deliverable, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	deliverable, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	projectID := payload.ProjectUUID()
	if err := s.checkProject(ctx, projectID); err != nil {
		return nil, err
	}

	previousProjectID := deliverable.ProjectID
	deliverable.Title = payload.Title
	deliverable.Description = payload.Description
	deliverable.FileURL = payload.FileURLPtr()
	deliverable.ProjectID = projectID

	if err := s.repo.Update(ctx, deliverable); err != nil {
		return nil, fmt.Errorf("update deliverable: %w", err)
	}

	// Re-parenting leaves the old project's cached detail stale as well.
	if previousProjectID != projectID {
		s.invalidate(ctx, previousProjectID)
	}
	s.invalidate(ctx, projectID)
	return deliverable, nil
}

func (s *deliverableService) Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	deliverable, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrDeliverableNotFound
		}
		return fmt.Errorf("delete deliverable: %w", err)
	}

	s.invalidate(ctx, deliverable.ProjectID)
	return nil
}

func (s *deliverableService) Get(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*model.Deliverable, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	deliverable, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeRead(ctx, actor, deliverable.ProjectID); err != nil {
		return nil, err
	}
	return deliverable, nil
}

func (s *deliverableService) ListByProject(ctx context.Context, actor *auth.Actor, projectID uuid.UUID) ([]model.Deliverable, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.authorizeRead(ctx, actor, projectID); err != nil {
		return nil, err
	}
	return s.repo.ListByProjectID(ctx, projectID)
}

func (s *deliverableService) find(ctx context.Context, id uuid.UUID) (*model.Deliverable, error) {
	deliverable, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDeliverableNotFound
		}
		return nil, err
	}
	return deliverable, nil
}

func (s *deliverableService) checkProject(ctx context.Context, projectID uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrProjectNotFound
		}
		return err
	}
	return nil
}

func (s *deliverableService) authorizeRead(ctx context.Context, actor *auth.Actor, projectID uuid.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrProjectNotFound
		}
		return err
	}
	return requireAdminOrOwner(actor, project.ClientID)
}

func (s *deliverableService) invalidate(ctx context.Context, projectID uuid.UUID) {
	s.cache.Invalidate(ctx, cache.TopicProjectDetail(projectID.String()), cache.TopicDashboard)
}
