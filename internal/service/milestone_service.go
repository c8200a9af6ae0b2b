package service

import (
	"context"
	"errors"
	"fmt"
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

// MilestoneService handles milestone operations.
type MilestoneService interface {
	Create(ctx context.Context, actor *auth.Actor, payload *validation.MilestonePayload) (*model.Milestone, error)
	Update(ctx context.Context, actor *auth.Actor, id uuid.UUID, payload *validation.MilestonePayload) (*model.Milestone, error)
	Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID) error
	Get(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*model.Milestone, error)
	ListByProject(ctx context.Context, actor *auth.Actor, projectID uuid.UUID) ([]model.Milestone, error)
	ToggleComplete(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*model.Milestone, error)
	Reorder(ctx context.Context, actor *auth.Actor, projectID uuid.UUID, ids []uuid.UUID) error
}

type milestoneService struct {
	repo        repository.MilestoneRepository
	projectRepo repository.ProjectRepository
	cache       *cache.Client
}

// NewMilestoneService creates a new milestone service.
func NewMilestoneService(repo repository.MilestoneRepository, projectRepo repository.ProjectRepository, cache *cache.Client) MilestoneService {
	return &milestoneService{repo: repo, projectRepo: projectRepo, cache: cache}
}

func (s *milestoneService) Create(ctx context.Context, actor *auth.Actor, payload *validation.MilestonePayload) (*model.Milestone, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	projectID := payload.ProjectUUID()
	if _, err := s.findProject(ctx, projectID); err != nil {
		return nil, err
	}

	milestone := &model.Milestone{
		Title:       payload.Title,
		Description: payload.Description,
		DueDate:     payload.DueTime(),
		Order:       payload.Order,
		ProjectID:   projectID,
	}
	if err := s.repo.Create(ctx, milestone); err != nil {
		return nil, fmt.Errorf("create milestone: %w", err)
	}

	s.invalidate(ctx, projectID)
	return milestone, nil
}

func (s *milestoneService) Update(ctx context.Context, actor *auth.Actor, id uuid.UUID, payload *validation.MilestonePayload) (*model.Milestone, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	milestone, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	projectID := payload.ProjectUUID()
	if _, err := s.findProject(ctx, projectID); err != nil {
		return nil, err
	}

	previousProjectID := milestone.ProjectID
	milestone.Title = payload.Title
	milestone.Description = payload.Description
	milestone.DueDate = payload.DueTime()
	milestone.Order = payload.Order
	milestone.ProjectID = projectID

	if err := s.repo.Update(ctx, milestone); err != nil {
		return nil, fmt.Errorf("update milestone: %w", err)
	}

	// Re-parenting leaves the old project's cached detail stale as well.
	if previousProjectID != projectID {
		s.invalidate(ctx, previousProjectID)
	}
	s.invalidate(ctx, projectID)
	return milestone, nil
}

func (s *milestoneService) Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	milestone, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrMilestoneNotFound
		}
		return fmt.Errorf("delete milestone: %w", err)
	}

	s.invalidate(ctx, milestone.ProjectID)
	return nil
}

func (s *milestoneService) Get(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*model.Milestone, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	milestone, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeRead(ctx, actor, milestone.ProjectID); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *milestoneService) ListByProject(ctx context.Context, actor *auth.Actor, projectID uuid.UUID) ([]model.Milestone, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.authorizeRead(ctx, actor, projectID); err != nil {
		return nil, err
	}
	return s.repo.ListByProjectID(ctx, projectID)
}

// ToggleComplete flips completion: a completed milestone becomes incomplete
// and vice versa. The flip happens in one conditional write at the storage
// layer.
func (s *milestoneService) ToggleComplete(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*model.Milestone, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	milestone, err := s.repo.ToggleComplete(ctx, id, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("toggle milestone: %w", err)
	}

	s.invalidate(ctx, milestone.ProjectID)
	return milestone, nil
}

// Reorder assigns display order by position. All-or-nothing: an id outside
// the project fails the whole batch.
func (s *milestoneService) Reorder(ctx context.Context, actor *auth.Actor, projectID uuid.UUID, ids []uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if _, err := s.findProject(ctx, projectID); err != nil {
		return err
	}

	if err := s.repo.Reorder(ctx, projectID, ids); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrMilestoneNotFound
		}
		return fmt.Errorf("reorder milestones: %w", err)
	}

	s.invalidate(ctx, projectID)
	return nil
}

func (s *milestoneService) find(ctx context.Context, id uuid.UUID) (*model.Milestone, error) {
	milestone, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrMilestoneNotFound
		}
		return nil, err
	}
	return milestone, nil
}

func (s *milestoneService) findProject(ctx context.Context, projectID uuid.UUID) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// authorizeRead allows admins through and clients only when they own the
// parent project.
func (s *milestoneService) authorizeRead(ctx context.Context, actor *auth.Actor, projectID uuid.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return err
	}
	return requireAdminOrOwner(actor, project.ClientID)
}

func (s *milestoneService) invalidate(ctx context.Context, projectID uuid.UUID) {
	s.cache.Invalidate(ctx, cache.TopicProjectDetail(projectID.String()), cache.TopicDashboard)
}
