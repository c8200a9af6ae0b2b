package service

import (
	"context"
	"encoding/json"
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

const projectCacheTTL = 5 * time.Minute

// ProjectService handles project operations.
type ProjectService interface {
	Create(ctx context.Context, actor *auth.Actor, payload *validation.ProjectPayload) (*model.Project, error)
	Update(ctx context.Context, actor *auth.Actor, id uuid.UUID, payload *validation.ProjectPayload) (*model.Project, error)
	Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID) error
	Get(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context, actor *auth.Actor) ([]model.Project, error)
	ListByClient(ctx context.Context, actor *auth.Actor, clientID uuid.UUID) ([]model.Project, error)
}

type projectService struct {
	repo     repository.ProjectRepository
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewProjectService creates a new project service.
func NewProjectService(repo repository.ProjectRepository, userRepo repository.UserRepository, cache *cache.Client) ProjectService {
	return &projectService{repo: repo, userRepo: userRepo, cache: cache}
}

func (s *projectService) Create(ctx context.Context, actor *auth.Actor, payload *validation.ProjectPayload) (*model.Project, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	clientID := payload.ClientUUID()
	if err := s.checkClient(ctx, clientID); err != nil {
		return nil, err
	}

	project := &model.Project{
		Title:       payload.Title,
		Description: payload.Description,
		Status:      model.ProjectStatus(payload.Status),
		Budget:      payload.BudgetDecimal(),
		StartDate:   payload.StartTime(),
		EndDate:     payload.EndTime(),
		ClientID:    clientID,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.cache.Invalidate(ctx, cache.TopicProjectsList, cache.TopicDashboard)
	return project, nil
}

// Update replaces every form field; it is a full replace, not a patch.
func (s *projectService) Update(ctx context.Context, actor *auth.Actor, id uuid.UUID, payload *validation.ProjectPayload) (*model.Project, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProjectNotFound
		}
		return nil, err
	}

	clientID := payload.ClientUUID()
	if err := s.checkClient(ctx, clientID); err != nil {
		return nil, err
	}

	project.Title = payload.Title
	project.Description = payload.Description
	project.Status = model.ProjectStatus(payload.Status)
	project.Budget = payload.BudgetDecimal()
	project.StartDate = payload.StartTime()
	project.EndDate = payload.EndTime()
	project.ClientID = clientID
	project.Client = nil

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.cache.Invalidate(ctx, cache.TopicProjectsList, cache.TopicProjectDetail(id.String()), cache.TopicDashboard)
	return project, nil
}

// Delete removes the project and cascades to its milestones and deliverables.
func (s *projectService) Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrProjectNotFound
		}
		return fmt.Errorf("delete project: %w", err)
	}

	s.cache.Invalidate(ctx, cache.TopicProjectsList, cache.TopicProjectDetail(id.String()), cache.TopicDashboard)
	return nil
}

// Get returns the project detail view with caching. Ownership is checked
// after the load so a client can only see their own projects.
func (s *projectService) Get(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*model.Project, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	if data, _ := s.cache.Get(ctx, cache.TopicProjectDetail(id.String())); data != nil {
		var cached model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			if err := requireAdminOrOwner(actor, cached.ClientID); err != nil {
				return nil, err
			}
			return &cached, nil
		}
	}

	project, err := s.repo.FindByIDWithChildren(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProjectNotFound
		}
		return nil, err
	}
	if err := requireAdminOrOwner(actor, project.ClientID); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(project); err == nil {
		_ = s.cache.Set(ctx, cache.TopicProjectDetail(id.String()), payload, projectCacheTTL)
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, actor *auth.Actor) ([]model.Project, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *projectService) ListByClient(ctx context.Context, actor *auth.Actor, clientID uuid.UUID) ([]model.Project, error) {
	if err := requireAdminOrOwner(actor, clientID); err != nil {
		return nil, err
	}
	return s.repo.ListByClientID(ctx, clientID)
}

// checkClient verifies the owning user exists and carries the CLIENT role.
func (s *projectService) checkClient(ctx context.Context, clientID uuid.UUID) error {
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
