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
)

const userCacheTTL = 5 * time.Minute

// UserService resolves external identities to local users and exposes user
// lookups.
type UserService interface {
	// Sync maps the externally-authenticated identity to a local user,
	// creating one with the CLIENT role on first sight. Idempotent per
	// subject id.
	Sync(ctx context.Context, identity *auth.Identity) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context, actor *auth.Actor) ([]model.User, error)
	ListClients(ctx context.Context, actor *auth.Actor) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) subjectCacheKey(subjectID string) string {
	return "user:subject:" + subjectID
}

// Sync runs on every authenticated request, so the subject-to-user mapping
// is cached. The unique index on subject_id settles the race between two
// concurrent first-time syncs: the loser's insert is rejected and it
// re-reads the winner's row.
func (s *userService) Sync(ctx context.Context, identity *auth.Identity) (*model.User, error) {
	if identity == nil || identity.SubjectID == "" {
		return nil, errs.ErrUnauthenticated
	}

	if data, _ := s.cache.Get(ctx, s.subjectCacheKey(identity.SubjectID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindBySubjectID(ctx, identity.SubjectID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find user by subject: %w", err)
		}

		user = &model.User{
			SubjectID: identity.SubjectID,
			Email:     identity.Email,
			FirstName: identity.FirstName,
			LastName:  identity.LastName,
			Role:      model.RoleClient,
		}
		if err := s.repo.Create(ctx, user); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, fmt.Errorf("create user: %w", err)
			}
			// Lost the first-sync race; the other request created the row.
			user, err = s.repo.FindBySubjectID(ctx, identity.SubjectID)
			if err != nil {
				return nil, fmt.Errorf("refetch user after duplicate: %w", err)
			}
		} else {
			s.cache.Invalidate(ctx, cache.TopicClientsList)
		}
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.subjectCacheKey(identity.SubjectID), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, cache.TopicUser(id.String())); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, cache.TopicUser(id.String()), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, actor *auth.Actor) ([]model.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *userService) ListClients(ctx context.Context, actor *auth.Actor) ([]model.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.ListByRole(ctx, model.RoleClient)
}
