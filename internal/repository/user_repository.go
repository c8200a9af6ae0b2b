package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lollyshoppe/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindBySubjectID(ctx context.Context, subjectID string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByRole(ctx context.Context, role model.UserRole) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindBySubjectID(ctx context.Context, subjectID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("subject_id = ?", subjectID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role model.UserRole) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Where("role = ?", role).
		Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
