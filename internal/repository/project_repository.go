package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lollyshoppe/internal/model"
)

// ProjectRepository defines project persistence operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	FindByIDWithChildren(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	ListByClientID(ctx context.Context, clientID uuid.UUID) ([]model.Project, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Preload("Client").
		Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByIDWithChildren loads the project detail view: client, milestones in
// display order, deliverables newest first.
func (r *projectRepository) FindByIDWithChildren(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Deliverables", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Preload("Client").
		Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) ListByClientID(ctx context.Context, clientID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Where("client_id = ?", clientID).
		Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// DeleteCascade removes a project together with its milestones and
// deliverables in one transaction, so a partial failure leaves no orphans.
func (r *projectRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Project{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Milestone{}).Error; err != nil {
			return err
		}
		return tx.Where("project_id = ?", id).Delete(&model.Deliverable{}).Error
	})
}
