package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lollyshoppe/internal/model"
)

// DeliverableRepository defines deliverable persistence operations.
type DeliverableRepository interface {
	Create(ctx context.Context, deliverable *model.Deliverable) error
	Update(ctx context.Context, deliverable *model.Deliverable) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Deliverable, error)
	ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Deliverable, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type deliverableRepository struct {
	db *gorm.DB
}

// NewDeliverableRepository creates a new deliverable repository.
func NewDeliverableRepository(db *gorm.DB) DeliverableRepository {
	return &deliverableRepository{db: db}
}

func (r *deliverableRepository) Create(ctx context.Context, deliverable *model.Deliverable) error {
	return r.db.WithContext(ctx).Create(deliverable).Error
}

func (r *deliverableRepository) Update(ctx context.Context, deliverable *model.Deliverable) error {
	return r.db.WithContext(ctx).Save(deliverable).Error
}

func (r *deliverableRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Deliverable, error) {
	var deliverable model.Deliverable
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&deliverable).Error; err != nil {
		return nil, err
	}
	return &deliverable, nil
}

func (r *deliverableRepository) ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Deliverable, error) {
	var deliverables []model.Deliverable
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&deliverables).Error; err != nil {
		return nil, err
	}
	return deliverables, nil
}

func (r *deliverableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Deliverable{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
