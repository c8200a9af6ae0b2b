package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lollyshoppe/internal/model"
)

// MilestoneRepository defines milestone persistence operations.
type MilestoneRepository interface {
	Create(ctx context.Context, milestone *model.Milestone) error
	Update(ctx context.Context, milestone *model.Milestone) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Milestone, error)
	ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Milestone, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleComplete(ctx context.Context, id uuid.UUID, now time.Time) (*model.Milestone, error)
	Reorder(ctx context.Context, projectID uuid.UUID, ids []uuid.UUID) error
}

type milestoneRepository struct {
	db *gorm.DB
}

// NewMilestoneRepository creates a new milestone repository.
func NewMilestoneRepository(db *gorm.DB) MilestoneRepository {
	return &milestoneRepository{db: db}
}

func (r *milestoneRepository) Create(ctx context.Context, milestone *model.Milestone) error {
	return r.db.WithContext(ctx).Create(milestone).Error
}

func (r *milestoneRepository) Update(ctx context.Context, milestone *model.Milestone) error {
	return r.db.WithContext(ctx).Save(milestone).Error
}

func (r *milestoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Milestone, error) {
	var milestone model.Milestone
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&milestone).Error; err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (r *milestoneRepository) ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Milestone, error) {
	var milestones []model.Milestone
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).
		Order("display_order ASC").Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (r *milestoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Milestone{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ToggleComplete flips the completion timestamp in a single conditional
// UPDATE, so two concurrent toggles cannot both observe the same prior
// state.
func (r *milestoneRepository) ToggleComplete(ctx context.Context, id uuid.UUID, now time.Time) (*model.Milestone, error) {
	res := r.db.WithContext(ctx).Model(&model.Milestone{}).
		Where("id = ?", id).
		Update("completed_at", gorm.Expr("CASE WHEN completed_at IS NULL THEN ? ELSE NULL END", now))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

// Reorder assigns each milestone its position in ids. The whole batch runs
// in one transaction and every id must belong to the given project, so a
// bad id rolls back all assignments instead of leaving a half-reordered
// list or touching another project's milestones.
func (r *milestoneRepository) Reorder(ctx context.Context, projectID uuid.UUID, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			res := tx.Model(&model.Milestone{}).
				Where("id = ? AND project_id = ?", id, projectID).
				Update("display_order", position)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
