package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Milestone is a checkpoint inside a project. A non-nil CompletedAt means
// the milestone is done; Order sequences milestones for display within
// their project only.
type Milestone struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string         `json:"title" gorm:"size:100;not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Order       int            `json:"order" gorm:"column:display_order;not null;default:0"`
	ProjectID   uuid.UUID      `json:"project_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project *Project `json:"-" gorm:"foreignKey:ProjectID"`
}

// Completed reports whether the milestone has been marked done.
func (m *Milestone) Completed() bool {
	return m.CompletedAt != nil
}

// BeforeCreate sets UUID before creating the record.
func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
