package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle stage of a client project.
type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "PENDING"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusReview     ProjectStatus = "REVIEW"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusCancelled  ProjectStatus = "CANCELLED"
)

// Project is an MVP engagement owned by exactly one client. Deleting a
// project removes its milestones and deliverables with it.
type Project struct {
	ID          uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string           `json:"title" gorm:"size:100;not null"`
	Description string           `json:"description" gorm:"type:text;not null"`
	Status      ProjectStatus    `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Budget      *decimal.Decimal `json:"budget,omitempty" gorm:"type:decimal(20,2)"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	ClientID    uuid.UUID        `json:"client_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `json:"-" gorm:"index"`

	// Relations
	Client       *User         `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Milestones   []Milestone   `json:"milestones,omitempty" gorm:"foreignKey:ProjectID"`
	Deliverables []Deliverable `json:"deliverables,omitempty" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
