package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deliverable is a produced artifact handed over to the client. Files are
// not stored locally; FileURL points at an external location when present.
type Deliverable struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string         `json:"title" gorm:"size:100;not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	FileURL     *string        `json:"file_url,omitempty" gorm:"size:2048"`
	ProjectID   uuid.UUID      `json:"project_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project *Project `json:"-" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate sets UUID before creating the record.
func (d *Deliverable) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
