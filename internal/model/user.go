package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole distinguishes agency staff from startup clients.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleClient UserRole = "CLIENT"
)

// User is the local record for an identity managed by the external provider.
// Exactly one User exists per external subject id; the unique index on
// SubjectID is what keeps the sync invariant true under concurrent first-time
// visits.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	SubjectID string    `json:"subject_id" gorm:"uniqueIndex;size:191;not null"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	FirstName string    `json:"first_name,omitempty" gorm:"size:100"`
	LastName  string    `json:"last_name,omitempty" gorm:"size:100"`
	Role      UserRole  `json:"role" gorm:"type:varchar(10);not null;default:'CLIENT';index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ClientID"`
	Invoices []Invoice `json:"invoices,omitempty" gorm:"foreignKey:ClientID"`
}

// IsAdmin reports whether the user may act on records they do not own.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
