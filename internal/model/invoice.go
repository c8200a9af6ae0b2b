package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceStatus represents the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// Invoice bills a client, optionally against a project. The project link is
// a weak reference kept for display; an invoice survives independently of it.
// PaidAt is written only by the mark-as-paid transition.
type Invoice struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	InvoiceNumber string          `json:"invoice_number" gorm:"size:50;not null;index"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Status        InvoiceStatus   `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	ClientID      uuid.UUID       `json:"client_id" gorm:"type:char(36);not null;index"`
	ProjectID     *uuid.UUID      `json:"project_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Client  *User    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
