package validation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ProjectPayload is the raw project form. Optional fields submitted as empty
// strings are treated as absent.
type ProjectPayload struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=10,max=5000"`
	Status      string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS REVIEW COMPLETED CANCELLED"`
	Budget      string `json:"budget" validate:"omitempty,money"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	ClientID    string `json:"client_id" validate:"required,uuid"`
}

// MilestonePayload is the raw milestone form.
type MilestonePayload struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	DueDate     string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Order       int    `json:"order" validate:"gte=0"`
	ProjectID   string `json:"project_id" validate:"required,uuid"`
}

// DeliverablePayload is the raw deliverable form.
type DeliverablePayload struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	FileURL     string `json:"file_url" validate:"omitempty,url"`
	ProjectID   string `json:"project_id" validate:"required,uuid"`
}

// InvoicePayload is the raw invoice form. InvoiceNumber may be left empty,
// in which case the mutation layer generates one.
type InvoicePayload struct {
	InvoiceNumber string `json:"invoice_number" validate:"omitempty,max=50"`
	Amount        string `json:"amount" validate:"required,money"`
	Status        string `json:"status" validate:"required,oneof=DRAFT SENT PAID OVERDUE CANCELLED"`
	DueDate       string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	ClientID      string `json:"client_id" validate:"required,uuid"`
	ProjectID     string `json:"project_id" validate:"omitempty,uuid"`
}

// BudgetDecimal returns the parsed budget, or nil when absent. Call only
// after validation; a malformed value would have been rejected already.
func (p *ProjectPayload) BudgetDecimal() *decimal.Decimal {
	return optionalDecimal(p.Budget)
}

// StartTime returns the parsed start date, or nil when absent.
func (p *ProjectPayload) StartTime() *time.Time {
	return optionalDate(p.StartDate)
}

// EndTime returns the parsed end date, or nil when absent.
func (p *ProjectPayload) EndTime() *time.Time {
	return optionalDate(p.EndDate)
}

// ClientUUID returns the parsed owning-client id.
func (p *ProjectPayload) ClientUUID() uuid.UUID {
	return uuid.MustParse(p.ClientID)
}

// DueTime returns the parsed due date, or nil when absent.
func (p *MilestonePayload) DueTime() *time.Time {
	return optionalDate(p.DueDate)
}

// ProjectUUID returns the parsed owning-project id.
func (p *MilestonePayload) ProjectUUID() uuid.UUID {
	return uuid.MustParse(p.ProjectID)
}

// FileURLPtr returns the file URL, or nil when absent.
func (p *DeliverablePayload) FileURLPtr() *string {
	if p.FileURL == "" {
		return nil
	}
	url := p.FileURL
	return &url
}

// ProjectUUID returns the parsed owning-project id.
func (p *DeliverablePayload) ProjectUUID() uuid.UUID {
	return uuid.MustParse(p.ProjectID)
}

// AmountDecimal returns the parsed invoice amount.
func (p *InvoicePayload) AmountDecimal() decimal.Decimal {
	d, _ := decimal.NewFromString(p.Amount)
	return d
}

// DueTime returns the parsed due date, or nil when absent.
func (p *InvoicePayload) DueTime() *time.Time {
	return optionalDate(p.DueDate)
}

// ClientUUID returns the parsed owning-client id.
func (p *InvoicePayload) ClientUUID() uuid.UUID {
	return uuid.MustParse(p.ClientID)
}

// ProjectUUID returns the parsed linked-project id, or nil when the invoice
// is not tied to a project.
func (p *InvoicePayload) ProjectUUID() *uuid.UUID {
	if p.ProjectID == "" {
		return nil
	}
	id := uuid.MustParse(p.ProjectID)
	return &id
}

func optionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func optionalDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
