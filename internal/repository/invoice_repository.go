package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lollyshoppe/internal/model"
)

// InvoiceRepository defines invoice persistence operations.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	Update(ctx context.Context, invoice *model.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	List(ctx context.Context) ([]model.Invoice, error)
	ListByClientID(ctx context.Context, clientID uuid.UUID) ([]model.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (*model.Invoice, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository.
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := r.db.WithContext(ctx).Preload("Client").Preload("Project").
		Where("id = ?", id).First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	if err := r.db.WithContext(ctx).Preload("Client").Preload("Project").
		Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) ListByClientID(ctx context.Context, clientID uuid.UUID) ([]model.Invoice, error) {
	var invoices []model.Invoice
	if err := r.db.WithContext(ctx).Preload("Project").
		Where("client_id = ?", clientID).
		Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Invoice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkPaid stamps the invoice PAID in one UPDATE. The transition is
// unconditional: paying an already-paid or cancelled invoice just restamps
// it. RowsAffected cannot signal not-found here because MySQL counts changed
// rows, and a restamp within the same millisecond changes nothing; the
// follow-up read is what surfaces a missing invoice.
func (r *invoiceRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (*model.Invoice, error) {
	res := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  model.InvoiceStatusPaid,
			"paid_at": paidAt,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	return r.FindByID(ctx, id)
}
