package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lollyshoppe/internal/model"
)

func TestInvoiceRepository_MarkPaid(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()
	client := seedClient(t, db)

	invoice := &model.Invoice{
		InvoiceNumber: "INV-0001",
		Amount:        decimal.RequireFromString("500.00"),
		Status:        model.InvoiceStatusSent,
		ClientID:      client.ID,
	}
	require.NoError(t, repo.Create(ctx, invoice))

	paidAt := time.Now().UTC().Truncate(time.Millisecond)
	paid, err := repo.MarkPaid(ctx, invoice.ID, paidAt)
	assert.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	// Restamping with the identical timestamp writes identical values; the
	// invoice must still come back, not a not-found.
	again, err := repo.MarkPaid(ctx, invoice.ID, paidAt)
	assert.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, again.Status)
	require.NotNil(t, again.PaidAt)

	_, err = repo.MarkPaid(ctx, uuid.New(), paidAt)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInvoiceRepository_ListByClientID(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()
	client := seedClient(t, db)
	other := seedClient(t, db)

	mine := &model.Invoice{
		InvoiceNumber: "INV-0001",
		Amount:        decimal.RequireFromString("100"),
		Status:        model.InvoiceStatusSent,
		ClientID:      client.ID,
	}
	theirs := &model.Invoice{
		InvoiceNumber: "INV-0002",
		Amount:        decimal.RequireFromString("200"),
		Status:        model.InvoiceStatusSent,
		ClientID:      other.ID,
	}
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, theirs))

	got, err := repo.ListByClientID(ctx, client.ID)
	assert.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "INV-0001", got[0].InvoiceNumber)
}
