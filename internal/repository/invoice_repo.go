package repository

import (
	"context"

	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Insert writes a fully-populated invoice row.
func (r *InvoiceRepository) Insert(ctx context.Context, inv *models.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

// UpdateFields overwrites customer_id, amount and status on the row matching
// id. The date column is never touched. A missing id affects zero rows and is
// not an error.
func (r *InvoiceRepository) UpdateFields(ctx context.Context, id, customerID string, amountCents int64, status models.InvoiceStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amountCents,
			"status":      status,
		}).Error
}

// DeleteByID removes the row matching id, if any.
func (r *InvoiceRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id).Error
}

// List returns all invoices, newest first.
func (r *InvoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&invoices).Error
	return invoices, err
}
