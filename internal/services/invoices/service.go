package invoices

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"invoice-dashboard-backend/internal/forms"
	"invoice-dashboard-backend/internal/models"
)

// Store is the persistence surface the service needs. InvoiceRepository
// satisfies it; tests swap in a recorder.
type Store interface {
	Insert(ctx context.Context, inv *models.Invoice) error
	UpdateFields(ctx context.Context, id, customerID string, amountCents int64, status models.InvoiceStatus) error
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Invoice, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create inserts a new invoice with a server-assigned id, the amount converted
// to cents, and the issue date stamped with the current day.
func (s *Service) Create(ctx context.Context, in forms.InvoiceInput) (*models.Invoice, error) {
	now := time.Now()
	inv := &models.Invoice{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Amount:     toCents(in.Amount),
		Status:     in.Status,
		Date:       now.Format("2006-01-02"),
		CreatedAt:  now,
	}
	if err := s.store.Insert(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Update overwrites customerId, amount and status on an existing invoice; the
// issue date stays as it was. Updating an id with no row is a no-op.
func (s *Service) Update(ctx context.Context, id string, in forms.InvoiceInput) error {
	return s.store.UpdateFields(ctx, id, in.CustomerID, toCents(in.Amount), in.Status)
}

// Delete removes the invoice. Deleting the same id twice ends in the same
// state as deleting it once.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}

// List returns the invoices backing the listing view.
func (s *Service) List(ctx context.Context) ([]models.Invoice, error) {
	return s.store.List(ctx)
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
