package invoices

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"invoice-dashboard-backend/internal/forms"
	"invoice-dashboard-backend/internal/models"
)

type updateCall struct {
	id          string
	customerID  string
	amountCents int64
	status      models.InvoiceStatus
}

// fakeStore records every write the service issues.
type fakeStore struct {
	inserted  []*models.Invoice
	updated   []updateCall
	deleted   []string
	rows      []models.Invoice
	insertErr error
}

func (f *fakeStore) Insert(_ context.Context, inv *models.Invoice) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, inv)
	return nil
}

func (f *fakeStore) UpdateFields(_ context.Context, id, customerID string, amountCents int64, status models.InvoiceStatus) error {
	f.updated = append(f.updated, updateCall{id, customerID, amountCents, status})
	return nil
}

func (f *fakeStore) DeleteByID(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) List(_ context.Context) ([]models.Invoice, error) {
	return f.rows, nil
}

func TestCreateDerivesCentsAndDate(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	inv, err := svc.Create(context.Background(), forms.InvoiceInput{
		CustomerID: "c1",
		Amount:     42.50,
		Status:     models.InvoiceStatusPending,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(store.inserted))
	}
	if inv.Amount != 4250 {
		t.Fatalf("expected 4250 cents, got %d", inv.Amount)
	}
	if inv.Status != models.InvoiceStatusPending {
		t.Fatalf("expected status pending, got %s", inv.Status)
	}
	if inv.Date != time.Now().Format("2006-01-02") {
		t.Fatalf("expected today's date, got %s", inv.Date)
	}
	if _, err := uuid.Parse(inv.ID); err != nil {
		t.Fatalf("expected a uuid id, got %q", inv.ID)
	}
}

func TestCreateRoundsFractionalCents(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	inv, err := svc.Create(context.Background(), forms.InvoiceInput{
		CustomerID: "c1",
		Amount:     19.999,
		Status:     models.InvoiceStatusPaid,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Amount != 2000 {
		t.Fatalf("expected 2000 cents, got %d", inv.Amount)
	}
}

func TestCreatePropagatesStorageError(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("connection refused")}
	svc := NewService(store)

	if _, err := svc.Create(context.Background(), forms.InvoiceInput{
		CustomerID: "c1",
		Amount:     10,
		Status:     models.InvoiceStatusPaid,
	}); err == nil {
		t.Fatal("expected storage error to propagate")
	}
	if len(store.inserted) != 0 {
		t.Fatal("expected no recorded insert")
	}
}

func TestUpdateTouchesOnlyMutableFields(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	err := svc.Update(context.Background(), "inv1", forms.InvoiceInput{
		CustomerID: "c2",
		Amount:     10,
		Status:     models.InvoiceStatusPaid,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := updateCall{id: "inv1", customerID: "c2", amountCents: 1000, status: models.InvoiceStatusPaid}
	if len(store.updated) != 1 || store.updated[0] != want {
		t.Fatalf("got %+v, want %+v", store.updated, want)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	ctx := context.Background()
	if err := svc.Delete(ctx, "inv1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, "inv1"); err != nil {
		t.Fatalf("second delete must not fail: %v", err)
	}
	if len(store.deleted) != 2 {
		t.Fatalf("expected two delete calls, got %d", len(store.deleted))
	}
}
