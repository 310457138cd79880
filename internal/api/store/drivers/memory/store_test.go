package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
	"github.com/fluxfinance/fluxfinance/internal/api/store"
	"github.com/stretchr/testify/require"
)

func testInvoice(n string) domain.Invoice {
	return domain.Invoice{
		Date:          "2025-05-10",
		Description:   "Office Supplies",
		Quantity:      3,
		PaymentMethod: "credit",
		Currency:      "USD",
		InvoiceNumber: n,
		VatPercentage: 20,
		Price:         75,
		Subtotal:      225,
		VatAmount:     45,
		TotalAmount:   270,
	}
}

func TestInvoiceCreateAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	s := NewStore()
	ctx := context.Background()

	a, err := s.Invoices().Create(ctx, testInvoice("INV-001"))
	require.NoError(t, err)
	b, err := s.Invoices().Create(ctx, testInvoice("INV-002"))
	require.NoError(t, err)

	require.EqualValues(t, 1, a.ID)
	require.EqualValues(t, 2, b.ID)
	require.False(t, a.CreatedAt.IsZero())
}

func TestInvoiceListNewestFirst(t *testing.T) {
	t.Parallel()

	s := NewStore()
	ctx := context.Background()

	for _, n := range []string{"INV-001", "INV-002", "INV-003"} {
		_, err := s.Invoices().Create(ctx, testInvoice(n))
		require.NoError(t, err)
	}

	all, err := s.Invoices().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "INV-003", all[0].InvoiceNumber)
	require.Equal(t, "INV-001", all[2].InvoiceNumber)
}

func TestInvoiceGetAndDelete(t *testing.T) {
	t.Parallel()

	s := NewStore()
	ctx := context.Background()

	created, err := s.Invoices().Create(ctx, testInvoice("INV-001"))
	require.NoError(t, err)

	got, err := s.Invoices().Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = s.Invoices().Get(ctx, 999)
	require.ErrorIs(t, err, store.ErrNotFound)

	deleted, err := s.Invoices().Delete(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, deleted)

	_, err = s.Invoices().Get(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Invoices().Delete(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestInvoiceIDsNeverReused(t *testing.T) {
	t.Parallel()

	s := NewStore()
	ctx := context.Background()

	a, err := s.Invoices().Create(ctx, testInvoice("INV-001"))
	require.NoError(t, err)
	_, err = s.Invoices().Delete(ctx, a.ID)
	require.NoError(t, err)

	b, err := s.Invoices().Create(ctx, testInvoice("INV-002"))
	require.NoError(t, err)
	require.Greater(t, b.ID, a.ID)
}

func TestInvoiceConcurrentCreatesDoNotCollide(t *testing.T) {
	t.Parallel()

	s := NewStore()
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	ids := make(chan int64, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv, err := s.Invoices().Create(ctx, testInvoice("INV-X"))
			require.NoError(t, err)
			ids <- inv.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers)
	for id := range ids {
		require.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	require.Len(t, seen, workers)
}

func TestCustomerCreateListGet(t *testing.T) {
	t.Parallel()

	s := NewStore()
	ctx := context.Background()

	created, err := s.Customers().Create(ctx, domain.Customer{
		Name:    "Acme Corp",
		Address: "1 Main St",
		Email:   "billing@acme.test",
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := s.Customers().Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = s.Customers().Get(ctx, 42)
	require.ErrorIs(t, err, store.ErrNotFound)

	second, err := s.Customers().Create(ctx, domain.Customer{Name: "Beta LLC", Email: "b@beta.test"})
	require.NoError(t, err)

	all, err := s.Customers().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID)
}
