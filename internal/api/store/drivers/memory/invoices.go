package memory

import (
	"context"
	"time"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
	"github.com/fluxfinance/fluxfinance/internal/api/store"
)

func (r *invoicesRepo) Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv.ID = r.nextID
	r.nextID++
	inv.CreatedAt = time.Now().UTC()

	r.invoices = append(r.invoices, inv)
	return inv, nil
}

func (r *invoicesRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Newest first, to match the sqlite driver's ORDER BY id DESC.
	out := make([]domain.Invoice, 0, len(r.invoices))
	for i := len(r.invoices) - 1; i >= 0; i-- {
		out = append(out, r.invoices[i])
	}
	return out, nil
}

func (r *invoicesRepo) Get(ctx context.Context, id int64) (domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return domain.Invoice{}, store.ErrNotFound
}

func (r *invoicesRepo) Delete(ctx context.Context, id int64) (domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, inv := range r.invoices {
		if inv.ID == id {
			r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
			return inv, nil
		}
	}
	return domain.Invoice{}, store.ErrNotFound
}

func (r *invoicesRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.invoices)), nil
}
