package memory

import (
	"context"
	"time"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
	"github.com/fluxfinance/fluxfinance/internal/api/store"
)

func (r *customersRepo) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	c.CreatedAt = time.Now().UTC()

	r.customers = append(r.customers, c)
	return c, nil
}

func (r *customersRepo) List(ctx context.Context) ([]domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Customer, 0, len(r.customers))
	for i := len(r.customers) - 1; i >= 0; i-- {
		out = append(out, r.customers[i])
	}
	return out, nil
}

func (r *customersRepo) Get(ctx context.Context, id int64) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, store.ErrNotFound
}
