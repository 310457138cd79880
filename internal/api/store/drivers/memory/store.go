// Package memory implements store.Store on in-process slices. Data does not
// survive a restart and ids reset with the process; within a process
// lifetime ids are unique and never reused.
package memory

import (
	"context"
	"sync"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
	"github.com/fluxfinance/fluxfinance/internal/api/store"
)

type Store struct {
	invoices  *invoicesRepo
	customers *customersRepo
}

func NewStore() *Store {
	return &Store{
		invoices:  &invoicesRepo{nextID: 1},
		customers: &customersRepo{nextID: 1},
	}
}

func (s *Store) Invoices() store.Invoices   { return s.invoices }
func (s *Store) Customers() store.Customers { return s.customers }

func (s *Store) Close() error { return nil }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

type invoicesRepo struct {
	mu       sync.Mutex
	nextID   int64
	invoices []domain.Invoice
}

type customersRepo struct {
	mu        sync.Mutex
	nextID    int64
	customers []domain.Customer
}
