package store

import (
	"context"
	"errors"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
)

// ErrNotFound reports a lookup or delete against an id that does not exist.
var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers (memory, sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable; the store exclusively owns the canonical record collections and
// services only reach them through these operations.
type Store interface {
	Invoices() Invoices
	Customers() Customers

	// Close releases any underlying resources (no-op for memory).
	Close() error

	// Ping verifies the backing store is still reachable.
	Ping(ctx context.Context) error
}

type Invoices interface {
	// Create persists an invoice, assigning its id and creation timestamp.
	// The returned record is fully populated including derived fields.
	Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error)

	// List returns all invoices, newest first (descending id).
	List(ctx context.Context) ([]domain.Invoice, error)

	// Get returns the invoice with the given id or ErrNotFound.
	Get(ctx context.Context, id int64) (domain.Invoice, error)

	// Delete removes and returns the invoice with the given id, or
	// ErrNotFound leaving the collection unchanged.
	Delete(ctx context.Context, id int64) (domain.Invoice, error)

	// Count reports how many invoices exist. Used for seed-if-empty.
	Count(ctx context.Context) (int64, error)
}

type Customers interface {
	// Create persists a customer, assigning its id and creation timestamp.
	Create(ctx context.Context, c domain.Customer) (domain.Customer, error)

	// List returns all customers, newest first (descending id).
	List(ctx context.Context) ([]domain.Customer, error)

	// Get returns the customer with the given id or ErrNotFound.
	Get(ctx context.Context, id int64) (domain.Customer, error)
}
