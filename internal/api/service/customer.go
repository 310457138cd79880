package service

import (
	"context"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
	"github.com/fluxfinance/fluxfinance/internal/api/store"
)

// CustomerService validates and stores customer records. Create-only.
type CustomerService struct {
	Store store.Store
}

// Create persists a customer. Name and email are required; one message
// covers either being missing. Address is optional.
func (s *CustomerService) Create(ctx context.Context, in domain.CustomerInput) (domain.Customer, error) {
	if in.Name == "" || in.Email == "" {
		return domain.Customer{}, ValidationError("Name and email are required fields")
	}

	c := domain.Customer{
		Name:    in.Name,
		Address: in.Address,
		Email:   in.Email,
	}
	return s.Store.Customers().Create(ctx, c)
}

// List returns all customers, newest first.
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.Store.Customers().List(ctx)
}

// Get returns the customer with the given id or store.ErrNotFound.
func (s *CustomerService) Get(ctx context.Context, id int64) (domain.Customer, error) {
	return s.Store.Customers().Get(ctx, id)
}
