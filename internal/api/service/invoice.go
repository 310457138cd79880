package service

import (
	"context"
	"fmt"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
	"github.com/fluxfinance/fluxfinance/internal/api/store"
)

// InvoiceService validates invoice input, derives the money fields and
// drives the persistence layer.
type InvoiceService struct {
	Store store.Store
}

// requiredInvoiceFields fixes the validation order; the first missing field
// is the one reported.
var requiredInvoiceFields = []struct {
	name    string
	present func(domain.InvoiceInput) bool
}{
	{"date", func(in domain.InvoiceInput) bool { return in.Date != "" }},
	{"description", func(in domain.InvoiceInput) bool { return in.Description != "" }},
	{"quantity", func(in domain.InvoiceInput) bool { return in.Quantity.Present() }},
	{"paymentMethod", func(in domain.InvoiceInput) bool { return in.PaymentMethod != "" }},
	{"currency", func(in domain.InvoiceInput) bool { return in.Currency != "" }},
	{"invoiceNumber", func(in domain.InvoiceInput) bool { return in.InvoiceNumber != "" }},
	{"vatPercentage", func(in domain.InvoiceInput) bool { return in.VatPercentage.Present() }},
	{"price", func(in domain.InvoiceInput) bool { return in.Price.Present() }},
}

// Create validates the input, computes subtotal/VAT/total and persists the
// invoice. The store assigns id and createdAt.
func (s *InvoiceService) Create(ctx context.Context, in domain.InvoiceInput) (domain.Invoice, error) {
	for _, f := range requiredInvoiceFields {
		if !f.present(in) {
			return domain.Invoice{}, ValidationError(fmt.Sprintf("Missing required field: %s", f.name))
		}
	}

	if !in.Quantity.Valid() || in.Quantity.Float64() <= 0 {
		return domain.Invoice{}, ValidationError("Quantity must be a positive number")
	}
	if !in.Price.Valid() || in.Price.Float64() < 0 {
		return domain.Invoice{}, ValidationError("Price must be a non-negative number")
	}
	if !in.VatPercentage.Valid() || in.VatPercentage.Float64() < 0 {
		return domain.Invoice{}, ValidationError("VAT percentage must be a non-negative number")
	}

	quantity := in.Quantity.Float64()
	price := in.Price.Float64()
	vatPercentage := in.VatPercentage.Float64()
	subtotal, vatAmount, totalAmount := domain.ComputeTotals(quantity, price, vatPercentage)

	inv := domain.Invoice{
		Date:          in.Date,
		Description:   in.Description,
		Quantity:      quantity,
		PaymentMethod: in.PaymentMethod,
		Currency:      in.Currency,
		InvoiceNumber: in.InvoiceNumber,
		VatPercentage: vatPercentage,
		Price:         price,
		Subtotal:      subtotal,
		VatAmount:     vatAmount,
		TotalAmount:   totalAmount,
	}

	return s.Store.Invoices().Create(ctx, inv)
}

// List returns all invoices, newest first.
func (s *InvoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.Store.Invoices().List(ctx)
}

// Get returns the invoice with the given id or store.ErrNotFound.
func (s *InvoiceService) Get(ctx context.Context, id int64) (domain.Invoice, error) {
	return s.Store.Invoices().Get(ctx, id)
}

// Delete removes and returns the invoice with the given id, or
// store.ErrNotFound if no such record exists.
func (s *InvoiceService) Delete(ctx context.Context, id int64) (domain.Invoice, error) {
	return s.Store.Invoices().Delete(ctx, id)
}
