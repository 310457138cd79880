package app

import (
	"context"
	"fmt"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
)

// sampleInvoices match the demo data the UI expects on a fresh install.
var sampleInvoices = []domain.InvoiceInput{
	{
		Date:          "2023-01-15",
		Description:   "Web development services",
		Quantity:      domain.NewNumber(3),
		PaymentMethod: "credit card",
		Currency:      "USD",
		InvoiceNumber: "INV-001",
		VatPercentage: domain.NewNumber(20),
		Price:         domain.NewNumber(75),
	},
	{
		Date:          "2023-02-20",
		Description:   "Software license",
		Quantity:      domain.NewNumber(1),
		PaymentMethod: "bank transfer",
		Currency:      "USD",
		InvoiceNumber: "INV-002",
		VatPercentage: domain.NewNumber(20),
		Price:         domain.NewNumber(299),
	},
	{
		Date:          "2023-03-10",
		Description:   "Consulting services",
		Quantity:      domain.NewNumber(5),
		PaymentMethod: "bank transfer",
		Currency:      "USD",
		InvoiceNumber: "INV-003",
		VatPercentage: domain.NewNumber(20),
		Price:         domain.NewNumber(150),
	},
}

// seedSampleData inserts the demo invoices once, only into an empty store.
func (app *Application) seedSampleData(ctx context.Context) error {
	if !app.cfg.SeedSample {
		return nil
	}

	count, err := app.db.Invoices().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count invoices: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, in := range sampleInvoices {
		if _, err := app.invoiceService.Create(ctx, in); err != nil {
			return fmt.Errorf("failed to seed invoice %s: %w", in.InvoiceNumber, err)
		}
	}

	app.logger.Info("seeded sample invoices", "count", len(sampleInvoices))
	return nil
}
