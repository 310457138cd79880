package domain

import "time"

// Invoice is a stored invoice line. Subtotal, VatAmount and TotalAmount are
// always derived from Quantity, Price and VatPercentage at creation; they
// are never supplied by callers. Invoices are immutable once created.
type Invoice struct {
	ID            int64     `json:"id"`
	Date          string    `json:"date"`
	Description   string    `json:"description"`
	Quantity      float64   `json:"quantity"`
	PaymentMethod string    `json:"paymentMethod"`
	Currency      string    `json:"currency"`
	InvoiceNumber string    `json:"invoiceNumber"`
	VatPercentage float64   `json:"vatPercentage"`
	Price         float64   `json:"price"`
	Subtotal      float64   `json:"subtotal"`
	VatAmount     float64   `json:"vatAmount"`
	TotalAmount   float64   `json:"totalAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// InvoiceInput is the caller-supplied shape for creating an invoice.
// Numeric fields use Number so both JSON numbers and numeric strings are
// accepted, and so validation can tell missing from malformed.
type InvoiceInput struct {
	Date          string `json:"date"`
	Description   string `json:"description"`
	Quantity      Number `json:"quantity"`
	PaymentMethod string `json:"paymentMethod"`
	Currency      string `json:"currency"`
	InvoiceNumber string `json:"invoiceNumber"`
	VatPercentage Number `json:"vatPercentage"`
	Price         Number `json:"price"`
}

// ComputeTotals derives the subtotal, VAT amount and total for the given
// inputs. Plain float64 arithmetic, no rounding; callers tolerate
// floating-point results (3 x 50 at 10% VAT is exactly 165).
func ComputeTotals(quantity, price, vatPercentage float64) (subtotal, vatAmount, totalAmount float64) {
	subtotal = quantity * price
	vatAmount = subtotal * (vatPercentage / 100)
	totalAmount = subtotal + vatAmount
	return subtotal, vatAmount, totalAmount
}
