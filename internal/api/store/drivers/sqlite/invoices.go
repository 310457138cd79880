package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
)

type invoicesRepo struct {
	db *sql.DB
}

const invoiceColumns = `id, date, description, quantity, payment_method, currency,
	invoice_number, vat_percentage, price, subtotal, vat_amount, total_amount, created_at`

func (r *invoicesRepo) Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	inv.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO invoices (
			date, description, quantity, payment_method, currency,
			invoice_number, vat_percentage, price, subtotal, vat_amount,
			total_amount, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.Date, inv.Description, inv.Quantity, inv.PaymentMethod, inv.Currency,
		inv.InvoiceNumber, inv.VatPercentage, inv.Price, inv.Subtotal, inv.VatAmount,
		inv.TotalAmount, inv.CreatedAt,
	)
	if err != nil {
		return domain.Invoice{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Invoice{}, err
	}

	return r.Get(ctx, id)
}

func (r *invoicesRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *invoicesRepo) Get(ctx context.Context, id int64) (domain.Invoice, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id)

	inv, err := scanInvoice(row)
	if err != nil {
		return domain.Invoice{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invoicesRepo) Delete(ctx context.Context, id int64) (domain.Invoice, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Invoice{}, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		return domain.Invoice{}, mapNotFound(err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id); err != nil {
		return domain.Invoice{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Invoice{}, err
	}
	return inv, nil
}

func (r *invoicesRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count)
	return count, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInvoice(s scanner) (domain.Invoice, error) {
	var inv domain.Invoice
	err := s.Scan(
		&inv.ID, &inv.Date, &inv.Description, &inv.Quantity, &inv.PaymentMethod,
		&inv.Currency, &inv.InvoiceNumber, &inv.VatPercentage, &inv.Price,
		&inv.Subtotal, &inv.VatAmount, &inv.TotalAmount, &inv.CreatedAt,
	)
	return inv, err
}
