package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
)

type customersRepo struct {
	db *sql.DB
}

func (r *customersRepo) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	c.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (name, address, email, created_at)
		VALUES (?, ?, ?, ?)`,
		c.Name, c.Address, c.Email, c.CreatedAt,
	)
	if err != nil {
		return domain.Customer{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Customer{}, err
	}

	return r.Get(ctx, id)
}

func (r *customersRepo) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address, email, created_at
		FROM customers ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Email, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customersRepo) Get(ctx context.Context, id int64) (domain.Customer, error) {
	var c domain.Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, address, email, created_at
		FROM customers WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Address, &c.Email, &c.CreatedAt)
	if err != nil {
		return domain.Customer{}, mapNotFound(err)
	}
	return c, nil
}
