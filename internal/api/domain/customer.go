package domain

import "time"

// Customer is a stored customer record. Create-only: there is no update or
// delete flow.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerInput is the caller-supplied shape for creating a customer.
// Address is optional.
type CustomerInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}
