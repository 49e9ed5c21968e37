package domain

import "time"

// ContactRecord is an append-only contact form submission. Records are never
// mutated or deleted once stored.
type ContactRecord struct {
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// Order is a server-side record of a submitted cart.
type Order struct {
	ID        string     `json:"order_id"`
	Items     []LineItem `json:"items"`
	Subtotal  int64      `json:"subtotal"`
	CreatedAt time.Time  `json:"created_at"`
}
