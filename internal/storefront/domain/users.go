package domain

import "github.com/shopspring/decimal"

type User struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Balance  decimal.Decimal `json:"balance"`
}

// ChestItem is an item from a user's chest. Attributes beyond the id are owned by the
// backend and passed through untouched.
type ChestItem struct {
	ID         string         `json:"id"`
	Attributes map[string]any `json:"-"`
}

type Website struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}
