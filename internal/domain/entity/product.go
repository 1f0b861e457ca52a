// Package entity contains the core business objects of the project.
package entity

// Product represents one purchasable catalog entry. The catalog is seeded once
// at first startup and never mutated afterwards.
type Product struct {
	ID          string  `json:"id"`          // Stable identifier assigned at seed time.
	Name        string  `json:"name"`        // Display name.
	Description string  `json:"description"` // Display description.
	Price       float64 `json:"price"`       // Non-negative decimal amount.
	Image       string  `json:"image"`       // Optional image reference, may be empty.
}
