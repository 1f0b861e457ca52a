// Package model holds the GORM-specific structs mapped to database tables.
package model

// ProductModel is the GORM-specific struct for the 'products' table.
// Rows are written once by seeding and only ever read afterwards.
type ProductModel struct {
	ID          string  `gorm:"type:text;primaryKey"`
	Name        string  `gorm:"not null"`
	Description string
	Price       float64 `gorm:"not null"`
	Image       string
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
