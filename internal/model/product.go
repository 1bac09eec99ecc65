// File: internal/model/product.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int             `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Image       string          `db:"image" json:"image"`
	Category    string          `db:"category" json:"category"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
