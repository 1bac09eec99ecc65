// File: internal/model/order.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a snapshot taken at checkout. It holds copies of product and
// buyer fields, never references, so later edits do not reach it.
type Order struct {
	ID            int             `db:"id" json:"id"`
	Category      string          `db:"category" json:"category"`
	ProductName   string          `db:"product_name" json:"product_name"`
	Quantity      int             `db:"quantity" json:"quantity"`
	TotalPrice    decimal.Decimal `db:"total_price" json:"total_price"`
	BuyerFullname string          `db:"buyer_fullname" json:"buyer_fullname"`
	BuyerEmail    string          `db:"buyer_email" json:"buyer_email"`
	BuyerAddress  string          `db:"buyer_address" json:"buyer_address"`
	BuyerNote     string          `db:"buyer_note" json:"buyer_note"`
	Size          string          `db:"size" json:"size"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}
