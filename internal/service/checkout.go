// File: internal/service/checkout.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/model"
	"github.com/GavrielAldrich/PI-Inne/internal/store"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidQuantity = errors.New("quantity out of range")
)

// PlaceholderNote is written as buyer_note; the checkout form has no note field.
const PlaceholderNote = "-"

type CheckoutRequest struct {
	UserID    int
	ProductID int
	Quantity  int
	Size      string
}

// OrderTotal is price × quantity.
func OrderTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// Checkout reads the product and buyer and records the order snapshot in a
// single transaction. Any failure rolls back, so no partial order is left.
func Checkout(ctx context.Context, db database.DB, req CheckoutRequest) (*model.Order, error) {
	if req.Quantity <= 0 || req.Quantity > math.MaxInt32 {
		return nil, ErrInvalidQuantity
	}
	// 超出 SERIAL 範圍的 id 不可能存在
	if !store.ValidID(req.ProductID) {
		return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, req.ProductID)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("Checkout: begin: %w", err)
	}
	// no-op after Commit
	defer tx.Rollback(ctx)

	product, err := store.LockProductForShare(ctx, tx, req.ProductID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, req.ProductID)
	}
	if err != nil {
		return nil, fmt.Errorf("Checkout: %w", err)
	}

	user, err := store.GetUserByID(ctx, tx, req.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, req.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("Checkout: %w", err)
	}

	total := OrderTotal(product.Price, req.Quantity)
	if total.GreaterThan(store.MaxTotal) {
		return nil, fmt.Errorf("%w: total %s", ErrInvalidQuantity, total)
	}

	order, err := store.CreateOrder(ctx, tx, &model.Order{
		Category:      product.Category,
		ProductName:   product.Name,
		Quantity:      req.Quantity,
		TotalPrice:    total,
		BuyerFullname: user.Fullname,
		BuyerEmail:    user.Email,
		BuyerAddress:  user.Address,
		BuyerNote:     PlaceholderNote,
		Size:          req.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("Checkout: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("Checkout: commit: %w", err)
	}
	return order, nil
}
