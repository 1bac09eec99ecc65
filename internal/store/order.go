package store

import (
	"context"

	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/model"
)

func CreateOrder(ctx context.Context, db database.Querier, o *model.Order) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO orders (category, product_name, quantity, total_price,
		                     buyer_fullname, buyer_email, buyer_address, buyer_note, size)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		o.Category,
		o.ProductName,
		o.Quantity,
		o.TotalPrice,
		o.BuyerFullname,
		o.BuyerEmail,
		o.BuyerAddress,
		o.BuyerNote,
		o.Size,
	)
	if err := row.Scan(&o.ID, &o.CreatedAt); err != nil {
		return nil, wrap("CreateOrder", err)
	}
	return o, nil
}

// ListOrders returns every order, newest first.
func ListOrders(ctx context.Context, db database.Querier) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT id, category, product_name, quantity, total_price,
		        buyer_fullname, buyer_email, buyer_address, buyer_note, size, created_at
		 FROM orders
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, wrap("ListOrders", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID,
			&o.Category,
			&o.ProductName,
			&o.Quantity,
			&o.TotalPrice,
			&o.BuyerFullname,
			&o.BuyerEmail,
			&o.BuyerAddress,
			&o.BuyerNote,
			&o.Size,
			&o.CreatedAt,
		); err != nil {
			return nil, wrap("ListOrders", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListOrders", err)
	}
	return orders, nil
}

func DeleteOrder(ctx context.Context, db database.Querier, orderID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM orders WHERE id = $1`,
		orderID,
	)
	if err != nil {
		return wrap("DeleteOrder", err)
	}
	if tag.RowsAffected() == 0 {
		return wrap("DeleteOrder", ErrNotFound)
	}
	return nil
}
