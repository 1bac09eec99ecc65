package store

import (
	"context"

	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/model"
)

const productColumns = `id, name, description, price, image, category, created_at`

func scanProduct(row scanner) (*model.Product, error) {
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Image,
		&p.Category,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func ListProducts(ctx context.Context, db database.Querier) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT `+productColumns+`
		 FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, wrap("ListProducts", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, wrap("ListProducts", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListProducts", err)
	}
	return products, nil
}

func GetProductByID(ctx context.Context, db database.Querier, productID int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT `+productColumns+`
		 FROM products WHERE id = $1`,
		productID,
	)
	p, err := scanProduct(row)
	if err != nil {
		return nil, wrap("GetProductByID", err)
	}
	return p, nil
}

// LockProductForShare reads a product inside a transaction and holds a share
// lock on the row until the transaction ends, so it cannot change or vanish
// while an order is being recorded from it.
func LockProductForShare(ctx context.Context, tx database.Querier, productID int) (*model.Product, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+productColumns+`
		 FROM products WHERE id = $1
		 FOR SHARE`,
		productID,
	)
	p, err := scanProduct(row)
	if err != nil {
		return nil, wrap("LockProductForShare", err)
	}
	return p, nil
}

func CreateProduct(ctx context.Context, db database.Querier, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, image, category)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		p.Name,
		p.Description,
		p.Price,
		p.Image,
		p.Category,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, wrap("CreateProduct", err)
	}
	return p, nil
}

func UpdateProduct(ctx context.Context, db database.Querier, p *model.Product) error {
	tag, err := db.Exec(ctx,
		`UPDATE products
		 SET name = $1, description = $2, price = $3, image = $4, category = $5
		 WHERE id = $6`,
		p.Name,
		p.Description,
		p.Price,
		p.Image,
		p.Category,
		p.ID,
	)
	if err != nil {
		return wrap("UpdateProduct", err)
	}
	if tag.RowsAffected() == 0 {
		return wrap("UpdateProduct", ErrNotFound)
	}
	return nil
}

func DeleteProduct(ctx context.Context, db database.Querier, productID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		productID,
	)
	if err != nil {
		return wrap("DeleteProduct", err)
	}
	if tag.RowsAffected() == 0 {
		return wrap("DeleteProduct", ErrNotFound)
	}
	return nil
}
