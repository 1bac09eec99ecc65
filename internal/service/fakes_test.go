package service

import (
	"time"

	"github.com/GavrielAldrich/PI-Inne/internal/model"

	"github.com/shopspring/decimal"
)

// fakeRow 依 dest 數量填入 user(8)、product(7) 或 RETURNING(2)
type fakeRow struct {
	err     error
	user    model.User
	product model.Product
	id      int
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	switch len(dest) {
	case 8:
		*dest[0].(*int) = r.user.ID
		*dest[1].(*string) = r.user.Fullname
		*dest[2].(*string) = r.user.Email
		*dest[3].(*string) = r.user.Username
		*dest[4].(*string) = r.user.PasswordHash
		*dest[5].(*string) = r.user.Address
		*dest[6].(*model.Role) = r.user.Role
		*dest[7].(*time.Time) = r.user.CreatedAt
	case 7:
		*dest[0].(*int) = r.product.ID
		*dest[1].(*string) = r.product.Name
		*dest[2].(*string) = r.product.Description
		*dest[3].(*decimal.Decimal) = r.product.Price
		*dest[4].(*string) = r.product.Image
		*dest[5].(*string) = r.product.Category
		*dest[6].(*time.Time) = r.product.CreatedAt
	case 2:
		*dest[0].(*int) = r.id
		*dest[1].(*time.Time) = time.Now()
	default:
		panic("fakeRow.Scan: unexpected dest count")
	}
	return nil
}
