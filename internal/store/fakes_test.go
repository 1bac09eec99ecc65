package store

import (
	"time"

	"github.com/GavrielAldrich/PI-Inne/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

/* ---------- 假實作 ---------- */

// fakeRow 依 dest 數量模擬各種 Scan：
// 8 → user、7 → product、2 → RETURNING id, created_at
type fakeRow struct {
	scanErr error
	user    *model.User
	product *model.Product
	id      int
	created time.Time
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 8:
		u := r.user
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Fullname
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.Username
		*dest[4].(*string) = u.PasswordHash
		*dest[5].(*string) = u.Address
		*dest[6].(*model.Role) = u.Role
		*dest[7].(*time.Time) = u.CreatedAt
	case 7:
		scanProductInto(r.product, dest)
	case 2:
		*dest[0].(*int) = r.id
		*dest[1].(*time.Time) = r.created
	default:
		panic("fakeRow.Scan: unexpected dest count")
	}
	return nil
}

func scanProductInto(p *model.Product, dest []any) {
	*dest[0].(*int) = p.ID
	*dest[1].(*string) = p.Name
	*dest[2].(*string) = p.Description
	*dest[3].(*decimal.Decimal) = p.Price
	*dest[4].(*string) = p.Image
	*dest[5].(*string) = p.Category
	*dest[6].(*time.Time) = p.CreatedAt
}

// fakeRows 模擬多筆查詢，scan 由呼叫端提供
type fakeRows struct {
	n       int
	idx     int
	scan    func(i int, dest []any)
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < r.n }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	r.scan(r.idx, dest)
	r.idx++
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }
