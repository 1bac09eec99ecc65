package store

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// 對應資料表欄位型別：SERIAL/INTEGER 為 int4，金額為 NUMERIC
const MaxID = math.MaxInt32

var (
	// MaxPrice 為 products.price NUMERIC(12,2) 可存的最大值
	MaxPrice = decimal.RequireFromString("9999999999.99")
	// MaxTotal 為 orders.total_price NUMERIC(14,2) 可存的最大值
	MaxTotal = decimal.RequireFromString("999999999999.99")
)

// ValidID reports whether id can exist in a SERIAL column.
func ValidID(id int) bool { return id > 0 && id <= MaxID }

// ParseID parses a path id. Anything that cannot be a SERIAL value is rejected.
func ParseID(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n <= 0 {
		return 0, false
	}
	return int(n), true
}
