package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/model"
	"github.com/GavrielAldrich/PI-Inne/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func restoreOrders() {
	listOrders = store.ListOrders
	deleteOrder = store.DeleteOrder
}

func TestOrdersHandler(t *testing.T) {
	t.Cleanup(restoreOrders)
	e := newEcho(t)

	listOrders = func(context.Context, database.Querier) ([]model.Order, error) {
		return []model.Order{{
			ID:            1,
			ProductName:   "Tas Rajut",
			Quantity:      3,
			TotalPrice:    decimal.NewFromInt(30000),
			BuyerFullname: "Siti",
			BuyerNote:     "-",
			CreatedAt:     time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		}}, nil
	}
	c, rec := getCtx(e)
	require.NoError(t, OrdersHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Tas Rajut")
	require.Contains(t, rec.Body.String(), "Rp 30.000")
	require.Contains(t, rec.Body.String(), `href="/deleteorder/1"`)

	listOrders = func(context.Context, database.Querier) ([]model.Order, error) {
		return nil, errors.New("db down")
	}
	c, rec = getCtx(e)
	require.NoError(t, OrdersHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDeleteOrderHandler(t *testing.T) {
	t.Cleanup(restoreOrders)
	e := newEcho(t)

	var deleted []int
	deleteOrder = func(_ context.Context, _ database.Querier, id int) error {
		switch id {
		case 5:
			deleted = append(deleted, id)
			return nil
		case 6:
			return errors.New("db down")
		}
		if id > store.MaxID {
			return errors.New("greater than maximum value for int4")
		}
		return fmt.Errorf("DeleteOrder: %w", store.ErrNotFound)
	}

	c, rec := getCtx(e, "orderId", "5")
	require.NoError(t, DeleteOrderHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/orderview", rec.Header().Get("Location"))
	require.Equal(t, []int{5}, deleted)

	for id, code := range map[string]int{"7": http.StatusNotFound, "x": http.StatusNotFound, "2147483648": http.StatusNotFound, "6": http.StatusInternalServerError} {
		c, rec = getCtx(e, "orderId", id)
		require.NoError(t, DeleteOrderHandler(&database.FakeDB{})(c))
		require.Equal(t, code, rec.Code, id)
	}
	require.Equal(t, []int{5}, deleted)
}
