package admin

import (
	"errors"
	"net/http"

	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/store"
	"github.com/GavrielAldrich/PI-Inne/internal/web"

	"github.com/labstack/echo/v4"
)

var (
	listOrders  = store.ListOrders
	deleteOrder = store.DeleteOrder
)

// OrdersHandler lists every order, newest first.
func OrdersHandler(db database.Querier) echo.HandlerFunc {
	return func(c echo.Context) error {
		orders, err := listOrders(c.Request().Context(), db)
		if err != nil {
			c.Logger().Errorf("list orders: %v", err)
			return c.String(http.StatusInternalServerError, serverError)
		}
		p := web.NewPage(c, "Pesanan")
		p.Orders = orders
		return c.Render(http.StatusOK, "orderview", p)
	}
}

func DeleteOrderHandler(db database.Querier) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := store.ParseID(c.Param("orderId"))
		if !ok {
			return c.String(http.StatusNotFound, "Order not found")
		}
		err := deleteOrder(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.String(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			c.Logger().Errorf("delete order %d: %v", id, err)
			return c.String(http.StatusInternalServerError, serverError)
		}
		return c.Redirect(http.StatusFound, "/orderview")
	}
}
