package shop

import (
	"errors"
	"net/http"

	"github.com/GavrielAldrich/PI-Inne/internal/api"
	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/dto"
	"github.com/GavrielAldrich/PI-Inne/internal/service"
	"github.com/GavrielAldrich/PI-Inne/internal/session"

	"github.com/labstack/echo/v4"
)

var checkout = service.Checkout

// CheckoutHandler 建立訂單，商品與買家資料於同一交易中複製
// @Summary     結帳
// @Tags        orders
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       size      formData string true "尺寸"
// @Param       quantity  formData int    true "數量"
// @Param       productId formData int    true "商品 ID"
// @Success     303
// @Failure     400 {object} dto.ErrorResponse
// @Failure     404 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /checkout [post]
func CheckoutHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CheckoutRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid checkout data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid checkout data"})
		}

		ident := session.IdentityFrom(c)
		if ident == nil {
			return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		}

		_, err := checkout(c.Request().Context(), db, service.CheckoutRequest{
			UserID:    ident.UserID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Size:      req.Size,
		})
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Product not found"})
		case errors.Is(err, service.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		case errors.Is(err, service.ErrInvalidQuantity):
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid checkout data"})
		case err != nil:
			c.Logger().Errorf("checkout: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create order"})
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
