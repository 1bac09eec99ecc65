// File: internal/handler/shop/shop.go
package shop

import (
	"context"
	"errors"
	"net/http"

	"github.com/GavrielAldrich/PI-Inne/internal/model"
	"github.com/GavrielAldrich/PI-Inne/internal/store"
	"github.com/GavrielAldrich/PI-Inne/internal/web"

	"github.com/labstack/echo/v4"
)

// Products 為商店頁面需要的讀取介面，由 catalog.Catalog 實作
type Products interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id int) (*model.Product, error)
}

func listPage(products Products, page, title string) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := products.List(c.Request().Context())
		if err != nil {
			c.Logger().Errorf("list products: %v", err)
			return c.String(http.StatusInternalServerError, "Internal Server Error")
		}
		p := web.NewPage(c, title)
		p.Products = list
		return c.Render(http.StatusOK, page, p)
	}
}

func HomeHandler(products Products) echo.HandlerFunc {
	return listPage(products, "index", "Beranda")
}

func ProdukHandler(products Products) echo.HandlerFunc {
	return listPage(products, "produk", "Produk")
}

func staticPage(page, title string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, page, web.NewPage(c, title))
	}
}

var (
	EdukasiHandler = staticPage("merajutpage", "Edukasi")
	TentangHandler = staticPage("tentang", "Tentang")
)

// DetailHandler renders one product with the checkout form.
func DetailHandler(products Products) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := store.ParseID(c.Param("productid"))
		if !ok {
			return c.String(http.StatusNotFound, "Product not found")
		}
		product, err := products.Get(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return c.String(http.StatusNotFound, "Product not found")
		}
		if err != nil {
			c.Logger().Errorf("get product %d: %v", id, err)
			return c.String(http.StatusInternalServerError, "Internal Server Error")
		}
		p := web.NewPage(c, product.Name)
		p.Product = product
		return c.Render(http.StatusOK, "detail", p)
	}
}
