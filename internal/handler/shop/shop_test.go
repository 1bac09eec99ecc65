package shop

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GavrielAldrich/PI-Inne/internal/model"
	"github.com/GavrielAldrich/PI-Inne/internal/session"
	"github.com/GavrielAldrich/PI-Inne/internal/store"
	"github.com/GavrielAldrich/PI-Inne/internal/web"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeProducts struct {
	list    []model.Product
	listErr error
	getErr  error
}

func (f *fakeProducts) List(context.Context) ([]model.Product, error) { return f.list, f.listErr }

func (f *fakeProducts) Get(_ context.Context, id int) (*model.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, p := range f.list {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("GetProductByID: %w", store.ErrNotFound)
}

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	r, err := web.NewRenderer()
	require.NoError(t, err)
	e.Renderer = r
	return e
}

func get(e *echo.Echo, h echo.HandlerFunc, param string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if param != "" {
		c.SetParamNames("productid")
		c.SetParamValues(param)
	}
	session.WithIdentity(c, session.Identity{UserID: 1})
	return rec, h(c)
}

var products = &fakeProducts{list: []model.Product{
	{ID: 1, Name: "Tas Rajut", Price: decimal.NewFromInt(150000)},
	{ID: 2, Name: "Syal", Price: decimal.NewFromInt(75000)},
}}

func TestListPages(t *testing.T) {
	e := newEcho(t)
	for _, h := range []echo.HandlerFunc{HomeHandler(products), ProdukHandler(products)} {
		rec, err := get(e, h, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Tas Rajut")
		require.Contains(t, rec.Body.String(), "Rp 75.000")
		require.Contains(t, rec.Body.String(), `href="/logout"`)
	}

	rec, err := get(e, HomeHandler(&fakeProducts{listErr: errors.New("db")}), "")
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStaticPages(t *testing.T) {
	e := newEcho(t)
	for want, h := range map[string]echo.HandlerFunc{"Edukasi Merajut": EdukasiHandler, "Tentang Kami": TentangHandler} {
		rec, err := get(e, h, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), want)
	}
}

func TestDetailHandler(t *testing.T) {
	e := newEcho(t)

	rec, err := get(e, DetailHandler(products), "2")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Syal")
	require.Contains(t, rec.Body.String(), `name="productId" value="2"`)

	for _, id := range []string{"99", "abc"} {
		rec, err = get(e, DetailHandler(products), id)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Product not found", rec.Body.String())
	}

	rec, err = get(e, DetailHandler(&fakeProducts{getErr: errors.New("db")}), "1")
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// int4 範圍外的 id 不送進資料庫
	for _, id := range []string{"2147483648", "0", "-1"} {
		rec, err = get(e, DetailHandler(&fakeProducts{getErr: errors.New("greater than maximum value for int4")}), id)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}
