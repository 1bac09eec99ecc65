package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/GavrielAldrich/PI-Inne/internal/model"
	"github.com/GavrielAldrich/PI-Inne/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestRupiah(t *testing.T) {
	require.Equal(t, "Rp 0", Rupiah(decimal.Zero))
	require.Equal(t, "Rp 999", Rupiah(decimal.NewFromInt(999)))
	require.Equal(t, "Rp 30.000", Rupiah(decimal.NewFromInt(30000)))
	require.Equal(t, "Rp 1.250.000", Rupiah(decimal.RequireFromString("1250000.40")))
	require.Equal(t, "-Rp 1.000", Rupiah(decimal.NewFromInt(-1000)))
	require.Equal(t, "Rp 150.000", Rupiah(decimal.RequireFromString("150000.50")))
	require.Equal(t, "Rp 9.999.999.999", Rupiah(decimal.RequireFromString("9999999999.99")))
	require.Equal(t, "-Rp 1.000", Rupiah(decimal.RequireFromString("-1000.99")))
}

func TestNewPage(t *testing.T) {
	c := newContext()
	p := NewPage(c, "Produk")
	require.False(t, p.LoggedIn)
	require.False(t, p.IsAdmin)

	session.WithIdentity(c, session.Identity{UserID: 1, Role: model.RoleAdmin})
	p = NewPage(c, "Produk")
	require.True(t, p.LoggedIn)
	require.True(t, p.IsAdmin)
}

func TestRendererPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range []string{
		"index", "produk", "merajutpage", "tentang", "signIn", "signUp",
		"detail", "adminpage", "tambahproduk", "editproduk", "orderview",
	} {
		_, ok := r.pages[name]
		require.True(t, ok, "missing page %s", name)
	}
	_, ok := r.pages["layout"]
	require.False(t, ok)

	c := newContext()
	product := model.Product{ID: 7, Name: "Tas <Rajut>", Price: decimal.NewFromInt(150000), Image: "tas.png", Category: "tas"}

	var buf bytes.Buffer
	page := NewPage(c, "Beranda")
	page.Products = []model.Product{product}
	require.NoError(t, r.Render(&buf, "index", page, c))
	require.Contains(t, buf.String(), "Tas &lt;Rajut&gt;")
	require.Contains(t, buf.String(), "Rp 150.000")
	require.Contains(t, buf.String(), `href="/login"`)

	buf.Reset()
	page = NewPage(c, "Ubah")
	page.IsAdmin, page.LoggedIn = true, true
	page.Product = &product
	require.NoError(t, r.Render(&buf, "editproduk", page, c))
	require.Contains(t, buf.String(), `name="currentImage" value="tas.png"`)
	require.Contains(t, buf.String(), `value="150000.00"`)
	require.Contains(t, buf.String(), `href="/logout"`)

	buf.Reset()
	page = NewPage(c, "Pesanan")
	page.Orders = []model.Order{{ID: 1, ProductName: "Tas", TotalPrice: decimal.NewFromInt(30000), BuyerNote: "-", CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}}
	require.NoError(t, r.Render(&buf, "orderview", page, c))
	require.Contains(t, buf.String(), "Rp 30.000")
	require.Contains(t, buf.String(), "2024-05-01 10:00")

	require.Error(t, r.Render(&buf, "nope", page, c))
}

func TestNewRendererParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/layout.html": {Data: []byte(`{{define "header"}}{{end}}`)},
		"templates/bad.html":    {Data: []byte(`{{template "header" .}}{{if}}`)},
	}
	_, err := newRenderer(fsys)
	require.Error(t, err)
}
