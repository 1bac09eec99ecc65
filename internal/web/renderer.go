package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/GavrielAldrich/PI-Inne/internal/model"
	"github.com/GavrielAldrich/PI-Inne/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer 實作 echo.Renderer，每個頁面與共用 layout 各自解析成一組 template
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"rupiah": Rupiah,
}

// NewRenderer parses every page under templates/ together with the layout.
// The page name is the file name without ".html".
func NewRenderer() (*Renderer, error) {
	return newRenderer(templatesFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("NewRenderer: %w", err)
	}
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		t, err := template.New(path.Base(f)).Funcs(funcs).ParseFS(fsys, f, layoutFile)
		if err != nil {
			return nil, fmt.Errorf("NewRenderer: %s: %w", f, err)
		}
		r.pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("Render: unknown page %q", name)
	}
	return t.Execute(w, data)
}

// Page is the view model every template receives.
type Page struct {
	Title    string
	LoggedIn bool
	IsAdmin  bool
	Products []model.Product
	Product  *model.Product
	Orders   []model.Order
	Error    string
}

// NewPage fills the login flags from the request's session identity.
func NewPage(c echo.Context, title string) Page {
	p := Page{Title: title}
	if ident := session.IdentityFrom(c); ident != nil {
		p.LoggedIn = true
		p.IsAdmin = ident.IsAdmin()
	}
	return p
}

// Rupiah formats an amount as "Rp 150.000". Sen are dropped, never rounded up.
func Rupiah(d decimal.Decimal) string {
	s := d.Truncate(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}
	if neg {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}
