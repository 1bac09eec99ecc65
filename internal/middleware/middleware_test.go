package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GavrielAldrich/PI-Inne/internal/cache/cachetest"
	"github.com/GavrielAldrich/PI-Inne/internal/model"
	"github.com/GavrielAldrich/PI-Inne/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withIdentity(ident *session.Identity) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newContext()
	if ident != nil {
		session.WithIdentity(c, *ident)
	}
	return c, rec
}

func ok(c echo.Context) error { return c.String(http.StatusOK, "ok") }

// login 建立真實 session 並回傳 cookie
func login(t *testing.T, m *session.Manager, ident session.Identity) *http.Cookie {
	t.Helper()
	c, rec := newContext()
	require.NoError(t, m.Start(c, ident))
	return rec.Result().Cookies()[0]
}

func TestSession(t *testing.T) {
	client, _ := cachetest.New(t)
	m := session.NewManager(session.NewRedisStore(client, time.Hour), "k", time.Hour, false)
	ck := login(t, m, session.Identity{UserID: 4, Role: model.RoleAdmin})

	var seen *session.Identity
	h := Session(m)(func(c echo.Context) error {
		seen = session.IdentityFrom(c)
		return nil
	})

	c, rec := newContext(ck)
	require.NoError(t, h(c))
	require.NotNil(t, seen)
	require.Equal(t, 4, seen.UserID)
	require.Empty(t, rec.Result().Cookies())

	c, rec = newContext()
	require.NoError(t, h(c))
	require.Nil(t, seen)
	require.Empty(t, rec.Result().Cookies())

	c, rec = newContext(&http.Cookie{Name: session.CookieName, Value: "tampered"})
	require.NoError(t, h(c))
	require.Nil(t, seen)
	require.Equal(t, -1, rec.Result().Cookies()[0].MaxAge, "bad cookie is cleared")
}

func TestSessionStoreError(t *testing.T) {
	signer := session.NewManager(&session.FakeStore{CreateFn: func(context.Context, session.Identity) (string, error) {
		return "abc", nil
	}}, "k", time.Hour, false)
	ck := login(t, signer, session.Identity{UserID: 1})

	m := session.NewManager(&session.FakeStore{GetFn: func(context.Context, string) (*session.Identity, error) {
		return nil, errors.New("redis down")
	}}, "k", time.Hour, false)

	called := false
	c, _ := newContext(ck)
	require.NoError(t, Session(m)(func(c echo.Context) error {
		called = true
		require.Nil(t, session.IdentityFrom(c))
		return nil
	})(c))
	require.True(t, called)
}

func TestRequireAuth(t *testing.T) {
	c, rec := withIdentity(&session.Identity{UserID: 2})
	require.NoError(t, RequireAuth(ok)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	called := false
	c, rec = withIdentity(nil)
	require.NoError(t, RequireAuth(func(echo.Context) error { called = true; return nil })(c))
	require.False(t, called)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, LoginPath, rec.Header().Get(echo.HeaderLocation))
}

func TestRequireAdmin(t *testing.T) {
	c, rec := withIdentity(&session.Identity{UserID: 3, Role: model.RoleAdmin})
	require.NoError(t, RequireAdmin(ok)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// no session
	called := false
	next := func(echo.Context) error { called = true; return nil }
	c, rec = withIdentity(nil)
	require.NoError(t, RequireAdmin(next)(c))
	require.False(t, called)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, LoginPath, rec.Header().Get(echo.HeaderLocation))

	// non-admin
	c, rec = withIdentity(&session.Identity{UserID: 4, Role: model.RoleUser})
	require.NoError(t, RequireAdmin(next)(c))
	require.False(t, called)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Access denied", rec.Body.String())
}

func TestRedirectIfAuthenticated(t *testing.T) {
	c, rec := withIdentity(&session.Identity{UserID: 1})
	require.NoError(t, RedirectIfAuthenticated(ok)(c))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	c, rec = withIdentity(nil)
	require.NoError(t, RedirectIfAuthenticated(ok)(c))
	require.Equal(t, http.StatusOK, rec.Code)
}
