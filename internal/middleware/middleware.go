package middleware

import (
	"errors"
	"net/http"

	"github.com/GavrielAldrich/PI-Inne/internal/session"

	"github.com/labstack/echo/v4"
)

const LoginPath = "/login"

// Session 解析 cookie 並把 Identity 放進 context；解析失敗視為未登入並清除 cookie
func Session(m *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, err := m.Load(c)
			switch {
			case err == nil:
				session.WithIdentity(c, *ident)
			case errors.Is(err, session.ErrInvalidCookie):
				m.Clear(c)
			case errors.Is(err, session.ErrNotFound):
				// session 已過期或被登出
				if hasCookie(c) {
					m.Clear(c)
				}
			default:
				// store 故障時當作未登入，不清 cookie
				c.Logger().Errorf("session load: %v", err)
			}
			return next(c)
		}
	}
}

func hasCookie(c echo.Context) bool {
	_, err := c.Cookie(session.CookieName)
	return err == nil
}

// RequireAuth redirects to the login page when the request has no identity.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if session.IdentityFrom(c) == nil {
			return c.Redirect(http.StatusFound, LoginPath)
		}
		return next(c)
	}
}

// RequireAdmin 未登入導向登入頁，非管理員回 403
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		if !session.IdentityFrom(c).IsAdmin() {
			return c.String(http.StatusForbidden, "Access denied")
		}
		return next(c)
	})
}

// RedirectIfAuthenticated sends logged-in users away from the login and
// register pages.
func RedirectIfAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if session.IdentityFrom(c) != nil {
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	}
}
