// File: internal/session/manager.go
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	CookieName  = "owiana_sid"
	identityKey = "identity"
)

var ErrInvalidCookie = errors.New("invalid session cookie")

// Manager 負責 session cookie 的簽發、解析與銷毀
// cookie 值是 HS256 JWT，jti 為 Store 內的 session id
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: ttl, secure: secure}
}

var timeNow = time.Now

func (m *Manager) sign(id string) (string, error) {
	now := timeNow()
	claims := jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) parse(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(timeNow))
	if err != nil || !token.Valid || claims.ID == "" {
		return "", ErrInvalidCookie
	}
	return claims.ID, nil
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Start stores ident and sets the session cookie on the response.
func (m *Manager) Start(c echo.Context, ident Identity) error {
	id, err := m.store.Create(c.Request().Context(), ident)
	if err != nil {
		return fmt.Errorf("Manager.Start: %w", err)
	}
	signed, err := m.sign(id)
	if err != nil {
		return fmt.Errorf("Manager.Start: %w", err)
	}
	c.SetCookie(m.cookie(signed, int(m.ttl.Seconds())))
	WithIdentity(c, ident)
	return nil
}

// Load resolves the request's cookie to an Identity. A missing cookie,
// a bad signature or an expired session all return ErrNotFound or
// ErrInvalidCookie.
func (m *Manager) Load(c echo.Context) (*Identity, error) {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return nil, ErrNotFound
	}
	id, err := m.parse(ck.Value)
	if err != nil {
		return nil, err
	}
	return m.store.Get(c.Request().Context(), id)
}

// Destroy removes the stored session, if any, and expires the cookie.
func (m *Manager) Destroy(c echo.Context) error {
	defer m.Clear(c)
	ck, err := c.Cookie(CookieName)
	if err != nil {
		return nil
	}
	id, err := m.parse(ck.Value)
	if err != nil {
		return nil
	}
	if err := m.store.Destroy(c.Request().Context(), id); err != nil {
		return fmt.Errorf("Manager.Destroy: %w", err)
	}
	return nil
}

// Clear expires the cookie on the client.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(m.cookie("", -1))
	c.Set(identityKey, nil)
}

func WithIdentity(c echo.Context, ident Identity) {
	c.Set(identityKey, &ident)
}

// IdentityFrom returns the identity the Session middleware attached, or nil.
func IdentityFrom(c echo.Context) *Identity {
	ident, _ := c.Get(identityKey).(*Identity)
	return ident
}
