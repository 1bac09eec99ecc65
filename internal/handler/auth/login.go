package auth

import (
	"errors"
	"net/http"

	"github.com/GavrielAldrich/PI-Inne/internal/api"
	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/service"
	"github.com/GavrielAldrich/PI-Inne/internal/session"
	"github.com/GavrielAldrich/PI-Inne/internal/web"

	"github.com/labstack/echo/v4"
)

var loginUser = service.Login

func LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signIn", web.NewPage(c, "Masuk"))
}

// LoginHandler 以 username 或 email 加密碼登入，成功後建立 session
// @Summary     登入使用者
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     plain
// @Param       emailusername formData string true "使用者名稱或 Email"
// @Param       password      formData string true "密碼"
// @Success     303
// @Failure     400 {string} string "Error finding user"
// @Failure     401 {string} string "No user found"
// @Failure     500 {string} string "Error finding user"
// @Router      /login [post]
func LoginHandler(db database.Querier, sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "Error finding user")
		}
		if err := c.Validate(&req); err != nil {
			return c.String(http.StatusBadRequest, "Error finding user")
		}

		user, err := loginUser(c.Request().Context(), db, req.EmailUsername, req.Password)
		switch {
		case errors.Is(err, service.ErrNoUser):
			return c.String(http.StatusUnauthorized, "No user found")
		case errors.Is(err, service.ErrPasswordMismatch):
			return c.String(http.StatusUnauthorized, "Passwords do not match")
		case err != nil:
			c.Logger().Errorf("login %q: %v", req.EmailUsername, err)
			return c.String(http.StatusInternalServerError, "Error finding user")
		}

		if err := sm.Start(c, session.Identity{UserID: user.ID, Role: user.Role}); err != nil {
			c.Logger().Errorf("login %q: %v", req.EmailUsername, err)
			return c.String(http.StatusInternalServerError, "Error logging in")
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
}

// LogoutHandler 銷毀 session 並導回首頁
func LogoutHandler(sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := sm.Destroy(c); err != nil {
			c.Logger().Errorf("logout: %v", err)
			return c.String(http.StatusInternalServerError, "Error logging out")
		}
		return c.Redirect(http.StatusFound, "/")
	}
}
