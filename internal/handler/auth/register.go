package auth

import (
	"net/http"

	"github.com/GavrielAldrich/PI-Inne/internal/api"
	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/model"
	"github.com/GavrielAldrich/PI-Inne/internal/service"
	"github.com/GavrielAldrich/PI-Inne/internal/session"
	"github.com/GavrielAldrich/PI-Inne/internal/web"

	"github.com/labstack/echo/v4"
)

var registerUser = service.Register

const errRegister = "Error registering user"

func RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signUp", web.NewPage(c, "Daftar"))
}

// RegisterHandler 建立一般使用者帳號，成功後直接登入並導回首頁
// @Summary     註冊使用者
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     plain
// @Param       fullname formData string true "全名"
// @Param       email    formData string true "Email"
// @Param       username formData string true "使用者名稱"
// @Param       password formData string true "密碼"
// @Param       address  formData string true "地址"
// @Success     303
// @Failure     400 {string} string "Error registering user"
// @Failure     500 {string} string "Error registering user"
// @Router      /register [post]
func RegisterHandler(db database.Querier, sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, errRegister)
		}
		if err := c.Validate(&req); err != nil {
			return c.String(http.StatusBadRequest, errRegister)
		}

		user, err := registerUser(c.Request().Context(), db, model.User{
			Fullname: req.Fullname,
			Email:    req.Email,
			Username: req.Username,
			Address:  req.Address,
		}, req.Password)
		if err != nil {
			c.Logger().Errorf("register %q: %v", req.Username, err)
			return c.String(http.StatusInternalServerError, errRegister)
		}

		if err := sm.Start(c, session.Identity{UserID: user.ID, Role: user.Role}); err != nil {
			c.Logger().Errorf("register %q: %v", req.Username, err)
			return c.String(http.StatusInternalServerError, errRegister)
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
