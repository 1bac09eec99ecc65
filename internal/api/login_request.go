package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	// 使用者名稱或 Email
	EmailUsername string `form:"emailusername" validate:"required" example:"siti"`
	Password      string `form:"password" validate:"required" example:"Secret123!"`
}
