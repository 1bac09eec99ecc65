package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Fullname string `form:"fullname" validate:"required" example:"Siti Aminah"`
	Email    string `form:"email" validate:"required" example:"siti@example.com"`
	Username string `form:"username" validate:"required" example:"siti"`
	Password string `form:"password" validate:"required" example:"Secret123!"`
	Address  string `form:"address" validate:"required" example:"Jl. Merdeka 1, Bandung"`
}
