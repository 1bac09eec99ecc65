package dto

// ErrorResponse 為 JSON 端點的錯誤格式
// swagger:model dto.ErrorResponse
type ErrorResponse struct {
	// error 錯誤描述
	Error string `json:"error" example:"Product not found"`
}
