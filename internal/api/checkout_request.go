package api

// swagger:model api.CheckoutRequest
type CheckoutRequest struct {
	Size      string `form:"size" validate:"required" example:"M"`
	Quantity  int    `form:"quantity" validate:"required,min=1,max=2147483647" example:"3"`
	ProductID int    `form:"productId" validate:"required,min=1" example:"1"`
}
