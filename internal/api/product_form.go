// File: internal/api/product_form.go
package api

// ProductForm 為新增與編輯商品共用的表單欄位，圖片檔另以 multipart 讀取
// swagger:model api.ProductForm
type ProductForm struct {
	Category     string `form:"category" validate:"required" example:"tas"`
	Name         string `form:"name" validate:"required" example:"Tas Rajut"`
	Price        string `form:"price" validate:"required" example:"150000"`
	Desc         string `form:"desc" validate:"required" example:"Tas rajut buatan tangan"`
	CurrentImage string `form:"currentImage" example:"tas-rajut-1b4e28ba-2fa1-11d2-883f-0016d3cca427.png"`
}
