package admin

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/GavrielAldrich/PI-Inne/internal/api"
	"github.com/GavrielAldrich/PI-Inne/internal/model"
	"github.com/GavrielAldrich/PI-Inne/internal/store"
	"github.com/GavrielAldrich/PI-Inne/internal/upload"
	"github.com/GavrielAldrich/PI-Inne/internal/web"
	"github.com/GavrielAldrich/PI-Inne/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	adminPath   = "/adminpage"
	serverError = "Internal Server Error"
)

// Products 由 catalog.Catalog 實作，寫入時會一併清除快取。
// 編輯與刪除前以 Load 直接讀資料庫，不信任快取
type Products interface {
	List(ctx context.Context) ([]model.Product, error)
	Load(ctx context.Context, id int) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int) error
}

// Images 由 upload.Store 實作
type Images interface {
	Save(fh *multipart.FileHeader, stem string) (string, error)
	Exists(name string) bool
	Remove(name string) error
}

var errBadForm = errors.New("invalid product form")

// bindProduct 讀取表單並解析價格，圖片另外處理
func bindProduct(c echo.Context) (api.ProductForm, decimal.Decimal, error) {
	var form api.ProductForm
	if err := c.Bind(&form); err != nil {
		return form, decimal.Zero, errBadForm
	}
	if err := c.Validate(&form); err != nil {
		return form, decimal.Zero, errBadForm
	}
	price, err := decimal.NewFromString(form.Price)
	if err != nil || price.IsNegative() || price.GreaterThan(store.MaxPrice) {
		return form, decimal.Zero, errBadForm
	}
	return form, price, nil
}

// uploadedImage returns the "image" file, or nil when none was sent.
func uploadedImage(c echo.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fh, nil
}

func productID(c echo.Context) (int, bool) {
	return store.ParseID(c.Param("productId"))
}

// saveFailed 非圖片內容回 400，其餘為伺服器錯誤
func saveFailed(c echo.Context, err error) error {
	if errors.Is(err, upload.ErrUnsupportedType) {
		return c.String(http.StatusBadRequest, "Invalid image")
	}
	c.Logger().Errorf("save image: %v", err)
	return c.String(http.StatusInternalServerError, serverError)
}

// removeLater 把舊圖片刪除交給背景 worker
func removeLater(c echo.Context, jobs worker.Pool, images Images, name string) {
	if name == "" {
		return
	}
	logger := c.Logger()
	jobs.Submit(func() {
		if err := images.Remove(name); err != nil {
			logger.Errorf("remove image %q: %v", name, err)
		}
	})
}

func DashboardHandler(products Products) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := products.List(c.Request().Context())
		if err != nil {
			c.Logger().Errorf("list products: %v", err)
			return c.String(http.StatusInternalServerError, serverError)
		}
		p := web.NewPage(c, "Admin")
		p.Products = list
		return c.Render(http.StatusOK, "adminpage", p)
	}
}

func NewProductPage(c echo.Context) error {
	return c.Render(http.StatusOK, "tambahproduk", web.NewPage(c, "Tambah Produk"))
}

func EditProductPage(products Products) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := productID(c)
		if !ok {
			return c.String(http.StatusNotFound, "Product not found")
		}
		product, err := products.Load(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return c.String(http.StatusNotFound, "Product not found")
		}
		if err != nil {
			c.Logger().Errorf("get product %d: %v", id, err)
			return c.String(http.StatusInternalServerError, serverError)
		}
		p := web.NewPage(c, "Ubah Produk")
		p.Product = product
		return c.Render(http.StatusOK, "editproduk", p)
	}
}

// CreateProductHandler 新增商品；若寫入資料庫失敗則刪除剛上傳的圖片
// @Summary     新增商品
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     plain
// @Param       category formData string true  "分類"
// @Param       name     formData string true  "名稱"
// @Param       price    formData string true  "價格"
// @Param       desc     formData string true  "描述"
// @Param       image    formData file   false "圖片"
// @Success     303
// @Failure     400 {string} string "Invalid product data"
// @Failure     400 {string} string "Invalid image"
// @Failure     500 {string} string "Internal Server Error"
// @Router      /tambahproduk [post]
func CreateProductHandler(products Products, images Images) echo.HandlerFunc {
	return func(c echo.Context) error {
		form, price, err := bindProduct(c)
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid product data")
		}
		fh, err := uploadedImage(c)
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid product data")
		}

		var image string
		if fh != nil {
			if image, err = images.Save(fh, form.Name); err != nil {
				return saveFailed(c, err)
			}
		}

		_, err = products.Create(c.Request().Context(), &model.Product{
			Name:        form.Name,
			Description: form.Desc,
			Price:       price,
			Image:       image,
			Category:    form.Category,
		})
		if err != nil {
			c.Logger().Errorf("create product: %v", err)
			if image != "" {
				if rmErr := images.Remove(image); rmErr != nil {
					c.Logger().Errorf("remove image %q: %v", image, rmErr)
				}
			}
			return c.String(http.StatusInternalServerError, serverError)
		}
		return c.Redirect(http.StatusSeeOther, adminPath)
	}
}

// UpdateProductHandler 更新商品。沒有上傳新圖時沿用資料庫中的圖片；
// 表單帶回的 currentImage 必須與資料庫一致且檔案存在
// @Summary     更新商品
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     plain
// @Param       productId    path     int    true  "商品 ID"
// @Param       category     formData string true  "分類"
// @Param       name         formData string true  "名稱"
// @Param       price        formData string true  "價格"
// @Param       desc         formData string true  "描述"
// @Param       currentImage formData string false "目前圖片"
// @Param       image        formData file   false "新圖片"
// @Success     303
// @Failure     400 {string} string "Invalid product data"
// @Failure     404 {string} string "Product not found"
// @Failure     500 {string} string "Internal Server Error"
// @Router      /editproduk/{productId} [post]
func UpdateProductHandler(products Products, images Images, jobs worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id, ok := productID(c)
		if !ok {
			return c.String(http.StatusNotFound, "Product not found")
		}
		existing, err := products.Load(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.String(http.StatusNotFound, "Product not found")
		}
		if err != nil {
			c.Logger().Errorf("get product %d: %v", id, err)
			return c.String(http.StatusInternalServerError, serverError)
		}

		form, price, err := bindProduct(c)
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid product data")
		}
		fh, err := uploadedImage(c)
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid product data")
		}

		image := existing.Image
		if fh == nil && form.CurrentImage != "" {
			if form.CurrentImage != existing.Image || !images.Exists(existing.Image) {
				return c.String(http.StatusBadRequest, "Invalid image")
			}
		}
		if fh != nil {
			if image, err = images.Save(fh, form.Name); err != nil {
				return saveFailed(c, err)
			}
		}

		err = products.Update(ctx, &model.Product{
			ID:          id,
			Name:        form.Name,
			Description: form.Desc,
			Price:       price,
			Image:       image,
			Category:    form.Category,
		})
		if err != nil {
			if image != existing.Image {
				if rmErr := images.Remove(image); rmErr != nil {
					c.Logger().Errorf("remove image %q: %v", image, rmErr)
				}
			}
			if errors.Is(err, store.ErrNotFound) {
				return c.String(http.StatusNotFound, "Product not found")
			}
			c.Logger().Errorf("update product %d: %v", id, err)
			return c.String(http.StatusInternalServerError, serverError)
		}

		if image != existing.Image {
			removeLater(c, jobs, images, existing.Image)
		}
		return c.Redirect(http.StatusSeeOther, adminPath)
	}
}

// DeleteProductHandler 刪除單一商品並排程刪除圖片
func DeleteProductHandler(products Products, images Images, jobs worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id, ok := productID(c)
		if !ok {
			return c.String(http.StatusNotFound, "Product not found")
		}
		existing, err := products.Load(ctx, id)
		if err == nil {
			err = products.Delete(ctx, id)
		}
		if errors.Is(err, store.ErrNotFound) {
			return c.String(http.StatusNotFound, "Product not found")
		}
		if err != nil {
			c.Logger().Errorf("delete product %d: %v", id, err)
			return c.String(http.StatusInternalServerError, serverError)
		}
		removeLater(c, jobs, images, existing.Image)
		return c.Redirect(http.StatusFound, adminPath)
	}
}
