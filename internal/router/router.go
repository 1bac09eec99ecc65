package router

import (
	"github.com/GavrielAldrich/PI-Inne/internal/cache"
	"github.com/GavrielAldrich/PI-Inne/internal/catalog"
	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/handler"
	"github.com/GavrielAldrich/PI-Inne/internal/handler/admin"
	"github.com/GavrielAldrich/PI-Inne/internal/handler/auth"
	"github.com/GavrielAldrich/PI-Inne/internal/handler/shop"
	"github.com/GavrielAldrich/PI-Inne/internal/middleware"
	"github.com/GavrielAldrich/PI-Inne/internal/session"
	"github.com/GavrielAldrich/PI-Inne/internal/upload"
	"github.com/GavrielAldrich/PI-Inne/internal/worker"

	"github.com/labstack/echo/v4"
)

// Deps 為路由需要的所有元件
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Sessions *session.Manager
	Images   *upload.Store
	Jobs     worker.Pool
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	products := catalog.New(d.DB, d.Cache, catalog.DefaultTTL)

	e.Use(middleware.Session(d.Sessions))

	// 健康檢查
	e.GET("/api/ping", handler.PingHandler(d.DB, d.Cache))

	// 商店頁面
	e.GET("/", shop.HomeHandler(products))
	e.GET("/produk", shop.ProdukHandler(products))
	e.GET("/edukasi", shop.EdukasiHandler)
	e.GET("/tentang", shop.TentangHandler)
	e.Static("/uploads", d.Images.Dir())

	// 登入與註冊
	e.GET("/register", auth.RegisterPage, middleware.RedirectIfAuthenticated)
	e.POST("/register", auth.RegisterHandler(d.DB, d.Sessions))
	e.GET("/login", auth.LoginPage, middleware.RedirectIfAuthenticated)
	e.POST("/login", auth.LoginHandler(d.DB, d.Sessions))
	e.GET("/logout", auth.LogoutHandler(d.Sessions))

	// 需登入
	e.GET("/detail/:productid", shop.DetailHandler(products), middleware.RequireAuth)
	e.POST("/checkout", shop.CheckoutHandler(d.DB), middleware.RequireAuth)

	// 管理員專屬
	e.GET("/adminpage", admin.DashboardHandler(products), middleware.RequireAdmin)
	e.GET("/tambahproduk", admin.NewProductPage, middleware.RequireAdmin)
	e.POST("/tambahproduk", admin.CreateProductHandler(products, d.Images), middleware.RequireAdmin)
	e.GET("/editproduk/:productId", admin.EditProductPage(products), middleware.RequireAdmin)
	e.POST("/editproduk/:productId", admin.UpdateProductHandler(products, d.Images, d.Jobs), middleware.RequireAdmin)
	e.GET("/delete/:productId", admin.DeleteProductHandler(products, d.Images, d.Jobs), middleware.RequireAdmin)
	e.GET("/orderview", admin.OrdersHandler(d.DB), middleware.RequireAdmin)
	e.GET("/deleteorder/:orderId", admin.DeleteOrderHandler(d.DB), middleware.RequireAdmin)
}
