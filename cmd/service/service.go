// @title        Owiana Craft API
// @version      1.0
// @description  Owiana Craft 商店的表單與 JSON 端點
// @host         localhost:3000
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/GavrielAldrich/PI-Inne/internal/cache"
	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/router"
	"github.com/GavrielAldrich/PI-Inne/internal/service"
	"github.com/GavrielAldrich/PI-Inne/internal/session"
	"github.com/GavrielAldrich/PI-Inne/internal/upload"
	"github.com/GavrielAldrich/PI-Inne/internal/web"
	"github.com/GavrielAldrich/PI-Inne/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/GavrielAldrich/PI-Inne/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadDotenv      = func() error { return godotenv.Load() }
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	ensureAdmin     = service.EnsureAdmin
	newUploadStore  = upload.NewStore
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

type config struct {
	dbURL         string
	redisAddr     string
	redisPassword string
	redisDB       int
	sessionSecret string
	sessionTTL    time.Duration
	sessionSecure bool
	uploadDir     string
	workerCount   int
	addr          string
	debug         bool

	adminUsername string
	adminEmail    string
	adminPassword string
}

func required(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("環境變數 %s 未設定", name)
	}
	return v, nil
}

func loadConfig() (*config, error) {
	var (
		cfg = &config{
			redisPassword: os.Getenv("REDIS_PASSWORD"),
			sessionTTL:    24 * time.Hour,
			uploadDir:     "uploads",
			workerCount:   1,
			addr:          ":3000",
			adminUsername: os.Getenv("ADMIN_USERNAME"),
			adminEmail:    os.Getenv("ADMIN_EMAIL"),
			adminPassword: os.Getenv("ADMIN_PASSWORD"),
		}
		err error
	)

	if cfg.dbURL, err = required("DATABASE_URL"); err != nil {
		return nil, err
	}
	if cfg.redisAddr, err = required("REDIS_ADDR"); err != nil {
		return nil, err
	}
	redisDBStr, err := required("REDIS_DB")
	if err != nil {
		return nil, err
	}
	if cfg.redisDB, err = strconv.Atoi(redisDBStr); err != nil {
		return nil, fmt.Errorf("無效的 REDIS_DB: %v", err)
	}
	if cfg.sessionSecret, err = required("SESSION_SECRET"); err != nil {
		return nil, err
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("無效的 SESSION_TTL: %q", v)
		}
		cfg.sessionTTL = ttl
	}
	if v := os.Getenv("SESSION_SECURE"); v != "" {
		if cfg.sessionSecure, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("無效的 SESSION_SECURE: %v", err)
		}
	}
	if v := os.Getenv("DEBUG"); v != "" {
		if cfg.debug, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("無效的 DEBUG: %v", err)
		}
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		cfg.uploadDir = v
	}
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return nil, fmt.Errorf("無效的 WORKER_COUNT: %q", v)
		}
		cfg.workerCount = c
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.addr = v
	}
	return cfg, nil
}

func (c *config) seedAdmin() bool {
	return c.adminUsername != "" && c.adminEmail != "" && c.adminPassword != ""
}

func run() error {
	// .env 不存在時直接使用系統環境變數
	if err := loadDotenv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("讀取 .env 失敗: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.redisAddr, cfg.redisPassword, cfg.redisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	if cfg.seedAdmin() {
		if _, err := ensureAdmin(context.Background(), db, cfg.adminUsername, cfg.adminEmail, cfg.adminPassword); err != nil {
			return fmt.Errorf("建立管理員失敗: %v", err)
		}
		log.Printf("admin account %q ready", cfg.adminUsername)
	}

	images, err := newUploadStore(cfg.uploadDir)
	if err != nil {
		return fmt.Errorf("上傳目錄建立失敗: %v", err)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("載入樣板失敗: %v", err)
	}

	wp := newWorkerPool(cfg.workerCount)
	defer wp.Stop()

	sessions := session.NewManager(
		session.NewRedisStore(redis, cfg.sessionTTL),
		cfg.sessionSecret,
		cfg.sessionTTL,
		cfg.sessionSecure,
	)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Renderer = renderer
	e.Debug = cfg.debug
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    redis,
		Sessions: sessions,
		Images:   images,
		Jobs:     wp,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.addr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
