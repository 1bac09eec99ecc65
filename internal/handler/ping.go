package handler

import (
	"net/http"
	"time"

	"github.com/GavrielAldrich/PI-Inne/internal/cache"
	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/dto"

	"github.com/labstack/echo/v4"
)

const healthKey = "healthcheck"

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.PingResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /api/ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqCtx := ctx.Request().Context()
		if err := db.Ping(reqCtx); err != nil {
			ctx.Logger().Errorf("ping database: %v", err)
			return ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "database unhealthy"})
		}
		if err := c.Set(reqCtx, healthKey, "ok", 10*time.Second).Err(); err != nil {
			ctx.Logger().Errorf("ping cache: %v", err)
			return ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "cache unhealthy"})
		}
		return ctx.JSON(http.StatusOK, dto.PingResponse{Message: "pong"})
	}
}
