package server

import (
	"ecshop/internal/config"
	"ecshop/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// アプリ全体のハンドラ束
type Handlers struct {
	Auth         *handler.AuthHandler
	Category     *handler.CategoryHandler
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	PriceHistory *handler.PriceHistoryHandler
	Address      *handler.AddressHandler
}

// echoエンジンを組み立てて返す
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// アップロード画像の配信
	e.Static("/images", cfg.ImageDir)

	RegisterRoutes(e, cfg, h)
	return e
}

func Start(e *echo.Echo, cfg config.Config) error {
	return e.Start(":" + cfg.Port)
}
