package server

import (
	"ecshop/internal/config"
	"ecshop/internal/domain/model"
	mw "ecshop/internal/middleware"

	"github.com/labstack/echo/v4"
)

// /api以下のルートを登録する。
// public: 認証不要 / auth: 要ログイン / admin: ADMINまたはSELLERロール
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	api := e.Group("/api")

	authJWT := mw.AuthJWT(cfg)

	public := api.Group("/public")
	authAPI := api.Group("", authJWT)
	admin := api.Group("/admin", authJWT, mw.RequireRole(string(model.RoleAdmin), string(model.RoleSeller)))

	authPublic := api.Group("/auth")
	authUser := api.Group("/auth", authJWT)

	h.Auth.RegisterRoutes(authPublic, authUser)
	h.Category.RegisterRoutes(public, admin)
	h.Product.RegisterRoutes(public, admin)
	h.Cart.RegisterRoutes(authAPI, admin)
	h.Order.RegisterRoutes(authAPI)
	h.PriceHistory.RegisterRoutes(admin)
	h.Address.RegisterRoutes(authAPI)
}
