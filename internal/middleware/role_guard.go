package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// 指定ロールのいずれかを持っていることを要求する。AuthJWTの後段で使う。
func RequireRole(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(CtxRolesKey).([]string)

			for _, have := range roles {
				for _, want := range required {
					if have == want {
						return next(c)
					}
				}
			}
			return c.JSON(http.StatusForbidden, errorJSON("forbidden"))
		}
	}
}
