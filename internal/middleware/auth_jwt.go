package middleware

import (
	"errors"
	"net/http"
	"strings"

	"ecshop/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	CtxUsernameKey = "username" // string
	CtxEmailKey    = "email"    // string
	CtxRolesKey    = "roles"    // []string

	// signinで配るHTTP-onlyクッキー名
	JWTCookieName = "ecshop-jwt"
)

// JWT検証ミドルウェア。Bearerヘッダ優先、無ければクッキーを見る。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawToken := extractToken(c)
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//JWTをパースして検証する
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			username, err := parseString(claims["sub"])
			if err != nil || username == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			email, err := parseString(claims["email"])
			if err != nil || email == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			roles := parseRoles(claims["roles"])

			//contextへ保存
			c.Set(CtxUsernameKey, username)
			c.Set(CtxEmailKey, email)
			c.Set(CtxRolesKey, roles)

			return next(c)
		}
	}
}

// AuthorizationヘッダかクッキーからJWT本体を取り出す
func extractToken(c echo.Context) string {
	authz := c.Request().Header.Get("Authorization")
	if authz != "" {
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	cookie, err := c.Cookie(JWTCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

type errorResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Message: msg, Success: false}
}

func parseString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.New("invalid string")
	}
	return s, nil
}

// roles claimは[]interface{}で来る
func parseRoles(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return []string{}
	}

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}
