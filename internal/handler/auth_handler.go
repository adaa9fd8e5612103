package handler

import (
	"net/http"
	"time"

	"ecshop/internal/middleware"
	"ecshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 認証API
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(public *echo.Group, auth *echo.Group) {
	public.POST("/signup", h.signUp)
	public.POST("/signin", h.signIn)
	public.POST("/signout", h.signOut)
	auth.GET("/user", h.currentUser)
}

func (h *AuthHandler) signUp(c echo.Context) error {
	var in usecase.SignUpInput
	if err := c.Bind(&in); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}

	msg, err := h.uc.SignUp(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, APIResponse{Message: msg, Success: true})
}

func (h *AuthHandler) signIn(c echo.Context) error {
	var in usecase.SignInInput
	if err := c.Bind(&in); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}

	res, err := h.uc.SignIn(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	// ボディとHTTP-onlyクッキーの両方でトークンを返す
	c.SetCookie(&http.Cookie{
		Name:     middleware.JWTCookieName,
		Value:    res.Token,
		Path:     "/api",
		Expires:  res.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	body := res.User
	body.JwtToken = res.Token
	return c.JSON(http.StatusOK, body)
}

func (h *AuthHandler) signOut(c echo.Context) error {
	// クッキーを失効させる
	c.SetCookie(&http.Cookie{
		Name:     middleware.JWTCookieName,
		Value:    "",
		Path:     "/api",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, APIResponse{Message: "You've been signed out!", Success: true})
}

func (h *AuthHandler) currentUser(c echo.Context) error {
	info, err := h.uc.GetUserInfo(c.Request().Context(), actingUsername(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}
