package handler

import (
	"net/http"

	"ecshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カートAPI（要ログイン）
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) RegisterRoutes(auth *echo.Group, admin *echo.Group) {
	auth.POST("/carts/products/:productId/quantity/:quantity", h.addProduct)
	auth.GET("/carts/users/cart", h.userCart)
	auth.PUT("/cart/products/:productId/quantity/:delta", h.updateQuantity)
	auth.DELETE("/carts/:cartId/product/:productId", h.removeProduct)
	admin.GET("/carts", h.listAll)
}

func (h *CartHandler) addProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return writeError(c, err)
	}
	quantity, err := parseIDParam(c, "quantity")
	if err != nil {
		return writeError(c, err)
	}

	dto, err := h.uc.AddProductToCart(c.Request().Context(), actingEmail(c), productID, quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CartHandler) userCart(c echo.Context) error {
	dto, err := h.uc.GetUserCart(c.Request().Context(), actingEmail(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CartHandler) updateQuantity(c echo.Context) error {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return writeError(c, err)
	}

	// 符号付き増減値
	delta, err := parseIDParam(c, "delta")
	if err != nil {
		return writeError(c, err)
	}

	dto, err := h.uc.UpdateProductQuantity(c.Request().Context(), actingEmail(c), productID, delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CartHandler) removeProduct(c echo.Context) error {
	cartID, err := parseIDParam(c, "cartId")
	if err != nil {
		return writeError(c, err)
	}
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return writeError(c, err)
	}

	msg, err := h.uc.RemoveProductFromCart(c.Request().Context(), actingEmail(c), cartID, productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, APIResponse{Message: msg, Success: true})
}

func (h *CartHandler) listAll(c echo.Context) error {
	list, err := h.uc.GetAllCarts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
