package handler

import (
	"net/http"

	"ecshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 注文API（要ログイン）
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(auth *echo.Group) {
	auth.POST("/order/users/payments/:paymentMethod", h.placeOrder)
}

func (h *OrderHandler) placeOrder(c echo.Context) error {
	var in usecase.PlaceOrderInput
	if err := c.Bind(&in); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}
	in.PaymentMethod = c.Param("paymentMethod")

	dto, err := h.uc.PlaceOrder(c.Request().Context(), actingEmail(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
