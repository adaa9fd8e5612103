package handler

import (
	"net/http"

	"ecshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 価格変更履歴API（管理者用）
type PriceHistoryHandler struct {
	uc *usecase.PriceHistoryUsecase
}

// DI
func NewPriceHistoryHandler(uc *usecase.PriceHistoryUsecase) *PriceHistoryHandler {
	return &PriceHistoryHandler{uc: uc}
}

func (h *PriceHistoryHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/product/:productId/price-history", h.listByProduct)
}

func (h *PriceHistoryHandler) listByProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return writeError(c, err)
	}

	list, err := h.uc.GetHistoryByProduct(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
