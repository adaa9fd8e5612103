package handler

import (
	"net/http"

	"ecshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 住所API（要ログイン）
type AddressHandler struct {
	uc *usecase.AddressUsecase
}

// DI
func NewAddressHandler(uc *usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

func (h *AddressHandler) RegisterRoutes(auth *echo.Group) {
	auth.POST("/addresses", h.create)
	auth.GET("/addresses", h.list)
	auth.GET("/addresses/:addressId", h.detail)
	auth.GET("/users/addresses", h.listForUser)
	auth.PUT("/addresses/:addressId", h.update)
	auth.DELETE("/addresses/:addressId", h.delete)
}

func (h *AddressHandler) create(c echo.Context) error {
	var in usecase.AddressInput
	if err := c.Bind(&in); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}

	dto, err := h.uc.CreateAddress(c.Request().Context(), actingEmail(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AddressHandler) list(c echo.Context) error {
	list, err := h.uc.GetAddresses(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AddressHandler) detail(c echo.Context) error {
	addressID, err := parseIDParam(c, "addressId")
	if err != nil {
		return writeError(c, err)
	}

	dto, err := h.uc.GetAddressByID(c.Request().Context(), addressID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AddressHandler) listForUser(c echo.Context) error {
	list, err := h.uc.GetUserAddresses(c.Request().Context(), actingEmail(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AddressHandler) update(c echo.Context) error {
	addressID, err := parseIDParam(c, "addressId")
	if err != nil {
		return writeError(c, err)
	}

	var in usecase.AddressInput
	if err := c.Bind(&in); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}

	dto, err := h.uc.UpdateAddress(c.Request().Context(), addressID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AddressHandler) delete(c echo.Context) error {
	addressID, err := parseIDParam(c, "addressId")
	if err != nil {
		return writeError(c, err)
	}

	dto, err := h.uc.DeleteAddress(c.Request().Context(), addressID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
