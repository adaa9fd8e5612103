package handler

import (
	"net/http"

	"ecshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カテゴリAPI
type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

// DI
func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(public *echo.Group, admin *echo.Group) {
	public.GET("/categories", h.list)
	admin.POST("/categories", h.create)
	admin.PUT("/categories/:categoryId", h.update)
	admin.DELETE("/categories/:categoryId", h.delete)
}

func (h *CategoryHandler) list(c echo.Context) error {
	in, err := parsePageInput(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.uc.ListCategories(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *CategoryHandler) create(c echo.Context) error {
	var in usecase.CategoryDTO
	if err := c.Bind(&in); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}

	dto, err := h.uc.CreateCategory(c.Request().Context(), in.CategoryName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CategoryHandler) update(c echo.Context) error {
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return writeError(c, err)
	}

	var in usecase.CategoryDTO
	if err := c.Bind(&in); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}

	dto, err := h.uc.UpdateCategory(c.Request().Context(), categoryID, in.CategoryName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CategoryHandler) delete(c echo.Context) error {
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return writeError(c, err)
	}

	dto, err := h.uc.DeleteCategory(c.Request().Context(), categoryID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
