package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"ecshop/internal/middleware"
	"ecshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type APIResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, APIResponse{Message: he.Message, Success: false})
	}

	//500
	return c.JSON(http.StatusInternalServerError, APIResponse{Message: "internal error", Success: false})
}

// pathパラメータをint64で読む
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, usecase.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// pageNumber/pageSize/sortBy/sortOrderクエリを読む（default 0/10/-/asc）
func parsePageInput(c echo.Context, defaultSortBy string) (usecase.PageInput, error) {
	in := usecase.PageInput{
		PageNumber: 0,
		PageSize:   10,
		SortBy:     defaultSortBy,
		SortOrder:  "asc",
	}

	if v := c.QueryParam("pageNumber"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return in, usecase.NewHTTPError(http.StatusBadRequest, "invalid pageNumber")
		}
		in.PageNumber = n
	}
	if v := c.QueryParam("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return in, usecase.NewHTTPError(http.StatusBadRequest, "invalid pageSize")
		}
		in.PageSize = n
	}
	if v := c.QueryParam("sortBy"); v != "" {
		in.SortBy = v
	}
	if v := c.QueryParam("sortOrder"); v != "" {
		in.SortOrder = v
	}
	return in, nil
}

// AuthJWTが入れたユーザー名
func actingUsername(c echo.Context) string {
	s, _ := c.Get(middleware.CtxUsernameKey).(string)
	return s
}

// AuthJWTが入れたメールアドレス
func actingEmail(c echo.Context) string {
	s, _ := c.Get(middleware.CtxEmailKey).(string)
	return s
}

// 画像保存先（infra/storage.ImageStore）
type ImageStore interface {
	Save(fh *multipart.FileHeader) (string, error)
	Delete(fileName string) error
}

// 商品API
type ProductHandler struct {
	uc     *usecase.ProductUsecase
	images ImageStore
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, images ImageStore) *ProductHandler {
	return &ProductHandler{uc: uc, images: images}
}

// 公開・管理の商品ルートを登録
func (h *ProductHandler) RegisterRoutes(public *echo.Group, admin *echo.Group) {
	public.GET("/products", h.list)
	public.GET("/categories/:categoryId/products", h.listByCategory)
	public.GET("/products/keyword/:keyword", h.search)
	admin.POST("/categories/:categoryId/product", h.create)
	admin.PUT("/products/:productId", h.update)
	admin.PUT("/products/:productId/image", h.updateImage)
	admin.DELETE("/products/:productId", h.delete)
}

func (h *ProductHandler) list(c echo.Context) error {
	in, err := parsePageInput(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.uc.ListProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ProductHandler) listByCategory(c echo.Context) error {
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return writeError(c, err)
	}

	in, err := parsePageInput(c, "price")
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.uc.ListProductsByCategory(c.Request().Context(), categoryID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ProductHandler) search(c echo.Context) error {
	in, err := parsePageInput(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.uc.SearchProductsByKeyword(c.Request().Context(), c.Param("keyword"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ProductHandler) create(c echo.Context) error {
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return writeError(c, err)
	}

	var in usecase.ProductInput
	if err := c.Bind(&in); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}

	dto, err := h.uc.AddProduct(c.Request().Context(), categoryID, actingUsername(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProductHandler) update(c echo.Context) error {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return writeError(c, err)
	}

	var in usecase.ProductInput
	if err := c.Bind(&in); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	}

	dto, err := h.uc.UpdateProduct(c.Request().Context(), productID, actingUsername(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProductHandler) updateImage(c echo.Context) error {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return writeError(c, err)
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "image file is required"))
	}

	fileName, err := h.images.Save(fh)
	if err != nil {
		return writeError(c, err)
	}

	dto, err := h.uc.UpdateProductImage(c.Request().Context(), productID, fileName)
	if err != nil {
		// DB更新に失敗したら保存済みファイルを片付ける
		_ = h.images.Delete(fileName)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProductHandler) delete(c echo.Context) error {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return writeError(c, err)
	}

	dto, err := h.uc.DeleteProduct(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
