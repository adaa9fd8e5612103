package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ページング入力（クエリパラメータ）。pageNumberは0始まり。
type PageInput struct {
	PageNumber int
	PageSize   int
	SortBy     string
	SortOrder  string
}

func validatePageInput(in PageInput) error {
	if in.PageNumber < 0 {
		return NewHTTPError(http.StatusBadRequest, "pageNumber must be >= 0")
	}
	if in.PageSize < 1 {
		return NewHTTPError(http.StatusBadRequest, "pageSize must be > 0")
	}
	switch strings.ToLower(in.SortOrder) {
	case "asc", "desc":
	default:
		return NewHTTPError(http.StatusBadRequest, "sortOrder must be asc or desc")
	}
	return nil
}

func toPageQuery(in PageInput) repo.PageQuery {
	return repo.PageQuery{
		Page:      in.PageNumber,
		Size:      in.PageSize,
		SortBy:    in.SortBy,
		SortOrder: strings.ToLower(in.SortOrder),
	}
}

func totalPages(total int64, size int) int {
	pages := int(total) / size
	if int(total)%size != 0 {
		pages++
	}
	return pages
}

type ProductDTO struct {
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Quantity     int64   `json:"quantity"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	SpecialPrice float64 `json:"specialPrice"`
}

type ProductResponse struct {
	Content       []ProductDTO `json:"content"`
	PageNumber    int          `json:"pageNumber"`
	PageSize      int          `json:"pageSize"`
	TotalElements int64        `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
	LastPage      bool         `json:"lastPage"`
}

type ProductInput struct {
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
}

type ProductUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	userRepo     repo.UserRepository
	tx           repo.TransactionManager
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	userRepo repo.UserRepository,
	tx repo.TransactionManager,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		tx:           tx,
	}
}

// specialPrice = price - price*discount/100
func computeSpecialPrice(price float64, discount float64) float64 {
	return price - (discount*0.01)*price
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.ProductName) == "" {
		return NewHTTPError(http.StatusBadRequest, "Product name cannot be empty !")
	}
	if len(in.ProductName) < 5 {
		return NewHTTPError(http.StatusBadRequest, "Product name must be at least 5 characters long !")
	}
	if strings.TrimSpace(in.Description) == "" {
		return NewHTTPError(http.StatusBadRequest, "Product description cannot be empty !")
	}
	if len(in.Description) < 5 {
		return NewHTTPError(http.StatusBadRequest, "Product description must be at least 5 characters long !")
	}
	return nil
}

// 商品登録。カテゴリ必須・名前重複は409。
func (u *ProductUsecase) AddProduct(ctx context.Context, categoryID int64, actingUsername string, in ProductInput) (ProductDTO, error) {
	category, err := u.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductDTO{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Category not found with categoryId: %d", categoryID))
	}
	if err != nil {
		return ProductDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := validateProductInput(in); err != nil {
		return ProductDTO{}, err
	}

	if _, err := u.productRepo.FindByName(ctx, in.ProductName); err == nil {
		return ProductDTO{}, NewHTTPError(http.StatusConflict, fmt.Sprintf("Product with the name %s already exists !", in.ProductName))
	} else if !errors.Is(err, repo.ErrNotFound) {
		return ProductDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p := model.Product{
		Name:         in.ProductName,
		Image:        "default.png",
		Description:  in.Description,
		Quantity:     in.Quantity,
		Price:        in.Price,
		Discount:     in.Discount,
		SpecialPrice: computeSpecialPrice(in.Price, in.Discount),
		CategoryID:   category.ID,
	}

	//出品者を紐づける（解決できなければ未設定のまま）
	if owner, err := u.userRepo.FindByUserName(ctx, actingUsername); err == nil {
		p.UserID = owner.ID
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return ProductDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toProductDTO(created), nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in PageInput) (ProductResponse, error) {
	if err := validatePageInput(in); err != nil {
		return ProductResponse{}, err
	}

	products, total, err := u.productRepo.List(ctx, toPageQuery(in))
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(products) == 0 {
		return ProductResponse{}, NewHTTPError(http.StatusNotFound, "No products available !")
	}

	return buildProductResponse(products, total, in), nil
}

func (u *ProductUsecase) ListProductsByCategory(ctx context.Context, categoryID int64, in PageInput) (ProductResponse, error) {
	if err := validatePageInput(in); err != nil {
		return ProductResponse{}, err
	}

	category, err := u.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductResponse{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Category not found with categoryId: %d", categoryID))
	}
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, total, err := u.productRepo.ListByCategoryID(ctx, categoryID, toPageQuery(in))
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(products) == 0 {
		return ProductResponse{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("No products available with category %s !", category.Name))
	}

	return buildProductResponse(products, total, in), nil
}

func (u *ProductUsecase) SearchProductsByKeyword(ctx context.Context, keyword string, in PageInput) (ProductResponse, error) {
	if strings.TrimSpace(keyword) == "" {
		return ProductResponse{}, NewHTTPError(http.StatusBadRequest, "keyword cannot be empty !")
	}
	if err := validatePageInput(in); err != nil {
		return ProductResponse{}, err
	}

	products, total, err := u.productRepo.SearchByName(ctx, keyword, toPageQuery(in))
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(products) == 0 {
		return ProductResponse{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("No products available with keyword %s !", keyword))
	}

	return buildProductResponse(products, total, in), nil
}

// 商品更新。価格が変わったときだけ履歴を残し、
// その商品を持つ全カートの明細スナップショットと合計を追従させる。
func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, actingUsername string, in ProductInput) (ProductDTO, error) {
	if err := validateProductInput(in); err != nil {
		return ProductDTO{}, err
	}

	actor, err := u.userRepo.FindByUserName(ctx, actingUsername)
	if err != nil {
		return ProductDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var out ProductDTO

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product not found with productId: %d", productID))
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		oldPrice := p.Price

		p.Name = in.ProductName
		p.Description = in.Description
		p.Quantity = in.Quantity
		p.Price = in.Price
		p.Discount = in.Discount
		p.SpecialPrice = computeSpecialPrice(in.Price, in.Discount)

		if err := r.Products().Update(ctx, p); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if oldPrice != in.Price {
			//価格履歴は追記のみ
			h := model.PriceHistory{
				ProductID:   p.ID,
				OldPrice:    oldPrice,
				NewPrice:    in.Price,
				ChangedAt:   time.Now(),
				ChangedByID: actor.ID,
			}
			if err := r.PriceHistories().Create(ctx, h); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//開いているカートに新価格を伝播する
			if err := propagatePriceToCarts(ctx, r, p); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		out = toProductDTO(p)
		return nil
	})

	if err != nil {
		return ProductDTO{}, err
	}
	return out, nil
}

// 商品を持つ明細のスナップショットを更新して、影響カートの合計を取り直す。
func propagatePriceToCarts(ctx context.Context, r repo.TxRepos, p model.Product) error {
	items, err := r.CartItems().ListByProductID(ctx, p.ID)
	if err != nil {
		return err
	}

	affected := map[int64]struct{}{}
	for _, item := range items {
		item.Discount = p.Discount
		item.ProductPrice = p.SpecialPrice
		if err := r.CartItems().Update(ctx, item); err != nil {
			return err
		}
		affected[item.CartID] = struct{}{}
	}

	for cartID := range affected {
		cartItems, err := r.CartItems().ListByCartID(ctx, cartID)
		if err != nil {
			return err
		}
		var total float64
		for _, ci := range cartItems {
			total += ci.ProductPrice * float64(ci.Quantity)
		}
		if err := r.Carts().UpdateTotal(ctx, cartID, total); err != nil {
			return err
		}
	}

	return nil
}

// 商品削除。カートに入っている分は先に取り除き、合計を減らす。
func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) (ProductDTO, error) {
	var out ProductDTO

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product not found with productId: %d", productID))
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.CartItems().ListByProductID(ctx, productID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		for _, item := range items {
			cart, err := r.Carts().FindByID(ctx, item.CartID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			newTotal := cart.TotalPrice - item.ProductPrice*float64(item.Quantity)
			if err := r.Carts().UpdateTotal(ctx, cart.ID, newTotal); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err := r.CartItems().DeleteByID(ctx, item.ID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		if err := r.Products().Delete(ctx, productID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toProductDTO(p)
		return nil
	})

	if err != nil {
		return ProductDTO{}, err
	}
	return out, nil
}

// アップロード済みファイル名を商品へ反映する
func (u *ProductUsecase) UpdateProductImage(ctx context.Context, productID int64, fileName string) (ProductDTO, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductDTO{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product not found with productId: %d", productID))
	}
	if err != nil {
		return ProductDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p.Image = fileName
	if err := u.productRepo.Update(ctx, p); err != nil {
		return ProductDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toProductDTO(p), nil
}

func toProductDTO(p model.Product) ProductDTO {
	return ProductDTO{
		ProductID:    p.ID,
		ProductName:  p.Name,
		Image:        p.Image,
		Description:  p.Description,
		Quantity:     p.Quantity,
		Price:        p.Price,
		Discount:     p.Discount,
		SpecialPrice: p.SpecialPrice,
	}
}

func buildProductResponse(products []model.Product, total int64, in PageInput) ProductResponse {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}

	pages := totalPages(total, in.PageSize)
	return ProductResponse{
		Content:       dtos,
		PageNumber:    in.PageNumber,
		PageSize:      in.PageSize,
		TotalElements: total,
		TotalPages:    pages,
		LastPage:      in.PageNumber >= pages-1,
	}
}
