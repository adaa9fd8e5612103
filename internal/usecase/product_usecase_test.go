package usecase_test

import (
	"context"
	"testing"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"
	"ecshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductUsecase() (*usecase.ProductUsecase, *ProductRepoMock, *CategoryRepoMock, *UserRepoMock, *txReposStub) {
	productRepo := new(ProductRepoMock)
	categoryRepo := new(CategoryRepoMock)
	userRepo := new(UserRepoMock)
	repos := newTxReposStub()
	uc := usecase.NewProductUsecase(productRepo, categoryRepo, userRepo, &txManagerStub{repos: repos})
	return uc, productRepo, categoryRepo, userRepo, repos
}

// 1000円・割引10% → specialPriceは900円
func TestProductUsecase_AddProduct_ComputesSpecialPrice(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, categoryRepo, userRepo, _ := newProductUsecase()

	categoryRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.Category{ID: 1, Name: "Electronics"}, nil)
	productRepo.On("FindByName", mock.Anything, "Laptop Pro").Return(model.Product{}, repo.ErrNotFound)
	userRepo.On("FindByUserName", mock.Anything, "seller1").Return(&model.User{ID: 2}, nil)

	productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Laptop Pro" && p.SpecialPrice == 900 &&
			p.Image == "default.png" && p.CategoryID == 1 && p.UserID == 2
	})).Return(model.Product{ID: 10, Name: "Laptop Pro", Image: "default.png", Price: 1000, Discount: 10, SpecialPrice: 900}, nil)

	dto, err := uc.AddProduct(ctx, 1, "seller1", usecase.ProductInput{
		ProductName: "Laptop Pro",
		Description: "A fast laptop",
		Quantity:    5,
		Price:       1000,
		Discount:    10,
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(900), dto.SpecialPrice)

	productRepo.AssertExpectations(t)
}

func TestProductUsecase_AddProduct_CategoryNotFound(t *testing.T) {
	ctx := context.Background()
	uc, _, categoryRepo, _, _ := newProductUsecase()

	categoryRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.AddProduct(ctx, 99, "seller1", usecase.ProductInput{
		ProductName: "Laptop Pro", Description: "A fast laptop",
	})
	assertHTTPError(t, err, 404)
}

func TestProductUsecase_AddProduct_NameTooShort(t *testing.T) {
	ctx := context.Background()
	uc, _, categoryRepo, _, _ := newProductUsecase()

	categoryRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Category{ID: 1}, nil)

	_, err := uc.AddProduct(ctx, 1, "seller1", usecase.ProductInput{
		ProductName: "abc", Description: "A fast laptop",
	})

	he := assertHTTPError(t, err, 400)
	assert.Equal(t, "Product name must be at least 5 characters long !", he.Message)
}

func TestProductUsecase_AddProduct_DuplicateName(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, categoryRepo, _, _ := newProductUsecase()

	categoryRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Category{ID: 1}, nil)
	productRepo.On("FindByName", mock.Anything, "Laptop Pro").
		Return(model.Product{ID: 10, Name: "Laptop Pro"}, nil)

	_, err := uc.AddProduct(ctx, 1, "seller1", usecase.ProductInput{
		ProductName: "Laptop Pro", Description: "A fast laptop",
	})
	assertHTTPError(t, err, 409)
}

func TestProductUsecase_ListProducts_EmptyIsNotFound(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _, _, _ := newProductUsecase()

	productRepo.On("List", mock.Anything, mock.Anything).Return([]model.Product{}, int64(0), nil)

	_, err := uc.ListProducts(ctx, usecase.PageInput{PageNumber: 0, PageSize: 10, SortBy: "id", SortOrder: "asc"})

	he := assertHTTPError(t, err, 404)
	assert.Equal(t, "No products available !", he.Message)
}

func TestProductUsecase_ListProducts_InvalidPage(t *testing.T) {
	uc, _, _, _, _ := newProductUsecase()

	_, err := uc.ListProducts(context.Background(), usecase.PageInput{PageNumber: -1, PageSize: 10, SortOrder: "asc"})
	assertHTTPError(t, err, 400)

	_, err = uc.ListProducts(context.Background(), usecase.PageInput{PageNumber: 0, PageSize: 0, SortOrder: "asc"})
	assertHTTPError(t, err, 400)
}

func TestProductUsecase_ListProducts_Envelope(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _, _, _ := newProductUsecase()

	products := []model.Product{{ID: 10, Name: "Laptop Pro"}, {ID: 11, Name: "Laptop Air"}}
	productRepo.On("List", mock.Anything, repo.PageQuery{Page: 1, Size: 2, SortBy: "id", SortOrder: "asc"}).
		Return(products, int64(5), nil)

	res, err := uc.ListProducts(ctx, usecase.PageInput{PageNumber: 1, PageSize: 2, SortBy: "id", SortOrder: "asc"})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(res.Content))
	assert.Equal(t, 1, res.PageNumber)
	assert.Equal(t, int64(5), res.TotalElements)
	assert.Equal(t, 3, res.TotalPages)
	assert.False(t, res.LastPage)
}

func TestProductUsecase_SearchProducts_EmptyIsNotFound(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _, _, _ := newProductUsecase()

	productRepo.On("SearchByName", mock.Anything, "zzz", mock.Anything).
		Return([]model.Product{}, int64(0), nil)

	_, err := uc.SearchProductsByKeyword(ctx, "zzz", usecase.PageInput{PageNumber: 0, PageSize: 10, SortBy: "id", SortOrder: "asc"})

	he := assertHTTPError(t, err, 404)
	assert.Contains(t, he.Message, "keyword zzz")
}

// 価格が変わったら履歴を1件残して、カートのスナップショットと合計を追従させる
func TestProductUsecase_UpdateProduct_PriceChangeWritesHistoryAndPropagates(t *testing.T) {
	ctx := context.Background()
	uc, _, _, userRepo, r := newProductUsecase()

	userRepo.On("FindByUserName", mock.Anything, "admin").Return(&model.User{ID: 3}, nil)

	r.products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, Name: "Laptop Pro", Quantity: 5, Price: 1000, Discount: 10, SpecialPrice: 900}, nil)
	r.products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == 10 && p.Price == 1200 && p.SpecialPrice == 1080
	})).Return(nil)

	r.histories.On("Create", mock.Anything, mock.MatchedBy(func(h model.PriceHistory) bool {
		return h.ProductID == 10 && h.OldPrice == 1000 && h.NewPrice == 1200 && h.ChangedByID == 3
	})).Return(nil)

	//商品を持つカート明細のスナップショットを更新して合計を取り直す
	r.cartItems.On("ListByProductID", mock.Anything, int64(10)).
		Return([]model.CartItem{{ID: 100, CartID: 7, ProductID: 10, Quantity: 2, ProductPrice: 900}}, nil)
	r.cartItems.On("Update", mock.Anything, mock.MatchedBy(func(item model.CartItem) bool {
		return item.ID == 100 && item.ProductPrice == 1080
	})).Return(nil)
	r.cartItems.On("ListByCartID", mock.Anything, int64(7)).
		Return([]model.CartItem{{ID: 100, CartID: 7, ProductID: 10, Quantity: 2, ProductPrice: 1080}}, nil)
	r.carts.On("UpdateTotal", mock.Anything, int64(7), float64(2160)).Return(nil)

	dto, err := uc.UpdateProduct(ctx, 10, "admin", usecase.ProductInput{
		ProductName: "Laptop Pro",
		Description: "A fast laptop",
		Quantity:    5,
		Price:       1200,
		Discount:    10,
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(1080), dto.SpecialPrice)

	r.histories.AssertExpectations(t)
	r.cartItems.AssertExpectations(t)
	r.carts.AssertExpectations(t)
}

// 価格据え置きなら履歴もカート更新も走らない
func TestProductUsecase_UpdateProduct_SamePriceSkipsHistory(t *testing.T) {
	ctx := context.Background()
	uc, _, _, userRepo, r := newProductUsecase()

	userRepo.On("FindByUserName", mock.Anything, "admin").Return(&model.User{ID: 3}, nil)

	r.products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, Name: "Laptop Pro", Quantity: 5, Price: 1000, Discount: 10, SpecialPrice: 900}, nil)
	r.products.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.UpdateProduct(ctx, 10, "admin", usecase.ProductInput{
		ProductName: "Laptop Pro",
		Description: "A fast laptop",
		Quantity:    5,
		Price:       1000,
		Discount:    10,
	})
	assert.NoError(t, err)

	r.histories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	r.cartItems.AssertNotCalled(t, "ListByProductID", mock.Anything, mock.Anything)
}

// カートに入っている商品の削除。明細を取り除いて合計を減らしてから消す。
func TestProductUsecase_DeleteProduct_RemovesCartItemsFirst(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _, r := newProductUsecase()

	r.products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, Name: "Laptop Pro"}, nil)
	r.cartItems.On("ListByProductID", mock.Anything, int64(10)).
		Return([]model.CartItem{{ID: 100, CartID: 7, ProductID: 10, Quantity: 2, ProductPrice: 900}}, nil)
	r.carts.On("FindByID", mock.Anything, int64(7)).
		Return(model.Cart{ID: 7, TotalPrice: 1800}, nil)
	r.carts.On("UpdateTotal", mock.Anything, int64(7), float64(0)).Return(nil)
	r.cartItems.On("DeleteByID", mock.Anything, int64(100)).Return(nil)
	r.products.On("Delete", mock.Anything, int64(10)).Return(nil)

	dto, err := uc.DeleteProduct(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), dto.ProductID)

	r.carts.AssertExpectations(t)
	r.cartItems.AssertExpectations(t)
	r.products.AssertExpectations(t)
}

func TestProductUsecase_UpdateProductImage(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _, _, _ := newProductUsecase()

	productRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, Name: "Laptop Pro", Image: "default.png"}, nil)
	productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == 10 && p.Image == "abc123.png"
	})).Return(nil)

	dto, err := uc.UpdateProductImage(ctx, 10, "abc123.png")
	assert.NoError(t, err)
	assert.Equal(t, "abc123.png", dto.Image)

	productRepo.AssertExpectations(t)
}
