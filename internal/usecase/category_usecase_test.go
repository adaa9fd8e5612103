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

func TestCategoryUsecase_CreateCategory_Success(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(categoryRepo)

	categoryRepo.On("FindByName", mock.Anything, "Electronics").Return(model.Category{}, repo.ErrNotFound)
	categoryRepo.On("Create", mock.Anything, model.Category{Name: "Electronics"}).
		Return(model.Category{ID: 1, Name: "Electronics"}, nil)

	dto, err := uc.CreateCategory(ctx, "Electronics")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), dto.CategoryID)
	assert.Equal(t, "Electronics", dto.CategoryName)

	categoryRepo.AssertExpectations(t)
}

func TestCategoryUsecase_CreateCategory_Duplicate(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(categoryRepo)

	categoryRepo.On("FindByName", mock.Anything, "Electronics").
		Return(model.Category{ID: 1, Name: "Electronics"}, nil)

	_, err := uc.CreateCategory(ctx, "Electronics")
	assertHTTPError(t, err, 409)

	categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryUsecase_CreateCategory_NameTooShort(t *testing.T) {
	uc := usecase.NewCategoryUsecase(new(CategoryRepoMock))

	_, err := uc.CreateCategory(context.Background(), "abc")

	he := assertHTTPError(t, err, 400)
	assert.Equal(t, "Category name must be at least 5 characters long.", he.Message)
}

func TestCategoryUsecase_ListCategories_EmptyIsNotFound(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(categoryRepo)

	categoryRepo.On("List", mock.Anything, mock.Anything).Return([]model.Category{}, int64(0), nil)

	_, err := uc.ListCategories(ctx, usecase.PageInput{PageNumber: 0, PageSize: 10, SortBy: "id", SortOrder: "asc"})

	he := assertHTTPError(t, err, 404)
	assert.Equal(t, "No categories available.", he.Message)
}

func TestCategoryUsecase_UpdateCategory_NotFound(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(categoryRepo)

	categoryRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.UpdateCategory(ctx, 99, "Electronics")
	assertHTTPError(t, err, 404)
}

func TestCategoryUsecase_DeleteCategory_Success(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(categoryRepo)

	categoryRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Category{ID: 1, Name: "Electronics"}, nil)
	categoryRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	dto, err := uc.DeleteCategory(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Electronics", dto.CategoryName)

	categoryRepo.AssertExpectations(t)
}
