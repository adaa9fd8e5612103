package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"
)

type CategoryDTO struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

type CategoryResponse struct {
	Content       []CategoryDTO `json:"content"`
	PageNumber    int           `json:"pageNumber"`
	PageSize      int           `json:"pageSize"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
	LastPage      bool          `json:"lastPage"`
}

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

func validateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewHTTPError(http.StatusBadRequest, "Category name cannot be empty.")
	}
	if len(strings.TrimSpace(name)) < 5 {
		return NewHTTPError(http.StatusBadRequest, "Category name must be at least 5 characters long.")
	}
	return nil
}

func (u *CategoryUsecase) ListCategories(ctx context.Context, in PageInput) (CategoryResponse, error) {
	if err := validatePageInput(in); err != nil {
		return CategoryResponse{}, err
	}

	categories, total, err := u.categoryRepo.List(ctx, toPageQuery(in))
	if err != nil {
		return CategoryResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(categories) == 0 {
		return CategoryResponse{}, NewHTTPError(http.StatusNotFound, "No categories available.")
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toCategoryDTO(c))
	}

	pages := totalPages(total, in.PageSize)
	return CategoryResponse{
		Content:       dtos,
		PageNumber:    in.PageNumber,
		PageSize:      in.PageSize,
		TotalElements: total,
		TotalPages:    pages,
		LastPage:      in.PageNumber >= pages-1,
	}, nil
}

// 名前重複は409
func (u *CategoryUsecase) CreateCategory(ctx context.Context, name string) (CategoryDTO, error) {
	if err := validateCategoryName(name); err != nil {
		return CategoryDTO{}, err
	}

	if _, err := u.categoryRepo.FindByName(ctx, name); err == nil {
		return CategoryDTO{}, NewHTTPError(http.StatusConflict, fmt.Sprintf("Category with the name %s already exists !!!", name))
	} else if !errors.Is(err, repo.ErrNotFound) {
		return CategoryDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.categoryRepo.Create(ctx, model.Category{Name: name})
	if err != nil {
		return CategoryDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toCategoryDTO(created), nil
}

func (u *CategoryUsecase) UpdateCategory(ctx context.Context, categoryID int64, name string) (CategoryDTO, error) {
	if err := validateCategoryName(name); err != nil {
		return CategoryDTO{}, err
	}

	c, err := u.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return CategoryDTO{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Category not found with categoryId: %d", categoryID))
	}
	if err != nil {
		return CategoryDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c.Name = name
	if err := u.categoryRepo.Update(ctx, c); err != nil {
		return CategoryDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toCategoryDTO(c), nil
}

func (u *CategoryUsecase) DeleteCategory(ctx context.Context, categoryID int64) (CategoryDTO, error) {
	c, err := u.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return CategoryDTO{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Category not found with categoryId: %d", categoryID))
	}
	if err != nil {
		return CategoryDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.categoryRepo.Delete(ctx, categoryID); err != nil {
		return CategoryDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toCategoryDTO(c), nil
}

func toCategoryDTO(c model.Category) CategoryDTO {
	return CategoryDTO{CategoryID: c.ID, CategoryName: c.Name}
}
