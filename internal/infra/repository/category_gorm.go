package repository

import (
	"context"
	"errors"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"

	"gorm.io/gorm"
)

var categorySortColumns = map[string]string{
	"categoryId":   "id",
	"categoryName": "name",
}

type CategoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

// ページング付き一覧
func (r *CategoryGormRepository) List(ctx context.Context, q repo.PageQuery) ([]model.Category, int64, error) {
	var categories []model.Category
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Category{})

	if err := tx.Count(&total).Error; err != nil {
		return []model.Category{}, 0, err
	}

	if err := applyPage(tx, q, categorySortColumns, "id").Find(&categories).Error; err != nil {
		return []model.Category{}, 0, err
	}

	return categories, total, nil
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

// 重複チェック用
func (r *CategoryGormRepository) FindByName(ctx context.Context, name string) (model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) Update(ctx context.Context, c model.Category) error {
	res := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", c.ID).
		Update("name", c.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CategoryGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
