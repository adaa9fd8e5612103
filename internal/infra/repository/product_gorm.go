package repository

import (
	"context"
	"errors"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"

	"gorm.io/gorm"
)

var productSortColumns = map[string]string{
	"productId":    "id",
	"productName":  "name",
	"price":        "price",
	"specialPrice": "special_price",
	"quantity":     "quantity",
}

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) List(ctx context.Context, q repo.PageQuery) ([]model.Product, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{})
	return r.page(tx, q)
}

// カテゴリ内は価格昇順を基本にする
func (r *ProductGormRepository) ListByCategoryID(ctx context.Context, categoryID int64, q repo.PageQuery) ([]model.Product, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("category_id = ?", categoryID)
	return r.page(tx, q)
}

func (r *ProductGormRepository) SearchByName(ctx context.Context, keyword string, q repo.PageQuery) ([]model.Product, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("name ILIKE ?", "%"+keyword+"%")
	return r.page(tx, q)
}

func (r *ProductGormRepository) page(tx *gorm.DB, q repo.PageQuery) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	if err := tx.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	if err := applyPage(tx, q, productSortColumns, "id").Find(&products).Error; err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 重複チェック用
func (r *ProductGormRepository) FindByName(ctx context.Context, name string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":          p.Name,
			"description":   p.Description,
			"image":         p.Image,
			"quantity":      p.Quantity,
			"price":         p.Price,
			"discount":      p.Discount,
			"special_price": p.SpecialPrice,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 条件付きUPDATEで同時注文の売り越しを防ぐ
func (r *ProductGormRepository) DecrementStockIfAvailable(ctx context.Context, productID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND quantity >= ?", productID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
