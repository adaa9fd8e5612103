package repository

import (
	"context"

	"ecshop/internal/domain/model"

	"gorm.io/gorm"
)

type PriceHistoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewPriceHistoryGormRepository(db *gorm.DB) *PriceHistoryGormRepository {
	return &PriceHistoryGormRepository{db: db}
}

// 追記のみ
func (r *PriceHistoryGormRepository) Create(ctx context.Context, h model.PriceHistory) error {
	return r.db.WithContext(ctx).Create(&h).Error
}

// changedAt降順で返す
func (r *PriceHistoryGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.PriceHistory, error) {
	var histories []model.PriceHistory

	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("changed_at desc").
		Find(&histories).Error; err != nil {
		return []model.PriceHistory{}, err
	}

	return histories, nil
}
