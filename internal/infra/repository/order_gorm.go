package repository

import (
	"context"

	"ecshop/internal/domain/model"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return model.Order{}, err
	}
	return order, nil
}

type OrderItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

// 注文明細を一括作成
func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) ([]model.OrderItem, error) {
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

type PaymentGormRepository struct {
	db *gorm.DB
}

// DI
func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, payment model.Payment) (model.Payment, error) {
	if err := r.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return model.Payment{}, err
	}
	return payment, nil
}
