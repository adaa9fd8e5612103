package repository

import (
	"context"

	"ecshop/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) ([]model.OrderItem, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment model.Payment) (model.Payment, error)
}
