package repository

import (
	"context"

	"ecshop/internal/domain/model"
)

// 価格履歴は追記と読み出しのみ。
type PriceHistoryRepository interface {
	Create(ctx context.Context, h model.PriceHistory) error
	//changedAt降順
	ListByProductID(ctx context.Context, productID int64) ([]model.PriceHistory, error)
}
