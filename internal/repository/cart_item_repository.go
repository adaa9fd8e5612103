package repository

import (
	"context"

	"ecshop/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	//価格伝播用。商品を持つ全カートの明細を返す
	ListByProductID(ctx context.Context, productID int64) ([]model.CartItem, error)
	FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error)
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	//数量とスナップショットをまとめて更新
	Update(ctx context.Context, item model.CartItem) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	DeleteByCartAndProduct(ctx context.Context, cartID int64, productID int64) error
}
