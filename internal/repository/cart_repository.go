package repository

import (
	"context"

	"ecshop/internal/domain/model"
)

type CartRepository interface {
	//無ければ作る（1ユーザー1カート）
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error)
	FindByID(ctx context.Context, cartID int64) (model.Cart, error)
	FindByUserEmail(ctx context.Context, email string) (model.Cart, error)
	FindByEmailAndID(ctx context.Context, email string, cartID int64) (model.Cart, error)
	ListAll(ctx context.Context) ([]model.Cart, error)
	UpdateTotal(ctx context.Context, cartID int64, total float64) error
}
