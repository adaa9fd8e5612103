package repository

import (
	"context"

	"ecshop/internal/domain/model"
)

// 住所(Address)を保存・取得する窓口
type AddressRepository interface {
	Create(ctx context.Context, address model.Address) (model.Address, error)
	FindByID(ctx context.Context, addressID int64) (model.Address, error)
	ListAll(ctx context.Context) ([]model.Address, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Address, error)
	Update(ctx context.Context, address model.Address) error
	Delete(ctx context.Context, addressID int64) error
}
