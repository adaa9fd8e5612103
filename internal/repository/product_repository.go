package repository

import (
	"context"
	"errors"

	"ecshop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ページング・ソート条件。pageは0始まり。
type PageQuery struct {
	Page      int
	Size      int
	SortBy    string
	SortOrder string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q PageQuery) ([]model.Product, int64, error)
	ListByCategoryID(ctx context.Context, categoryID int64, q PageQuery) ([]model.Product, int64, error)
	//name部分一致（大文字小文字無視）
	SearchByName(ctx context.Context, keyword string, q PageQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindByName(ctx context.Context, name string) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error

	// 在庫が足りるときだけ減算。足りなければfalse。
	DecrementStockIfAvailable(ctx context.Context, productID int64, qty int64) (bool, error)
}
