package repository

import (
	"context"

	"ecshop/internal/domain/model"
)

type CategoryRepository interface {
	List(ctx context.Context, q PageQuery) ([]model.Category, int64, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	FindByName(ctx context.Context, name string) (model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, id int64) error
}
