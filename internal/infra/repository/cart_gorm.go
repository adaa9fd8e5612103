package repository

import (
	"context"
	"errors"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// ユーザーのカートを取得し、無ければ作成
func (r *CartGormRepository) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	var cart model.Cart

	//トランザクションで探す→無ければ作る
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&cart).Error

		if findErr == nil {
			return nil
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		newCart := model.Cart{UserID: userID, TotalPrice: 0}
		if err := tx.Create(&newCart).Error; err != nil {
			//同時作成に負けたら取り直す
			retryErr := tx.Where("user_id = ?", userID).First(&cart).Error
			if retryErr == nil {
				return nil
			}
			return err
		}

		cart = newCart
		return nil
	})

	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

func (r *CartGormRepository) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).First(&cart, cartID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

func (r *CartGormRepository) FindByUserEmail(ctx context.Context, email string) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Joins("join users on users.id = carts.user_id").
		Where("users.email = ?", email).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

func (r *CartGormRepository) FindByEmailAndID(ctx context.Context, email string, cartID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Joins("join users on users.id = carts.user_id").
		Where("users.email = ? AND carts.id = ?", email, cartID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

func (r *CartGormRepository) ListAll(ctx context.Context) ([]model.Cart, error) {
	var carts []model.Cart
	if err := r.db.WithContext(ctx).Order("id asc").Find(&carts).Error; err != nil {
		return []model.Cart{}, err
	}
	return carts, nil
}

func (r *CartGormRepository) UpdateTotal(ctx context.Context, cartID int64, total float64) error {
	res := r.db.WithContext(ctx).Model(&model.Cart{}).
		Where("id = ?", cartID).
		Update("total_price", total)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
