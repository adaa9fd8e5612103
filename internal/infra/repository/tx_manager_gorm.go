package repository

import (
	"context"

	repo "ecshop/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders         repo.OrderRepository
	orderItems     repo.OrderItemRepository
	payments       repo.PaymentRepository
	carts          repo.CartRepository
	cartItems      repo.CartItemRepository
	products       repo.ProductRepository
	addresses      repo.AddressRepository
	priceHistories repo.PriceHistoryRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository                { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository        { return r.orderItems }
func (r *txReposGorm) Payments() repo.PaymentRepository            { return r.payments }
func (r *txReposGorm) Carts() repo.CartRepository                  { return r.carts }
func (r *txReposGorm) CartItems() repo.CartItemRepository          { return r.cartItems }
func (r *txReposGorm) Products() repo.ProductRepository            { return r.products }
func (r *txReposGorm) Addresses() repo.AddressRepository           { return r.addresses }
func (r *txReposGorm) PriceHistories() repo.PriceHistoryRepository { return r.priceHistories }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:         NewOrderGormRepository(tx),
			orderItems:     NewOrderItemGormRepository(tx),
			payments:       NewPaymentGormRepository(tx),
			carts:          NewCartGormRepository(tx),
			cartItems:      NewCartItemGormRepository(tx),
			products:       NewProductGormRepository(tx),
			addresses:      NewAddressGormRepository(tx),
			priceHistories: NewPriceHistoryGormRepository(tx),
		}
		return fn(r)
	})
}
