package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Payments() PaymentRepository
	Carts() CartRepository
	CartItems() CartItemRepository
	Products() ProductRepository
	Addresses() AddressRepository
	PriceHistories() PriceHistoryRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
