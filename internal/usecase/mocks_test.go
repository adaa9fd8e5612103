package usecase_test

import (
	"context"
	"testing"
	"time"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"
	"ecshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.PageQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) ListByCategoryID(ctx context.Context, categoryID int64, q repo.PageQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, categoryID, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) SearchByName(ctx context.Context, keyword string, q repo.PageQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, keyword, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByName(ctx context.Context, name string) (model.Product, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) DecrementStockIfAvailable(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) List(ctx context.Context, q repo.PageQuery) ([]model.Category, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) FindByName(ctx context.Context, name string) (model.Category, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *CategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByUserEmail(ctx context.Context, email string) (model.Cart, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByEmailAndID(ctx context.Context, email string, cartID int64) (model.Cart, error) {
	args := m.Called(ctx, email, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) ListAll(ctx context.Context) ([]model.Cart, error) {
	args := m.Called(ctx)
	carts, _ := args.Get(0).([]model.Cart)
	return carts, args.Error(1)
}

func (m *CartRepoMock) UpdateTotal(ctx context.Context, cartID int64, total float64) error {
	args := m.Called(ctx, cartID, total)
	return args.Error(0)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartID, productID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.CartItem)
	return created, args.Error(1)
}

func (m *CartItemRepoMock) Update(ctx context.Context, item model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByCartAndProduct(ctx context.Context, cartID int64, productID int64) error {
	args := m.Called(ctx, cartID, productID)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID, items)
	created, _ := args.Get(0).([]model.OrderItem)
	return created, args.Error(1)
}

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) Create(ctx context.Context, payment model.Payment) (model.Payment, error) {
	args := m.Called(ctx, payment)
	created, _ := args.Get(0).(model.Payment)
	return created, args.Error(1)
}

type PriceHistoryRepoMock struct{ mock.Mock }

func (m *PriceHistoryRepoMock) Create(ctx context.Context, h model.PriceHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *PriceHistoryRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.PriceHistory, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.PriceHistory)
	return items, args.Error(1)
}

type AddressRepoMock struct{ mock.Mock }

func (m *AddressRepoMock) Create(ctx context.Context, address model.Address) (model.Address, error) {
	args := m.Called(ctx, address)
	created, _ := args.Get(0).(model.Address)
	return created, args.Error(1)
}

func (m *AddressRepoMock) FindByID(ctx context.Context, addressID int64) (model.Address, error) {
	args := m.Called(ctx, addressID)
	a, _ := args.Get(0).(model.Address)
	return a, args.Error(1)
}

func (m *AddressRepoMock) ListAll(ctx context.Context) ([]model.Address, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.Address)
	return list, args.Error(1)
}

func (m *AddressRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Address, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]model.Address)
	return list, args.Error(1)
}

func (m *AddressRepoMock) Update(ctx context.Context, address model.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *AddressRepoMock) Delete(ctx context.Context, addressID int64) error {
	args := m.Called(ctx, addressID)
	return args.Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	args := m.Called(ctx, userName)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ExistsByUserName(ctx context.Context, userName string) (bool, error) {
	args := m.Called(ctx, userName)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepoMock) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type RoleRepoMock struct{ mock.Mock }

func (m *RoleRepoMock) FindByName(ctx context.Context, name model.RoleName) (model.Role, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(model.Role)
	return r, args.Error(1)
}

func (m *RoleRepoMock) GetOrCreate(ctx context.Context, name model.RoleName) (model.Role, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(model.Role)
	return r, args.Error(1)
}

type IssuerMock struct{ mock.Mock }

func (m *IssuerMock) Issue(username string, email string, roles []string, now time.Time) (string, time.Time, error) {
	args := m.Called(username, email, roles, now)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// =====================
// Txまわりのスタブ
// =====================

// txReposStub はmock束をそのままTxReposとして見せる
type txReposStub struct {
	orders     *OrderRepoMock
	orderItems *OrderItemRepoMock
	payments   *PaymentRepoMock
	carts      *CartRepoMock
	cartItems  *CartItemRepoMock
	products   *ProductRepoMock
	addresses  *AddressRepoMock
	histories  *PriceHistoryRepoMock
}

func newTxReposStub() *txReposStub {
	return &txReposStub{
		orders:     new(OrderRepoMock),
		orderItems: new(OrderItemRepoMock),
		payments:   new(PaymentRepoMock),
		carts:      new(CartRepoMock),
		cartItems:  new(CartItemRepoMock),
		products:   new(ProductRepoMock),
		addresses:  new(AddressRepoMock),
		histories:  new(PriceHistoryRepoMock),
	}
}

func (s *txReposStub) Orders() repo.OrderRepository                { return s.orders }
func (s *txReposStub) OrderItems() repo.OrderItemRepository        { return s.orderItems }
func (s *txReposStub) Payments() repo.PaymentRepository            { return s.payments }
func (s *txReposStub) Carts() repo.CartRepository                  { return s.carts }
func (s *txReposStub) CartItems() repo.CartItemRepository          { return s.cartItems }
func (s *txReposStub) Products() repo.ProductRepository            { return s.products }
func (s *txReposStub) Addresses() repo.AddressRepository           { return s.addresses }
func (s *txReposStub) PriceHistories() repo.PriceHistoryRepository { return s.histories }

// txManagerStub はcommit/rollbackせずfnをそのまま実行する
type txManagerStub struct {
	repos *txReposStub
}

func (m *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

// =====================
// helpers
// =====================

func assertHTTPError(t *testing.T, err error, wantStatus int) *usecase.HTTPError {
	t.Helper()

	assert.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	assert.Equal(t, wantStatus, he.Status)
	return he
}
