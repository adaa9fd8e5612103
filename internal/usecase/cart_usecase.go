package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"
)

// CartDTO のproducts[].quantityは在庫数ではなく注文数量。
// レスポンス互換のための約束で、変えないこと。
type CartDTO struct {
	CartID     int64        `json:"cartId"`
	TotalPrice float64      `json:"totalPrice"`
	Products   []ProductDTO `json:"products"`
}

type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	userRepo     repo.UserRepository
	tx           repo.TransactionManager
}

// DI
func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	userRepo repo.UserRepository,
	tx repo.TransactionManager,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
		tx:           tx,
	}
}

// 在庫0と数量超過は400
func validateProductAvailability(p model.Product, quantity int64) error {
	if p.Quantity == 0 {
		return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is not available", p.Name))
	}
	if p.Quantity < quantity {
		return NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Please, make an order of the %s less than or equal to the quantity %d.", p.Name, p.Quantity))
	}
	return nil
}

// カートに追加。カートは無ければ作る。同一商品の二重追加は409。
// 明細作成と合計更新は1トランザクションで行う。
func (u *CartUsecase) AddProductToCart(ctx context.Context, email string, productID int64, quantity int64) (CartDTO, error) {
	if quantity < 1 {
		return CartDTO{}, NewHTTPError(http.StatusBadRequest, "Quantity must be > 0")
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return CartDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var out CartDTO

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().GetOrCreateByUserID(ctx, user.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		p, err := r.Products().FindByID(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product not found with productId: %d", productID))
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if _, err := r.CartItems().FindByCartAndProduct(ctx, cart.ID, productID); err == nil {
			return NewHTTPError(http.StatusConflict, fmt.Sprintf("Product %s already exists in the cart", p.Name))
		} else if !errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := validateProductAvailability(p, quantity); err != nil {
			return err
		}

		//追加時点の価格・割引率をスナップショット
		item := model.CartItem{
			CartID:       cart.ID,
			ProductID:    p.ID,
			Quantity:     quantity,
			Discount:     p.Discount,
			ProductPrice: p.SpecialPrice,
		}
		if _, err := r.CartItems().Create(ctx, item); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart.TotalPrice += p.SpecialPrice * float64(quantity)
		if err := r.Carts().UpdateTotal(ctx, cart.ID, cart.TotalPrice); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = buildCartDTO(ctx, r.CartItems(), r.Products(), cart)
		return err
	})

	if err != nil {
		return CartDTO{}, err
	}
	return out, nil
}

// ログインユーザーのカート取得
func (u *CartUsecase) GetUserCart(ctx context.Context, email string) (CartDTO, error) {
	cart, err := u.cartRepo.FindByUserEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return CartDTO{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Cart not found with email: %s", email))
	}
	if err != nil {
		return CartDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return buildCartDTO(ctx, u.cartItemRepo, u.productRepo, cart)
}

// 全カート一覧（管理用）
func (u *CartUsecase) GetAllCarts(ctx context.Context) ([]CartDTO, error) {
	carts, err := u.cartRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(carts) == 0 {
		return nil, NewHTTPError(http.StatusNotFound, "No cart exists")
	}

	dtos := make([]CartDTO, 0, len(carts))
	for _, cart := range carts {
		dto, err := buildCartDTO(ctx, u.cartItemRepo, u.productRepo, cart)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

// 数量変更。deltaは符号付きで、結果が0以下なら明細ごと削除する。
// 明細と合計の更新は1トランザクションで行う。
func (u *CartUsecase) UpdateProductQuantity(ctx context.Context, email string, productID int64, delta int64) (CartDTO, error) {
	var out CartDTO

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByUserEmail(ctx, email)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Cart not found with email: %s", email))
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		p, err := r.Products().FindByID(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product not found with productId: %d", productID))
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := validateProductAvailability(p, delta); err != nil {
			return err
		}

		item, err := r.CartItems().FindByCartAndProduct(ctx, cart.ID, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Product %s not available in the cart!!!", p.Name))
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		newQuantity := item.Quantity + delta

		if newQuantity <= 0 {
			//明細削除。合計はスナップショット価格で戻す
			cart.TotalPrice -= item.ProductPrice * float64(item.Quantity)
			if err := r.CartItems().DeleteByID(ctx, item.ID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		} else {
			//スナップショットを現在価格に差し替えてから数量を更新
			item.Quantity = newQuantity
			item.Discount = p.Discount
			item.ProductPrice = p.SpecialPrice
			if err := r.CartItems().Update(ctx, item); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			cart.TotalPrice += p.SpecialPrice * float64(delta)
		}

		if err := r.Carts().UpdateTotal(ctx, cart.ID, cart.TotalPrice); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = buildCartDTO(ctx, r.CartItems(), r.Products(), cart)
		return err
	})

	if err != nil {
		return CartDTO{}, err
	}
	return out, nil
}

// 明細削除。カートは本人のものだけ対象で、他人のcartIdは404。
// 合計は保存済みスナップショット価格で減らす。
func (u *CartUsecase) RemoveProductFromCart(ctx context.Context, email string, cartID int64, productID int64) (string, error) {
	var msg string

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByEmailAndID(ctx, email, cartID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Cart not found with cartId: %d", cartID))
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		p, err := r.Products().FindByID(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product not found with productId: %d", productID))
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		item, err := r.CartItems().FindByCartAndProduct(ctx, cartID, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product %s not available in the cart!!!", p.Name))
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		newTotal := cart.TotalPrice - item.ProductPrice*float64(item.Quantity)
		if err := r.Carts().UpdateTotal(ctx, cartID, newTotal); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.CartItems().DeleteByCartAndProduct(ctx, cartID, productID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		msg = fmt.Sprintf("Product %s removed from the cart !!!", p.Name)
		return nil
	})

	if err != nil {
		return "", err
	}
	return msg, nil
}

// 明細をまとめてCartDTOを作る。products[].quantityは注文数量を入れる。
// 更新系からはトランザクション内のリポジトリを渡して呼ぶ。
func buildCartDTO(ctx context.Context, cartItems repo.CartItemRepository, products repo.ProductRepository, cart model.Cart) (CartDTO, error) {
	items, err := cartItems.ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	views := make([]ProductDTO, 0, len(items))
	for _, item := range items {
		p, err := products.FindByID(ctx, item.ProductID)
		if err != nil {
			continue
		}

		dto := toProductDTO(p)
		dto.Quantity = item.Quantity
		views = append(views, dto)
	}

	return CartDTO{
		CartID:     cart.ID,
		TotalPrice: cart.TotalPrice,
		Products:   views,
	}, nil
}
