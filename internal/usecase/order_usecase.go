package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"
)

type PlaceOrderInput struct {
	PaymentMethod     string
	AddressID         int64  `json:"addressId"`
	PgName            string `json:"pgName"`
	PgPaymentID       string `json:"pgPaymentId"`
	PgStatus          string `json:"pgStatus"`
	PgResponseMessage string `json:"pgResponseMessage"`
}

type PaymentDTO struct {
	PaymentID         int64  `json:"paymentId"`
	PaymentMethod     string `json:"paymentMethod"`
	PgPaymentID       string `json:"pgPaymentId"`
	PgStatus          string `json:"pgStatus"`
	PgResponseMessage string `json:"pgResponseMessage"`
	PgName            string `json:"pgName"`
}

// OrderItemの product.quantity は注文数量ではなく減算後の残在庫。
// カート側と逆だがレスポンス互換のための約束。
type OrderItemDTO struct {
	OrderItemID         int64      `json:"orderItemId"`
	Product             ProductDTO `json:"product"`
	Quantity            int64      `json:"quantity"`
	Discount            float64    `json:"discount"`
	OrderedProductPrice float64    `json:"orderedProductPrice"`
}

type OrderDTO struct {
	OrderID     int64          `json:"orderId"`
	Email       string         `json:"email"`
	OrderItems  []OrderItemDTO `json:"orderItemsDTO"`
	OrderDate   time.Time      `json:"orderDate"`
	Payment     PaymentDTO     `json:"paymentDTO"`
	TotalAmount float64        `json:"totalAmount"`
	OrderStatus string         `json:"orderStatus"`
	AddressID   int64          `json:"addressId"`
}

type OrderUsecase struct {
	tx repo.TransactionManager
}

// DI
func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

// 注文確定。注文・支払い・明細作成、在庫減算、カート空にする、までを
// 1トランザクションで行う。途中で失敗したら全部戻す。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, email string, in PlaceOrderInput) (OrderDTO, error) {
	var out OrderDTO

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByUserEmail(ctx, email)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Cart not found with email: %s", email))
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if _, err := r.Addresses().FindByID(ctx, in.AddressID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Address not found with addressId: %d", in.AddressID))
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "Cart is empty")
		}

		//注文本体。合計はカートの現在値をそのまま写す
		order, err := r.Orders().Create(ctx, model.Order{
			Email:       email,
			OrderDate:   time.Now(),
			TotalAmount: cart.TotalPrice,
			OrderStatus: model.OrderStatusAccepted,
			AddressID:   in.AddressID,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//支払いは注文と1:1
		payment, err := r.Payments().Create(ctx, model.Payment{
			OrderID:           order.ID,
			PaymentMethod:     in.PaymentMethod,
			PgPaymentID:       in.PgPaymentID,
			PgStatus:          in.PgStatus,
			PgResponseMessage: in.PgResponseMessage,
			PgName:            in.PgName,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カート明細を注文明細としてスナップショット
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		for _, ci := range cartItems {
			orderItems = append(orderItems, model.OrderItem{
				ProductID:           ci.ProductID,
				Quantity:            ci.Quantity,
				Discount:            ci.Discount,
				OrderedProductPrice: ci.ProductPrice,
			})
		}
		orderItems, err = r.OrderItems().CreateBulk(ctx, order.ID, orderItems)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//在庫減算とカート明細の削除
		itemDTOs := make([]OrderItemDTO, 0, len(orderItems))
		for i, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product not found with productId: %d", ci.ProductID))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//条件付きUPDATE。足りなければ全体をロールバック
			ok, err := r.Products().DecrementStockIfAvailable(ctx, ci.ProductID, ci.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("Please, make an order of the %s less than or equal to the quantity %d.", p.Name, p.Quantity))
			}

			if err := r.CartItems().DeleteByID(ctx, ci.ID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//レスポンスのquantityは減算後の残在庫
			dto := toProductDTO(p)
			dto.Quantity = p.Quantity - ci.Quantity

			itemDTOs = append(itemDTOs, OrderItemDTO{
				OrderItemID:         orderItems[i].ID,
				Product:             dto,
				Quantity:            orderItems[i].Quantity,
				Discount:            orderItems[i].Discount,
				OrderedProductPrice: orderItems[i].OrderedProductPrice,
			})
		}

		//合計はゼロに戻す（明細削除だけだと古い合計が残る）
		if err := r.Carts().UpdateTotal(ctx, cart.ID, 0); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderDTO{
			OrderID:     order.ID,
			Email:       order.Email,
			OrderItems:  itemDTOs,
			OrderDate:   order.OrderDate,
			Payment:     toPaymentDTO(payment),
			TotalAmount: order.TotalAmount,
			OrderStatus: order.OrderStatus,
			AddressID:   in.AddressID,
		}
		return nil
	})

	if err != nil {
		return OrderDTO{}, err
	}
	return out, nil
}

func toPaymentDTO(p model.Payment) PaymentDTO {
	return PaymentDTO{
		PaymentID:         p.ID,
		PaymentMethod:     p.PaymentMethod,
		PgPaymentID:       p.PgPaymentID,
		PgStatus:          p.PgStatus,
		PgResponseMessage: p.PgResponseMessage,
		PgName:            p.PgName,
	}
}
