package model

import "time"

// 注文確定時の固定ステータス。
const OrderStatusAccepted = "Order Accepted !"

// 注文。チェックアウト時点のスナップショットで、作成後は変更しない。
type Order struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"orderId"`
	Email       string    `gorm:"type:varchar(255);not null;index" json:"email"`
	OrderDate   time.Time `gorm:"not null" json:"orderDate"`
	TotalAmount float64   `gorm:"not null" json:"totalAmount"`
	OrderStatus string    `gorm:"type:varchar(50);not null" json:"orderStatus"`
	AddressID   int64     `gorm:"not null" json:"addressId"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
