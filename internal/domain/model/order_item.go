package model

import "time"

// 注文明細。確定時のカート明細のスナップショット。
type OrderItem struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"orderItemId"`
	OrderID             int64     `gorm:"not null;index" json:"-"`
	ProductID           int64     `gorm:"not null;index" json:"-"`
	Quantity            int64     `gorm:"not null" json:"quantity"`
	Discount            float64   `gorm:"not null" json:"discount"`
	OrderedProductPrice float64   `gorm:"not null" json:"orderedProductPrice"`
	CreatedAt           time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
