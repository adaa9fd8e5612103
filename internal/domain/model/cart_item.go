package model

import "time"

// カート明細。
// ProductPrice / Discount は追加時点のスナップショット。
// 商品価格が変わったときは明細側も更新する。
type CartItem struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"cartItemId"`
	CartID       int64     `gorm:"not null;index:idx_cart_product,unique" json:"-"`
	ProductID    int64     `gorm:"not null;index:idx_cart_product,unique" json:"-"`
	Quantity     int64     `gorm:"not null" json:"quantity"`
	Discount     float64   `gorm:"not null" json:"discount"`
	ProductPrice float64   `gorm:"not null" json:"productPrice"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
