package model

import "time"

// 商品。
// SpecialPrice は price - price*discount/100 の導出値で、
// 価格・割引率が変わるたびに再計算して保存する。
type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"productId"`
	Name        string `gorm:"type:varchar(255);not null;index" json:"productName"`
	Image       string `gorm:"type:varchar(255);not null" json:"image"`
	Description string `gorm:"type:text;not null" json:"description"`

	//在庫数
	Quantity int64 `gorm:"not null" json:"quantity"`

	Price        float64 `gorm:"not null" json:"price"`
	Discount     float64 `gorm:"not null" json:"discount"`
	SpecialPrice float64 `gorm:"not null" json:"specialPrice"`

	CategoryID int64 `gorm:"not null;index" json:"-"`
	//出品者
	UserID int64 `gorm:"index" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
