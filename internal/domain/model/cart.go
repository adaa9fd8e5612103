package model

import "time"

// カート。1ユーザーにつき1つ。
// TotalPrice は明細の qty×productPrice の合計を常に保つ。
type Cart struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"cartId"`
	UserID     int64     `gorm:"not null;uniqueIndex" json:"-"`
	TotalPrice float64   `gorm:"not null;default:0" json:"totalPrice"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
