package model

import "time"

// 価格変更の履歴。追記のみで更新・削除しない。
type PriceHistory struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   int64     `gorm:"not null;index" json:"productId"`
	OldPrice    float64   `gorm:"not null" json:"oldPrice"`
	NewPrice    float64   `gorm:"not null" json:"newPrice"`
	ChangedAt   time.Time `gorm:"not null;index" json:"changedAt"`
	ChangedByID int64     `gorm:"not null" json:"-"`
}
