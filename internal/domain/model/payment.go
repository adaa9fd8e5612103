package model

import "time"

// 支払い。注文と1:1。
// pg〜はゲートウェイ側から渡された値をそのまま保存する。
type Payment struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"paymentId"`
	OrderID           int64     `gorm:"not null;uniqueIndex" json:"-"`
	PaymentMethod     string    `gorm:"type:varchar(50);not null" json:"paymentMethod"`
	PgPaymentID       string    `gorm:"type:varchar(255)" json:"pgPaymentId"`
	PgStatus          string    `gorm:"type:varchar(50)" json:"pgStatus"`
	PgResponseMessage string    `gorm:"type:varchar(255)" json:"pgResponseMessage"`
	PgName            string    `gorm:"type:varchar(100)" json:"pgName"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
