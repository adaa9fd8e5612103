package model

import "time"

// 商品カテゴリ。nameは一意。
type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"categoryId"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"categoryName"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
