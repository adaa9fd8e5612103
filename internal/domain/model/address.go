package model

import "time"

// 配送先住所
type Address struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"addressId"`
	Country      string    `gorm:"type:varchar(100);not null" json:"country"`
	City         string    `gorm:"type:varchar(255);not null" json:"city"`
	Street       string    `gorm:"type:varchar(255);not null" json:"street"`
	PinCode      string    `gorm:"type:varchar(20);not null" json:"pinCode"`
	BuildingName string    `gorm:"type:varchar(255);not null" json:"buildingName"`
	State        string    `gorm:"type:varchar(100);not null" json:"state"`
	UserID       int64     `gorm:"not null;index" json:"-"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
