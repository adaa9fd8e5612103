package model

import "time"

type RoleName string

// ロールは固定の3種類。起動時にシードする。
const (
	RoleUser   RoleName = "ROLE_USER"
	RoleSeller RoleName = "ROLE_SELLER"
	RoleAdmin  RoleName = "ROLE_ADMIN"
)

type Role struct {
	ID       int64    `gorm:"primaryKey;autoIncrement" json:"roleId"`
	RoleName RoleName `gorm:"type:varchar(20);not null;uniqueIndex" json:"roleName"`
}

// ユーザー。username / email は一意。
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName string `gorm:"type:varchar(20);not null;uniqueIndex" json:"username"`
	Email    string `gorm:"type:varchar(50);not null;uniqueIndex" json:"email"`
	//bcryptハッシュ
	Password string `gorm:"type:varchar(120);not null" json:"-"`

	Roles []Role `gorm:"many2many:user_roles" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
