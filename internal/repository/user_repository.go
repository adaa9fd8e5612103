package repository

import (
	"context"

	"ecshop/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（rolesも同時に紐づける）
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//username からロール込みで1件取得
	FindByUserName(ctx context.Context, userName string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByUserName(ctx context.Context, userName string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type RoleRepository interface {
	FindByName(ctx context.Context, name model.RoleName) (model.Role, error)
	//シード用。無ければ作る
	GetOrCreate(ctx context.Context, name model.RoleName) (model.Role, error)
}
