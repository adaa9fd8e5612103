package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	UserName string
	Email    string
	Password string
	Roles    []model.RoleName
}

// デモ用アカウント。既存なら何もしない
var demoUsers = []seedUser{
	{UserName: "user1", Email: "user1@example.com", Password: "password1", Roles: []model.RoleName{model.RoleUser}},
	{UserName: "seller1", Email: "seller1@example.com", Password: "password2", Roles: []model.RoleName{model.RoleSeller}},
	{UserName: "admin", Email: "admin@example.com", Password: "adminPass", Roles: []model.RoleName{model.RoleUser, model.RoleSeller, model.RoleAdmin}},
}

// 起動時シード。何度実行しても結果は同じ
func Seed(ctx context.Context, users repo.UserRepository, roles repo.RoleRepository, carts repo.CartRepository, log zerolog.Logger) error {
	roleByName := make(map[model.RoleName]model.Role, 3)
	for _, name := range []model.RoleName{model.RoleUser, model.RoleSeller, model.RoleAdmin} {
		r, err := roles.GetOrCreate(ctx, name)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
		roleByName[name] = r
	}

	for _, su := range demoUsers {
		_, err := users.FindByUserName(ctx, su.UserName)
		if err == nil {
			continue
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("seed user %s: %w", su.UserName, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", su.UserName, err)
		}

		user := model.User{
			UserName: su.UserName,
			Email:    su.Email,
			Password: string(hash),
		}
		for _, name := range su.Roles {
			user.Roles = append(user.Roles, roleByName[name])
		}

		if err := users.Create(ctx, &user); err != nil {
			return fmt.Errorf("seed user %s: %w", su.UserName, err)
		}

		// デモユーザーには空カートも用意する
		if _, err := carts.GetOrCreateByUserID(ctx, user.ID); err != nil {
			return fmt.Errorf("seed cart for %s: %w", su.UserName, err)
		}

		log.Info().Str("user", su.UserName).Msg("seeded demo user")
	}

	return nil
}
