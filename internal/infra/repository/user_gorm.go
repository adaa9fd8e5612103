package repository

import (
	"context"
	"errors"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"

	"gorm.io/gorm"
)

type UserGormRepository struct {
	db *gorm.DB
}

// DI
func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// rolesの紐付けも同時に保存される
func (r *UserGormRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserGormRepository) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Roles").First(&u, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("user_name = ?", userName).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("email = ?", email).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) ExistsByUserName(ctx context.Context, userName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_name = ?", userName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type RoleGormRepository struct {
	db *gorm.DB
}

// DI
func NewRoleGormRepository(db *gorm.DB) *RoleGormRepository {
	return &RoleGormRepository{db: db}
}

func (r *RoleGormRepository) FindByName(ctx context.Context, name model.RoleName) (model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Where("role_name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Role{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Role{}, err
	}
	return role, nil
}

// シード用。既にあればそれを返す
func (r *RoleGormRepository) GetOrCreate(ctx context.Context, name model.RoleName) (model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Where(model.Role{RoleName: name}).
		FirstOrCreate(&role).Error
	if err != nil {
		return model.Role{}, err
	}
	return role, nil
}
