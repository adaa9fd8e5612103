package repository

import (
	"context"
	"errors"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"

	"gorm.io/gorm"
)

type AddressGormRepository struct {
	db *gorm.DB
}

// DI
func NewAddressGormRepository(db *gorm.DB) *AddressGormRepository {
	return &AddressGormRepository{db: db}
}

func (r *AddressGormRepository) Create(ctx context.Context, address model.Address) (model.Address, error) {
	if err := r.db.WithContext(ctx).Create(&address).Error; err != nil {
		return model.Address{}, err
	}
	return address, nil
}

func (r *AddressGormRepository) FindByID(ctx context.Context, addressID int64) (model.Address, error) {
	var a model.Address
	err := r.db.WithContext(ctx).First(&a, addressID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Address{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Address{}, err
	}
	return a, nil
}

func (r *AddressGormRepository) ListAll(ctx context.Context) ([]model.Address, error) {
	var addresses []model.Address
	if err := r.db.WithContext(ctx).Order("id asc").Find(&addresses).Error; err != nil {
		return []model.Address{}, err
	}
	return addresses, nil
}

func (r *AddressGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Address, error) {
	var addresses []model.Address
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&addresses).Error; err != nil {
		return []model.Address{}, err
	}
	return addresses, nil
}

func (r *AddressGormRepository) Update(ctx context.Context, address model.Address) error {
	res := r.db.WithContext(ctx).Model(&model.Address{}).
		Where("id = ?", address.ID).
		Updates(map[string]interface{}{
			"country":       address.Country,
			"city":          address.City,
			"street":        address.Street,
			"pin_code":      address.PinCode,
			"building_name": address.BuildingName,
			"state":         address.State,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *AddressGormRepository) Delete(ctx context.Context, addressID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Address{}, addressID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
