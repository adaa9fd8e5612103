package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"
)

type AddressDTO struct {
	AddressID    int64  `json:"addressId"`
	Country      string `json:"country"`
	City         string `json:"city"`
	Street       string `json:"street"`
	PinCode      string `json:"pinCode"`
	BuildingName string `json:"buildingName"`
	State        string `json:"state"`
}

type AddressInput struct {
	Country      string `json:"country"`
	City         string `json:"city"`
	Street       string `json:"street"`
	PinCode      string `json:"pinCode"`
	BuildingName string `json:"buildingName"`
	State        string `json:"state"`
}

type AddressUsecase struct {
	addressRepo repo.AddressRepository
	userRepo    repo.UserRepository
}

// DI
func NewAddressUsecase(addressRepo repo.AddressRepository, userRepo repo.UserRepository) *AddressUsecase {
	return &AddressUsecase{addressRepo: addressRepo, userRepo: userRepo}
}

func validateAddressField(value string, minLength int, propertyName string) error {
	if strings.TrimSpace(value) == "" {
		return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("The value of '%s' cannot be empty.", propertyName))
	}
	if len(strings.TrimSpace(value)) < minLength {
		return NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("The value of '%s' must be at least %d characters.", propertyName, minLength))
	}
	return nil
}

func validateAddressInput(in AddressInput) error {
	if err := validateAddressField(in.Country, 2, "country"); err != nil {
		return err
	}
	if err := validateAddressField(in.City, 4, "city"); err != nil {
		return err
	}
	if err := validateAddressField(in.Street, 5, "street"); err != nil {
		return err
	}
	if err := validateAddressField(in.PinCode, 5, "pin code"); err != nil {
		return err
	}
	if err := validateAddressField(in.BuildingName, 5, "building name"); err != nil {
		return err
	}
	return validateAddressField(in.State, 2, "state")
}

// ログインユーザーに紐づけて住所を作成
func (u *AddressUsecase) CreateAddress(ctx context.Context, email string, in AddressInput) (AddressDTO, error) {
	if err := validateAddressInput(in); err != nil {
		return AddressDTO{}, err
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return AddressDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	created, err := u.addressRepo.Create(ctx, model.Address{
		Country:      in.Country,
		City:         in.City,
		Street:       in.Street,
		PinCode:      in.PinCode,
		BuildingName: in.BuildingName,
		State:        in.State,
		UserID:       user.ID,
	})
	if err != nil {
		return AddressDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toAddressDTO(created), nil
}

func (u *AddressUsecase) GetAddresses(ctx context.Context) ([]AddressDTO, error) {
	addresses, err := u.addressRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(addresses) == 0 {
		return nil, NewHTTPError(http.StatusNotFound, "No addresses available.")
	}

	return toAddressDTOs(addresses), nil
}

func (u *AddressUsecase) GetAddressByID(ctx context.Context, addressID int64) (AddressDTO, error) {
	a, err := u.addressRepo.FindByID(ctx, addressID)
	if errors.Is(err, repo.ErrNotFound) {
		return AddressDTO{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Address not found with addressId: %d", addressID))
	}
	if err != nil {
		return AddressDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toAddressDTO(a), nil
}

// ログインユーザーの住所一覧
func (u *AddressUsecase) GetUserAddresses(ctx context.Context, email string) ([]AddressDTO, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	addresses, err := u.addressRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(addresses) == 0 {
		return nil, NewHTTPError(http.StatusNotFound, "No addresses available.")
	}

	return toAddressDTOs(addresses), nil
}

func (u *AddressUsecase) UpdateAddress(ctx context.Context, addressID int64, in AddressInput) (AddressDTO, error) {
	a, err := u.addressRepo.FindByID(ctx, addressID)
	if errors.Is(err, repo.ErrNotFound) {
		return AddressDTO{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Address not found with addressId: %d", addressID))
	}
	if err != nil {
		return AddressDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := validateAddressInput(in); err != nil {
		return AddressDTO{}, err
	}

	a.Country = in.Country
	a.City = in.City
	a.Street = in.Street
	a.PinCode = in.PinCode
	a.BuildingName = in.BuildingName
	a.State = in.State

	if err := u.addressRepo.Update(ctx, a); err != nil {
		return AddressDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toAddressDTO(a), nil
}

func (u *AddressUsecase) DeleteAddress(ctx context.Context, addressID int64) (AddressDTO, error) {
	a, err := u.addressRepo.FindByID(ctx, addressID)
	if errors.Is(err, repo.ErrNotFound) {
		return AddressDTO{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Address not found with addressId: %d", addressID))
	}
	if err != nil {
		return AddressDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.addressRepo.Delete(ctx, addressID); err != nil {
		return AddressDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toAddressDTO(a), nil
}

func toAddressDTO(a model.Address) AddressDTO {
	return AddressDTO{
		AddressID:    a.ID,
		Country:      a.Country,
		City:         a.City,
		Street:       a.Street,
		PinCode:      a.PinCode,
		BuildingName: a.BuildingName,
		State:        a.State,
	}
}

func toAddressDTOs(addresses []model.Address) []AddressDTO {
	dtos := make([]AddressDTO, 0, len(addresses))
	for _, a := range addresses {
		dtos = append(dtos, toAddressDTO(a))
	}
	return dtos
}
