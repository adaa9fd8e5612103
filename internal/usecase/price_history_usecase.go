package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	repo "ecshop/internal/repository"
)

type PriceHistoryDTO struct {
	ID                int64     `json:"id"`
	OldPrice          float64   `json:"oldPrice"`
	NewPrice          float64   `json:"newPrice"`
	ChangedAt         time.Time `json:"changedAt"`
	ChangedByUsername string    `json:"changedByUsername"`
	ProductID         int64     `json:"productId"`
	ProductName       string    `json:"productName"`
}

// 書き込みは商品更新トランザクションの中で行うので、ここは読み出しだけ。
type PriceHistoryUsecase struct {
	historyRepo repo.PriceHistoryRepository
	productRepo repo.ProductRepository
	userRepo    repo.UserRepository
}

// DI
func NewPriceHistoryUsecase(
	historyRepo repo.PriceHistoryRepository,
	productRepo repo.ProductRepository,
	userRepo repo.UserRepository,
) *PriceHistoryUsecase {
	return &PriceHistoryUsecase{
		historyRepo: historyRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// 商品の価格履歴をchangedAt降順で返す
func (u *PriceHistoryUsecase) GetHistoryByProduct(ctx context.Context, productID int64) ([]PriceHistoryDTO, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product not found with productId: %d", productID))
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	histories, err := u.historyRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	dtos := make([]PriceHistoryDTO, 0, len(histories))
	for _, h := range histories {
		dto := PriceHistoryDTO{
			ID:          h.ID,
			OldPrice:    h.OldPrice,
			NewPrice:    h.NewPrice,
			ChangedAt:   h.ChangedAt,
			ProductID:   p.ID,
			ProductName: p.Name,
		}

		if changedBy, err := u.userRepo.FindByID(ctx, h.ChangedByID); err == nil {
			dto.ChangedByUsername = changedBy.UserName
		}

		dtos = append(dtos, dto)
	}

	return dtos, nil
}
