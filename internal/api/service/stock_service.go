package service

import (
	"errors"

	"storehub/internal/api/dto"
	"storehub/internal/api/models"
	"storehub/internal/api/repository"

	"gorm.io/gorm"
)

type StockService interface {
	Record(productID int64, req *dto.RecordStockDTO) (*dto.StockMovementResponse, error)
	History(productID int64, page, pageSize int) (*dto.PaginatedStockMovementResponse, error)
}

type stockService struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
}

func NewStockService(stockRepo repository.StockRepository, productRepo repository.ProductRepository) StockService {
	return &stockService{
		stockRepo:   stockRepo,
		productRepo: productRepo,
	}
}

// Record applies a stock delta and writes the matching ledger entry.
func (s *stockService) Record(productID int64, req *dto.RecordStockDTO) (*dto.StockMovementResponse, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := s.productRepo.AdjustStock(productID, req.Delta); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, ErrOutOfStock
		}
		return nil, err
	}

	movement := &models.StockMovement{
		ProductID:  productID,
		SupplierID: req.SupplierID,
		Delta:      req.Delta,
		Reason:     req.Reason,
	}
	if err := s.stockRepo.Record(movement); err != nil {
		return nil, err
	}
	return dto.FromModelToStockMovementResponse(movement), nil
}

func (s *stockService) History(productID int64, page, pageSize int) (*dto.PaginatedStockMovementResponse, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	movements, total, err := s.stockRepo.ListByProduct(productID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StockMovementResponse, 0, len(movements))
	for i := range movements {
		responses = append(responses, *dto.FromModelToStockMovementResponse(&movements[i]))
	}
	return dto.NewPaginatedStockMovementResponse(responses, int(total), page, pageSize), nil
}
