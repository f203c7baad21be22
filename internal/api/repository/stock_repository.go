package repository

import (
	"storehub/internal/api/models"

	"gorm.io/gorm"
)

type StockRepository interface {
	Record(movement *models.StockMovement) error
	ListByProduct(productID int64, page, pageSize int) ([]models.StockMovement, int64, error)
}

type stockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) Record(movement *models.StockMovement) error {
	return r.db.Create(movement).Error
}

func (r *stockRepository) ListByProduct(productID int64, page, pageSize int) ([]models.StockMovement, int64, error) {
	var movements []models.StockMovement
	var total int64

	if err := r.db.Model(&models.StockMovement{}).Where("product_id = ?", productID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Where("product_id = ?", productID).
		Preload("Supplier").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&movements).Error
	if err != nil {
		return nil, 0, err
	}

	return movements, total, nil
}
