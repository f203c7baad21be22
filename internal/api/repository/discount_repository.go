package repository

import (
	"storehub/internal/api/models"

	"gorm.io/gorm"
)

type DiscountRepository interface {
	Create(discount *models.Discount) error
	Update(discount *models.Discount) error
	Delete(discountID int64) error
	GetByID(discountID int64) (*models.Discount, error)
	FindByCode(code string) (*models.Discount, error)
	List() ([]models.Discount, error)
}

type discountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &discountRepository{db: db}
}

func (r *discountRepository) Create(discount *models.Discount) error {
	return r.db.Create(discount).Error
}

func (r *discountRepository) Update(discount *models.Discount) error {
	return r.db.Save(discount).Error
}

func (r *discountRepository) Delete(discountID int64) error {
	return r.db.Delete(&models.Discount{}, discountID).Error
}

func (r *discountRepository) GetByID(discountID int64) (*models.Discount, error) {
	var discount models.Discount
	if err := r.db.First(&discount, discountID).Error; err != nil {
		return nil, err
	}
	return &discount, nil
}

func (r *discountRepository) FindByCode(code string) (*models.Discount, error) {
	var discount models.Discount
	if err := r.db.Where("code = ?", code).First(&discount).Error; err != nil {
		return nil, err
	}
	return &discount, nil
}

func (r *discountRepository) List() ([]models.Discount, error) {
	var discounts []models.Discount
	if err := r.db.Order("created_at DESC").Find(&discounts).Error; err != nil {
		return nil, err
	}
	return discounts, nil
}
