package repository

import (
	"errors"

	"storehub/internal/api/models"

	"gorm.io/gorm"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type ProductRepository interface {
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(productID int64) error
	GetByID(productID int64) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	List(page, pageSize int) ([]models.Product, int64, error)
	Search(query string, page, pageSize int) ([]models.Product, int64, error)
	AdjustStock(productID int64, delta int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(productID int64) error {
	return r.db.Delete(&models.Product{}, productID).Error
}

func (r *productRepository) GetByID(productID int64) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("id = ?", productID).
		Preload("Supplier").
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("slug = ?", slug).
		Preload("Supplier").
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(page, pageSize int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := r.db.Model(&models.Product{}).Where("active = true").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Where("active = true").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) Search(query string, page, pageSize int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64
	pattern := "%" + query + "%"

	base := r.db.Model(&models.Product{}).Where("active = true AND name ILIKE ?", pattern)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Where("active = true AND name ILIKE ?", pattern).
		Order("name").
		Limit(pageSize).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// AdjustStock applies a delta to a product's stock quantity, refusing to go
// negative.
func (r *productRepository) AdjustStock(productID int64, delta int) error {
	result := r.db.Model(&models.Product{}).
		Where("id = ? AND stock_qty + ? >= 0", productID, delta).
		Update("stock_qty", gorm.Expr("stock_qty + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
