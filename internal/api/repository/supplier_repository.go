package repository

import (
	"storehub/internal/api/models"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *models.Supplier) error
	Update(supplier *models.Supplier) error
	Delete(supplierID int64) error
	GetByID(supplierID int64) (*models.Supplier, error)
	GetByName(name string) (*models.Supplier, error)
	List() ([]models.Supplier, error)
	ListWithFeeds() ([]models.Supplier, error)
}

type supplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(supplier *models.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepository) Update(supplier *models.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepository) Delete(supplierID int64) error {
	return r.db.Delete(&models.Supplier{}, supplierID).Error
}

func (r *supplierRepository) GetByID(supplierID int64) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, supplierID).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) GetByName(name string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.Where("name = ?", name).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) List() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.Order("name").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// ListWithFeeds returns the active suppliers the sync worker should poll.
func (r *supplierRepository) ListWithFeeds() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.db.Where("active = true AND feed_url IS NOT NULL").Find(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}
