package service

import (
	"errors"

	"storehub/internal/api/dto"
	"storehub/internal/api/models"
	"storehub/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrSupplierExists   = errors.New("supplier name already in use")
)

type SupplierService interface {
	Create(req *dto.CreateSupplierDTO) (*dto.SupplierResponse, error)
	Update(supplierID int64, req *dto.UpdateSupplierDTO) (*dto.SupplierResponse, error)
	Delete(supplierID int64) error
	GetByID(supplierID int64) (*dto.SupplierResponse, error)
	List() ([]dto.SupplierResponse, error)
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(supplierRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) Create(req *dto.CreateSupplierDTO) (*dto.SupplierResponse, error) {
	if _, err := s.supplierRepo.GetByName(req.Name); err == nil {
		return nil, ErrSupplierExists
	}

	supplier := &models.Supplier{
		Name:    req.Name,
		Email:   req.Email,
		FeedURL: req.FeedURL,
		Active:  true,
	}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return dto.FromModelToSupplierResponse(supplier), nil
}

func (s *supplierService) Update(supplierID int64, req *dto.UpdateSupplierDTO) (*dto.SupplierResponse, error) {
	supplier, err := s.supplierRepo.GetByID(supplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Email != nil {
		supplier.Email = req.Email
	}
	if req.FeedURL != nil {
		supplier.FeedURL = req.FeedURL
	}
	if req.Active != nil {
		supplier.Active = *req.Active
	}

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return dto.FromModelToSupplierResponse(supplier), nil
}

func (s *supplierService) Delete(supplierID int64) error {
	if _, err := s.supplierRepo.GetByID(supplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return err
	}
	return s.supplierRepo.Delete(supplierID)
}

func (s *supplierService) GetByID(supplierID int64) (*dto.SupplierResponse, error) {
	supplier, err := s.supplierRepo.GetByID(supplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return dto.FromModelToSupplierResponse(supplier), nil
}

func (s *supplierService) List() ([]dto.SupplierResponse, error) {
	suppliers, err := s.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	responses := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, *dto.FromModelToSupplierResponse(&suppliers[i]))
	}
	return responses, nil
}
