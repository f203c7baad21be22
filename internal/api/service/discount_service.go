package service

import (
	"errors"

	"storehub/internal/api/dto"
	"storehub/internal/api/models"
	"storehub/internal/api/repository"

	"gorm.io/gorm"
)

var ErrDiscountCodeExists = errors.New("discount code already exists")

type DiscountService interface {
	Create(req *dto.CreateDiscountDTO) (*dto.DiscountResponse, error)
	Update(discountID int64, req *dto.UpdateDiscountDTO) (*dto.DiscountResponse, error)
	Delete(discountID int64) error
	List() ([]dto.DiscountResponse, error)
}

type discountService struct {
	discountRepo repository.DiscountRepository
}

func NewDiscountService(discountRepo repository.DiscountRepository) DiscountService {
	return &discountService{discountRepo: discountRepo}
}

func (s *discountService) Create(req *dto.CreateDiscountDTO) (*dto.DiscountResponse, error) {
	if _, err := s.discountRepo.FindByCode(req.Code); err == nil {
		return nil, ErrDiscountCodeExists
	}

	discount := &models.Discount{
		Code:     req.Code,
		Percent:  req.Percent,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Active:   true,
	}
	if err := s.discountRepo.Create(discount); err != nil {
		return nil, err
	}
	return dto.FromModelToDiscountResponse(discount), nil
}

func (s *discountService) Update(discountID int64, req *dto.UpdateDiscountDTO) (*dto.DiscountResponse, error) {
	discount, err := s.discountRepo.GetByID(discountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, err
	}

	if req.Percent != nil {
		discount.Percent = *req.Percent
	}
	if req.StartsAt != nil {
		discount.StartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		discount.EndsAt = req.EndsAt
	}
	if req.Active != nil {
		discount.Active = *req.Active
	}

	if err := s.discountRepo.Update(discount); err != nil {
		return nil, err
	}
	return dto.FromModelToDiscountResponse(discount), nil
}

func (s *discountService) Delete(discountID int64) error {
	if _, err := s.discountRepo.GetByID(discountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDiscountNotFound
		}
		return err
	}
	return s.discountRepo.Delete(discountID)
}

func (s *discountService) List() ([]dto.DiscountResponse, error) {
	discounts, err := s.discountRepo.List()
	if err != nil {
		return nil, err
	}
	responses := make([]dto.DiscountResponse, 0, len(discounts))
	for i := range discounts {
		responses = append(responses, *dto.FromModelToDiscountResponse(&discounts[i]))
	}
	return responses, nil
}
