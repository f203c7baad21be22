package service

import (
	"errors"
	"time"

	"storehub/internal/api/dto"
	"storehub/internal/api/models"
	"storehub/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotOrderOwner     = errors.New("you don't have permission to view this order")
	ErrDiscountNotFound  = errors.New("discount code not found")
	ErrDiscountNotValid  = errors.New("discount code is not currently valid")
	ErrOutOfStock        = errors.New("not enough stock for one of the items")
	ErrInactiveProduct   = errors.New("product is not available")
	ErrBadStatusTransfer = errors.New("order is already closed")
)

type OrderService interface {
	Create(userID string, req *dto.CreateOrderDTO) (*dto.OrderResponse, error)
	GetByID(orderID int64, userID, role string) (*dto.OrderResponse, error)
	ListByUser(userID string, page, pageSize int) (*dto.PaginatedOrderResponse, error)
	ListAll(page, pageSize int) (*dto.PaginatedOrderResponse, error)
	UpdateStatus(orderID int64, status string) (*dto.OrderResponse, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	discountRepo repository.DiscountRepository
	stockRepo    repository.StockRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	discountRepo repository.DiscountRepository,
	stockRepo repository.StockRepository,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		discountRepo: discountRepo,
		stockRepo:    stockRepo,
	}
}

// Create prices the requested items, applies an optional discount code,
// reserves stock, and persists the order.
func (s *orderService) Create(userID string, req *dto.CreateOrderDTO) (*dto.OrderResponse, error) {
	var discount *models.Discount
	if req.DiscountCode != nil {
		found, err := s.discountRepo.FindByCode(*req.DiscountCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDiscountNotFound
			}
			return nil, err
		}
		if !found.CurrentlyValid(time.Now()) {
			return nil, ErrDiscountNotValid
		}
		discount = found
	}

	var items []models.OrderItem
	var total int64
	for _, line := range req.Items {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
		if !product.Active {
			return nil, ErrInactiveProduct
		}
		items = append(items, models.OrderItem{
			ProductID:      product.ID,
			Quantity:       line.Quantity,
			UnitPriceCents: product.PriceCents,
		})
		total += product.PriceCents * int64(line.Quantity)
	}

	if discount != nil {
		total -= total * int64(discount.Percent) / 100
	}

	// Reserve stock line by line; a failed line releases what was taken.
	var reserved []models.OrderItem
	for _, item := range items {
		if err := s.productRepo.AdjustStock(item.ProductID, -item.Quantity); err != nil {
			for _, r := range reserved {
				s.productRepo.AdjustStock(r.ProductID, r.Quantity)
			}
			if errors.Is(err, repository.ErrInsufficientStock) {
				return nil, ErrOutOfStock
			}
			return nil, err
		}
		reserved = append(reserved, item)
		s.stockRepo.Record(&models.StockMovement{
			ProductID: item.ProductID,
			Delta:     -item.Quantity,
			Reason:    "order",
		})
	}

	order := &models.Order{
		UserID:     userID,
		Status:     "pending",
		TotalCents: total,
		Items:      items,
	}
	if discount != nil {
		order.DiscountID = &discount.ID
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToOrderResponse(order), nil
}

func (s *orderService) GetByID(orderID int64, userID, role string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID && !isStaff(role) {
		return nil, ErrNotOrderOwner
	}
	return dto.FromModelToOrderResponse(order), nil
}

func (s *orderService) ListByUser(userID string, page, pageSize int) (*dto.PaginatedOrderResponse, error) {
	orders, total, err := s.orderRepo.ListByUser(userID, page, pageSize)
	if err != nil {
		return nil, err
	}
	return paginateOrders(orders, int(total), page, pageSize), nil
}

func (s *orderService) ListAll(page, pageSize int) (*dto.PaginatedOrderResponse, error) {
	orders, total, err := s.orderRepo.List(page, pageSize)
	if err != nil {
		return nil, err
	}
	return paginateOrders(orders, int(total), page, pageSize), nil
}

// UpdateStatus moves an order along pending -> paid -> shipped, or to
// cancelled. Cancelling a pending order returns its stock.
func (s *orderService) UpdateStatus(orderID int64, status string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.Status == "cancelled" || order.Status == "shipped" {
		return nil, ErrBadStatusTransfer
	}

	if status == "cancelled" {
		for _, item := range order.Items {
			s.productRepo.AdjustStock(item.ProductID, item.Quantity)
			s.stockRepo.Record(&models.StockMovement{
				ProductID: item.ProductID,
				Delta:     item.Quantity,
				Reason:    "correction",
			})
		}
	}

	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}

	order, err = s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToOrderResponse(order), nil
}

func paginateOrders(orders []models.Order, total, page, pageSize int) *dto.PaginatedOrderResponse {
	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *dto.FromModelToOrderResponse(&orders[i]))
	}
	return dto.NewPaginatedOrderResponse(responses, total, page, pageSize)
}
