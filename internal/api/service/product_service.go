package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storehub/internal/api/cache"
	"storehub/internal/api/dto"
	"storehub/internal/api/models"
	"storehub/internal/api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(req *dto.CreateProductDTO) (*dto.ProductResponse, error)
	Update(productID int64, req *dto.UpdateProductDTO) (*dto.ProductResponse, error)
	Delete(productID int64) error
	GetByID(productID int64) (*dto.ProductResponse, error)
	List(ctx context.Context, page, pageSize int) (*dto.PaginatedProductResponse, error)
	Search(query string, page, pageSize int) (*dto.PaginatedProductResponse, error)
}

type productService struct {
	productRepo repository.ProductRepository
	cache       *cache.ProductCache
}

func NewProductService(productRepo repository.ProductRepository, productCache *cache.ProductCache) ProductService {
	return &productService{
		productRepo: productRepo,
		cache:       productCache,
	}
}

func (s *productService) Create(req *dto.CreateProductDTO) (*dto.ProductResponse, error) {
	slug := req.Slug
	if slug == nil {
		generated := slugify(req.Name)
		slug = &generated
	}
	// Keep slugs unique without a retry loop
	if _, err := s.productRepo.GetBySlug(*slug); err == nil {
		unique := fmt.Sprintf("%s-%s", *slug, uuid.New().String()[:8])
		slug = &unique
	}

	product := &models.Product{
		Slug:        slug,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		StockQty:    req.StockQty,
		SupplierID:  req.SupplierID,
		ImageURL:    req.ImageURL,
		Active:      true,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.cache.Invalidate(context.Background())
	return dto.FromModelToProductResponse(product), nil
}

func (s *productService) Update(productID int64, req *dto.UpdateProductDTO) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.PriceCents != nil {
		product.PriceCents = *req.PriceCents
	}
	if req.SupplierID != nil {
		product.SupplierID = req.SupplierID
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	s.cache.Invalidate(context.Background())
	return dto.FromModelToProductResponse(product), nil
}

func (s *productService) Delete(productID int64) error {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if err := s.productRepo.Delete(productID); err != nil {
		return err
	}
	s.cache.Invalidate(context.Background())
	return nil
}

func (s *productService) GetByID(productID int64) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return dto.FromModelToProductResponse(product), nil
}

// List serves the storefront's product grid, preferring the Redis cache.
func (s *productService) List(ctx context.Context, page, pageSize int) (*dto.PaginatedProductResponse, error) {
	if cached := s.cache.GetList(ctx, page, pageSize); cached != nil {
		return cached, nil
	}

	products, total, err := s.productRepo.List(page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *dto.FromModelToProductResponse(&products[i]))
	}

	resp := dto.NewPaginatedProductResponse(responses, int(total), page, pageSize)
	s.cache.SetList(ctx, page, pageSize, resp)
	return resp, nil
}

func (s *productService) Search(query string, page, pageSize int) (*dto.PaginatedProductResponse, error) {
	products, total, err := s.productRepo.Search(query, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *dto.FromModelToProductResponse(&products[i]))
	}
	return dto.NewPaginatedProductResponse(responses, int(total), page, pageSize), nil
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
