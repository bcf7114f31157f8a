package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stockroom/internal/domain"
	"stockroom/internal/repository"

	"github.com/google/uuid"
)

// CatalogService defines the interface for product catalog business logic.
// All input invariants (non-empty name, positive price, non-negative stock)
// are enforced here so they hold regardless of the caller.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	AddProduct(ctx context.Context, name, description string, price float64, quantity int) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, name, description string, price float64, quantity int) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type catalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

// ListProducts returns all products ordered by id
func (s *catalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a single product by id
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// AddProduct validates input and creates a new product with a generated SKU code
func (s *catalogService) AddProduct(ctx context.Context, name, description string, price float64, quantity int) (*domain.Product, error) {
	if err := validateProductInput(name, price, quantity); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &domain.Product{
		Code:        newProductCode(),
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       domain.RoundCents(price),
		Quantity:    quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct validates input and updates an existing product. The SKU code
// is immutable and carried over from the stored row.
func (s *catalogService) UpdateProduct(ctx context.Context, id int64, name, description string, price float64, quantity int) (*domain.Product, error) {
	if err := validateProductInput(name, price, quantity); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(name)
	existing.Description = description
	existing.Price = domain.RoundCents(price)
	existing.Quantity = quantity
	existing.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteProduct removes a product. Deletion is blocked while dependent sales
// exist: sale rows are historical facts and are never cascaded.
func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}

func validateProductInput(name string, price float64, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrEmptyName
	}
	if price <= 0 {
		return domain.ErrInvalidPrice
	}
	if quantity < 0 {
		return domain.ErrNegativeStock
	}
	return nil
}

// newProductCode generates a unique SKU-style code for a new product
func newProductCode() string {
	id := uuid.New().String()
	return "SKU-" + strings.ToUpper(id[:8])
}
