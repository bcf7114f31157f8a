package repository

import (
	"context"
	"testing"
	"time"

	"stockroom/internal/domain"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_ProductCreationPreservesAttributes(t *testing.T) {
	repo := NewProductRepository(testDB)

	properties := gopter.NewProperties(nil)

	properties.Property("creating and retrieving a product preserves all attributes", prop.ForAll(
		func(description string, priceCents int, quantity int) bool {
			ctx := context.Background()

			price := float64(priceCents) / 100
			now := time.Now()
			product := &domain.Product{
				Code:        "SKU-" + uuid.New().String()[:8],
				Name:        "Property " + uuid.New().String(),
				Description: description,
				Price:       price,
				Quantity:    quantity,
				CreatedAt:   now,
				UpdatedAt:   now,
			}

			err := repo.Create(ctx, product)
			if err != nil {
				t.Logf("FAIL: Failed to create product: %v", err)
				return false
			}

			retrieved, err := repo.FindByID(ctx, product.ID)
			if err != nil {
				t.Logf("FAIL: Failed to retrieve product: %v", err)
				return false
			}

			if retrieved.Name != product.Name {
				t.Logf("FAIL: Name mismatch. Expected %s, got %s", product.Name, retrieved.Name)
				return false
			}

			if retrieved.Description != product.Description {
				t.Logf("FAIL: Description mismatch")
				return false
			}

			// DECIMAL(10,2) round-trips cent amounts exactly
			if retrieved.Price != price {
				t.Logf("FAIL: Price mismatch. Expected %f, got %f", price, retrieved.Price)
				return false
			}

			if retrieved.Quantity != quantity {
				t.Logf("FAIL: Quantity mismatch. Expected %d, got %d", quantity, retrieved.Quantity)
				return false
			}

			return true
		},
		gen.AlphaString(),
		gen.IntRange(1, 10_000_000),
		gen.IntRange(0, 100_000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
