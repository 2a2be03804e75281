package ports

import (
	"context"

	"github.com/storelabs/store-api/internal/core/domain"
)

type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	// Add creates a product. Both fields are required by the store schema;
	// price arrives as a pointer so an absent field is distinguishable from
	// an explicit zero price.
	Add(ctx context.Context, name string, price *float64) (*domain.Product, error)
	// Update applies the non-nil patch fields to the matching product and
	// returns the updated record.
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Remove(ctx context.Context, id string) error
}
