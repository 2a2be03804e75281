package ports

import (
	"context"

	"github.com/storelabs/store-api/internal/core/domain"
)

// CatalogRepository defines the interface for product persistence.
type CatalogRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	// UpdateByID sets the non-nil patch fields on the matching document and
	// returns the updated record. Returns domain.ErrInvalidProductID when
	// the id is not a valid store identifier and domain.ErrProductNotFound
	// when no document matches.
	UpdateByID(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	// DeleteByID removes the matching document. Deleting an id that matches
	// nothing is not an error; the store does not distinguish it.
	DeleteByID(ctx context.Context, id string) error
}
