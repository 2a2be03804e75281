package service

import (
	"context"

	"github.com/storelabs/store-api/internal/core/domain"
	"github.com/storelabs/store-api/internal/core/ports"
)

// CatalogService implements product catalog operations. It mirrors the store
// schema (name and price are both required) before any write reaches the
// repository; violations surface as ErrProductInvalid, a store error from the
// caller's point of view.
type CatalogService struct {
	repo ports.CatalogRepository
}

func NewCatalogService(repo ports.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *CatalogService) Add(ctx context.Context, name string, price *float64) (*domain.Product, error) {
	if name == "" || price == nil {
		return nil, domain.ErrProductInvalid
	}
	return s.repo.Create(ctx, &domain.Product{Name: name, Price: *price})
}

// Update re-runs the schema check on the fields the patch actually carries;
// absent fields keep their stored value.
func (s *CatalogService) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, domain.ErrProductInvalid
	}
	return s.repo.UpdateByID(ctx, id, patch)
}

func (s *CatalogService) Remove(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
