package catalog

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Find resolves a detected tag to its product, or nil when unknown. An
// empty tag is a known detector quirk and resolves to nil without a store
// round trip.
func (s *Service) Find(ctx context.Context, name string) (*Product, error) {
	if name == "" {
		return nil, nil
	}
	return s.repo.Get(ctx, name)
}

// Save upserts a product keyed by name.
func (s *Service) Save(ctx context.Context, product Product) error {
	if product.Name == "" {
		return errors.New("product name is required")
	}
	return s.repo.Put(ctx, product)
}

func (s *Service) ListAll(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}
