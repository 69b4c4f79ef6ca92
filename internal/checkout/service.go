package checkout

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

// Checkout records one completed basket and returns the stored ID.
func (s *Service) Checkout(ctx context.Context, products []LineItem) (string, error) {
	if len(products) == 0 {
		return "", errors.New("checkout requires at least one product")
	}
	for _, item := range products {
		if item.ItemName == "" {
			return "", errors.New("every product needs an itemName")
		}
		if item.Quantity < 1 {
			return "", errors.New("every product needs a positive quantity")
		}
	}

	tx := &Transaction{Products: products}
	return s.repo.Add(ctx, tx)
}

// GetTransaction returns a stored transaction, or nil when unknown.
func (s *Service) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	return s.repo.Get(ctx, id)
}
