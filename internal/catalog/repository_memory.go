package catalog

import (
	"context"
	"sync"
)

// InMemoryRepository keeps products in a map. Used when no DATABASE_URL is
// configured, and by tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products map[string]Product
	order    []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		products: make(map[string]Product),
	}
}

func (r *InMemoryRepository) Get(ctx context.Context, name string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[name]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *InMemoryRepository) Put(ctx context.Context, product Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.Name]; !exists {
		r.order = append(r.order, product.Name)
	}
	r.products[product.Name] = product
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]Product, 0, len(r.order))
	for _, name := range r.order {
		products = append(products, r.products[name])
	}
	return products, nil
}
