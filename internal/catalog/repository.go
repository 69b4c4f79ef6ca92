package catalog

import "context"

// Repository is the keyed product store. Get returns (nil, nil) for an
// unknown name; Put upserts by name.
type Repository interface {
	Get(ctx context.Context, name string) (*Product, error)
	Put(ctx context.Context, product Product) error
	List(ctx context.Context) ([]Product, error)
}
