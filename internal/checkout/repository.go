package checkout

import "context"

// Repository is the append-only transaction store. Add assigns the ID and,
// when unset, the creation time; Get returns (nil, nil) for an unknown ID.
type Repository interface {
	Add(ctx context.Context, tx *Transaction) (string, error)
	Get(ctx context.Context, id string) (*Transaction, error)
	List(ctx context.Context) ([]Transaction, error)
}
