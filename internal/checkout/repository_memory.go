package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu           sync.RWMutex
	transactions []Transaction
	byID         map[string]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID: make(map[string]int),
	}
}

func (r *InMemoryRepository) Add(ctx context.Context, tx *Transaction) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx.ID = uuid.New().String()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	r.byID[tx.ID] = len(r.transactions)
	r.transactions = append(r.transactions, *tx)
	return tx.ID, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	tx := r.transactions[idx]
	return &tx, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}
