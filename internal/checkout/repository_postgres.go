package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, tx *Transaction) (string, error) {
	tx.ID = uuid.New().String()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	products, err := json.Marshal(tx.Products)
	if err != nil {
		return "", err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO transactions (id, products, created_at) VALUES ($1, $2, $3)`,
		tx.ID, products, tx.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	return tx.ID, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Transaction, error) {
	var tx Transaction
	var products []byte
	err := r.db.QueryRow(ctx,
		`SELECT id, products, created_at FROM transactions WHERE id = $1`,
		id,
	).Scan(&tx.ID, &products, &tx.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(products, &tx.Products); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, products, created_at FROM transactions ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]Transaction, 0)
	for rows.Next() {
		var tx Transaction
		var products []byte
		if err := rows.Scan(&tx.ID, &products, &tx.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(products, &tx.Products); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
