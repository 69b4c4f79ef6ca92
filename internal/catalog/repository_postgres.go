package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, name string) (*Product, error) {
	var p Product
	err := r.db.QueryRow(ctx,
		`SELECT name, price, category FROM products WHERE name = $1`,
		name,
	).Scan(&p.Name, &p.Price, &p.Category)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Put(ctx context.Context, product Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (name, price, category)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE
		 SET price = EXCLUDED.price, category = EXCLUDED.category`,
		product.Name, product.Price, product.Category,
	)
	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, price, category FROM products ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.Name, &p.Price, &p.Category); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
