package db

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres(dsn string) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates the tables the stores expect.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	productsSQL := `
		CREATE TABLE IF NOT EXISTS products (
			name VARCHAR(255) PRIMARY KEY,
			price NUMERIC(12, 2) NOT NULL,
			category VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, productsSQL); err != nil {
		return err
	}

	transactionsSQL := `
		CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY,
			products JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := pool.Exec(ctx, transactionsSQL); err != nil {
		return err
	}

	log.Println("Schema initialized")
	return nil
}
