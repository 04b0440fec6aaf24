package infrastructure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"ecomdash/internal/dataset/domain"
	sharedinfra "ecomdash/internal/shared/infrastructure"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS orders (
	order_id TEXT PRIMARY KEY,
	customer_id TEXT NOT NULL,
	order_status TEXT,
	order_purchase_timestamp TIMESTAMP,
	order_delivered_customer_date TIMESTAMP
);
CREATE TABLE IF NOT EXISTS order_items (
	order_id TEXT NOT NULL,
	order_item_id INTEGER NOT NULL,
	product_id TEXT NOT NULL,
	price DOUBLE PRECISION NOT NULL,
	freight_value DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (order_id, order_item_id)
);
CREATE TABLE IF NOT EXISTS products (
	product_id TEXT PRIMARY KEY,
	product_category_name TEXT
);
CREATE TABLE IF NOT EXISTS customers (
	customer_id TEXT PRIMARY KEY,
	customer_state TEXT
);
CREATE TABLE IF NOT EXISTS order_reviews (
	order_id TEXT NOT NULL,
	review_score INTEGER
);
`

// PostgresWriter écrit un Dataset complet dans PostgreSQL en une transaction
type PostgresWriter struct {
	uow sharedinfra.UnitOfWork
}

// NewPostgresWriter crée un writer PostgreSQL
func NewPostgresWriter(db *sql.DB) *PostgresWriter {
	return &PostgresWriter{uow: sharedinfra.NewUnitOfWork(db)}
}

// Write crée le schéma si besoin, vide les tables puis copie les lignes (COPY)
func (w *PostgresWriter) Write(ctx context.Context, ds *domain.Dataset) error {
	return w.uow.Execute(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, schemaDDL); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `TRUNCATE orders, order_items, products, customers, order_reviews`); err != nil {
			return fmt.Errorf("truncating tables: %w", err)
		}

		for _, table := range domain.Tables {
			header, rows := tableRows(ds, table)
			if err := copyRows(ctx, tx, string(table), header, rows); err != nil {
				return fmt.Errorf("copying %s: %w", table, err)
			}
		}
		return nil
	})
}

func copyRows(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]string) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]any, len(row))
		for i, v := range row {
			if v == "" {
				args[i] = nil
			} else {
				args[i] = v
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return err
		}
	}

	_, err = stmt.ExecContext(ctx)
	return err
}
