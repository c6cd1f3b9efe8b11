package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/furniture-catalog/internal/models"
)

const productsSchema = `CREATE TABLE IF NOT EXISTS products (
	id       INTEGER PRIMARY KEY,
	name     TEXT    NOT NULL,
	category TEXT    NOT NULL,
	price    INTEGER NOT NULL CHECK (price >= 0),
	image    TEXT    NOT NULL DEFAULT '',
	is_new   BOOLEAN NOT NULL DEFAULT FALSE
)`

// PostgresProductRepository keeps the catalog in a products table.
// Rows are read in id order, which is the catalog order.
type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, productsSchema); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	return nil
}

func (r *PostgresProductRepository) LoadAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, category, price, image, is_new FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Image, &p.IsNew); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ReplaceAll swaps the table contents for products in a single transaction.
func (r *PostgresProductRepository) ReplaceAll(ctx context.Context, products []models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO products (id, name, category, price, image, is_new) VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.Category, p.Price, p.Image, p.IsNew); err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ID, err)
		}
	}
	return tx.Commit()
}
