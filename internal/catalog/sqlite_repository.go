package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

// SQLiteRepository is the database-backed alternative to FileRepository,
// selected when CATALOG_DB is configured. Sizes and colors are stored as JSON
// arrays in text columns.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, title, tagline, price, compare_at, image, sizes, colors, category, newest
		FROM products
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func (r *SQLiteRepository) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	query := `
		SELECT id, title, tagline, price, compare_at, image, sizes, colors, category, newest
		FROM products
		WHERE id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to query product: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Product{}, fmt.Errorf("row iteration error: %w", err)
		}
		return domain.Product{}, ErrNotFound
	}

	return scanProduct(rows)
}

func scanProduct(rows *sql.Rows) (domain.Product, error) {
	var p domain.Product
	var sizes, colors string
	err := rows.Scan(
		&p.ID,
		&p.Title,
		&p.Tagline,
		&p.Price,
		&p.CompareAt,
		&p.Image,
		&sizes,
		&colors,
		&p.Category,
		&p.Newest,
	)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to scan product: %w", err)
	}

	if sizes != "" {
		if err := json.Unmarshal([]byte(sizes), &p.Sizes); err != nil {
			return domain.Product{}, fmt.Errorf("failed to parse sizes: %w", err)
		}
	}
	if colors != "" {
		if err := json.Unmarshal([]byte(colors), &p.Colors); err != nil {
			return domain.Product{}, fmt.Errorf("failed to parse colors: %w", err)
		}
	}
	return p, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
