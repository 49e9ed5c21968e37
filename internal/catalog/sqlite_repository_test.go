package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	_, err = repo.db.Exec(`
		CREATE TABLE products (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			tagline TEXT NOT NULL DEFAULT '',
			price INTEGER NOT NULL,
			compare_at INTEGER NOT NULL DEFAULT 0,
			image TEXT NOT NULL DEFAULT '',
			sizes TEXT NOT NULL DEFAULT '[]',
			colors TEXT NOT NULL DEFAULT '[]',
			category TEXT NOT NULL DEFAULT '',
			newest INTEGER NOT NULL DEFAULT 0
		)`)
	require.NoError(t, err)

	_, err = repo.db.Exec(`
		INSERT INTO products (id, title, tagline, price, compare_at, image, sizes, colors, category, newest) VALUES
		(1, 'Casual Shirt', 'Everyday comfort', 3299, 0, '', '["S","M","L"]', '["White","Black"]', 't-shirts', 1),
		(2, 'Blue Jeans', 'Classic blue denim', 4599, 5999, '', '["M","L","XL"]', '["Blue"]', 'jeans', 0)`)
	require.NoError(t, err)

	return repo
}

func TestSQLiteRepository_GetAllProducts(t *testing.T) {
	repo := setupTestDB(t)

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Casual Shirt", products[0].Title)
	assert.Equal(t, []string{"S", "M", "L"}, products[0].Sizes)
	assert.True(t, products[0].Newest)
	assert.Equal(t, int64(5999), products[1].CompareAt)
}

func TestSQLiteRepository_GetProduct(t *testing.T) {
	repo := setupTestDB(t)

	p, err := repo.GetProduct(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Blue Jeans", p.Title)
	assert.Equal(t, []string{"Blue"}, p.Colors)

	_, err = repo.GetProduct(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteRepository_CancelledContext(t *testing.T) {
	repo := setupTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetAllProducts(ctx)
	assert.Error(t, err)
}
