package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository serves the read-only product catalog.
type Repository interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	Close() error
}

// FileRepository reads the catalog from a JSON array file on every call, so
// edits to the file show up without a restart. A missing or malformed file is
// returned as-is to the caller; the handler turns it into a generic 500.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) GetAllProducts(_ context.Context) ([]domain.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return products, nil
}

func (r *FileRepository) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	products, err := r.GetAllProducts(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (r *FileRepository) Close() error { return nil }
