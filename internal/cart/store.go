package cart

import (
	"context"

	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

// Store persists full cart snapshots. Load on a store that has never been
// saved returns an empty cart, not an error.
type Store interface {
	Load(ctx context.Context) ([]domain.LineItem, error)
	Save(ctx context.Context, items []domain.LineItem) error
}
