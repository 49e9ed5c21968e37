package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

const redisTTL = 24 * time.Hour

// RedisStore keeps the cart as a JSON value under cart:<session>. Useful when
// several clients share one cart through the backend's Redis.
type RedisStore struct {
	client  *redis.Client
	session string
}

func NewRedisStore(client *redis.Client, session string) *RedisStore {
	return &RedisStore{client: client, session: session}
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.LineItem, error) {
	data, err := s.client.Get(ctx, s.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return items, nil
}

func (s *RedisStore) Save(ctx context.Context, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := s.client.Set(ctx, s.key(), data, redisTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) key() string {
	return fmt.Sprintf("cart:%s", s.session)
}
