package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomyolivera/star-wars-api/internal/core/domain"
)

const (
	cacheTTL     = 5 * time.Minute
	listKey      = "movies:all"
	movieKeyFmt  = "movies:id:%d"
	movieKeyGlob = "movies:*"
)

// MovieCache caches movie reads in Redis. Entries are JSON-encoded and
// expire after cacheTTL; any write path drops the whole movie keyspace.
type MovieCache struct {
	client *redis.Client
}

// NewMovieCache creates a MovieCache wrapping the given Redis client.
func NewMovieCache(client *redis.Client) *MovieCache {
	return &MovieCache{client: client}
}

// GetList returns the cached movie list. The second return value reports
// whether the key was present.
func (c *MovieCache) GetList(ctx context.Context) ([]domain.Movie, bool, error) {
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get list: %w", err)
	}

	var movies []domain.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, false, fmt.Errorf("cache decode list: %w", err)
	}
	return movies, true, nil
}

func (c *MovieCache) SetList(ctx context.Context, movies []domain.Movie) error {
	raw, err := json.Marshal(movies)
	if err != nil {
		return fmt.Errorf("cache encode list: %w", err)
	}
	return c.client.Set(ctx, listKey, raw, cacheTTL).Err()
}

func (c *MovieCache) GetByID(ctx context.Context, id int64) (*domain.Movie, bool, error) {
	raw, err := c.client.Get(ctx, fmt.Sprintf(movieKeyFmt, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get movie: %w", err)
	}

	var movie domain.Movie
	if err := json.Unmarshal(raw, &movie); err != nil {
		return nil, false, fmt.Errorf("cache decode movie: %w", err)
	}
	return &movie, true, nil
}

func (c *MovieCache) SetByID(ctx context.Context, movie *domain.Movie) error {
	raw, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("cache encode movie: %w", err)
	}
	return c.client.Set(ctx, fmt.Sprintf(movieKeyFmt, movie.ID), raw, cacheTTL).Err()
}

// Invalidate drops every cached movie entry.
func (c *MovieCache) Invalidate(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, movieKeyGlob).Result()
	if err != nil {
		return fmt.Errorf("cache scan keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
