package save

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vincent-heng/rpgsim/game/entity"
)

const keyPrefix = "rpgsim:save:"

// RedisStore keeps the same save line as FileStore under a redis key
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore stores under "rpgsim:save:<name>"
func NewRedisStore(client redis.UniversalClient, name string) *RedisStore {
	return &RedisStore{
		client: client,
		key:    keyPrefix + name,
	}
}

func (s *RedisStore) Location() string {
	return "redis key " + s.key
}

func (s *RedisStore) Save(ctx context.Context, c *entity.Character) error {
	line, err := Encode(c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveWrite, err)
	}

	if err := s.client.Set(ctx, s.key, line, 0).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveWrite, err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (*entity.Character, error) {
	line, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: no save at %s", ErrSaveRead, s.key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveRead, err)
	}

	c, err := Decode(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveRead, err)
	}
	return c, nil
}
