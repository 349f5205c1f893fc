package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNameNotFound = errors.New("display name not found")

type NameRepository interface {
	Save(ctx context.Context, userID uint64, name string) error
	GetByID(ctx context.Context, userID uint64) (string, error)
}

// dbName caches resolved display names in Redis with a TTL.
type dbName struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNameRepository(client *redis.Client, ttl time.Duration) NameRepository {
	return &dbName{
		client: client,
		ttl:    ttl,
	}
}

func nameKey(userID uint64) string {
	return "name:" + strconv.FormatUint(userID, 10)
}

func (that *dbName) Save(ctx context.Context, userID uint64, name string) error {
	err := that.client.Set(ctx, nameKey(userID), name, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set name: %w", err)
	}

	return nil
}

func (that *dbName) GetByID(ctx context.Context, userID uint64) (string, error) {
	name, err := that.client.Get(ctx, nameKey(userID)).Result()

	if errors.Is(err, redis.Nil) {
		return "", ErrNameNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get name by user id: %w", err)
	}

	return name, nil
}
