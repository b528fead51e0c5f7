package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/strike/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	snapshotKeyPrefix = "snapshot:"
)

// Config holds configuration for the Redis snapshot repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Namespace separates snapshots of different guilds sharing one Redis
	Namespace string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client    *redis.Client
	namespace string
}

// NewRedis creates a new Redis-backed snapshot repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &redisRepository{
		client:    cfg.RedisClient,
		namespace: namespace,
	}, nil
}

func (r *redisRepository) snapshotKey() string {
	return fmt.Sprintf("%s%s", snapshotKeyPrefix, r.namespace)
}

// SaveSnapshot persists the snapshot to Redis
func (r *redisRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	snapshotJSON, err := json.Marshal(input.Snapshot)
	if err != nil {
		return &PersistenceError{Op: "marshal", Err: err}
	}

	if err := r.client.Set(ctx, r.snapshotKey(), snapshotJSON, 0).Err(); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}

	return nil
}

// LoadSnapshot retrieves the stored snapshot from Redis
func (r *redisRepository) LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*models.Snapshot, error) {
	snapshotJSON, err := r.client.Get(ctx, r.snapshotKey()).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSnapshotNotFound
		}
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
		return nil, &PersistenceError{Op: "unmarshal", Err: err}
	}

	return &snapshot, nil
}
