package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"studentoffice-service/internal/custom_errors"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/config"
)

type Client struct {
	client *redis.Client
	log    ports.Logger
}

func NewClient(cfg config.Redis, log ports.Logger) (*Client, error) {
	return NewClientWithOptions(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}, log)
}

func NewClientWithOptions(opts *redis.Options, log ports.Logger) (*Client, error) {
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("Failed to connect to Redis", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Successfully connected to Redis",
		slog.String("address", opts.Addr),
		slog.Int("db", opts.DB))

	return &Client{
		client: rdb,
		log:    log,
	}, nil
}

func (c *Client) Get(ctx context.Context, key string, dest any) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.log.Debug("Redis key not found", slog.String("key", key))
			return custom_errors.ErrCacheMiss
		}
		c.log.Error("Failed to read redis key",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", custom_errors.ErrCacheOperation, err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		c.log.Error("Failed to decode redis value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", custom_errors.ErrCacheOperation, err)
	}

	return nil
}

func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Error("Failed to encode redis value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", custom_errors.ErrCacheOperation, err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.log.Error("Failed to write redis key",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", custom_errors.ErrCacheOperation, err)
	}

	c.log.Debug("Redis key written",
		slog.String("key", key),
		slog.Duration("ttl", ttl))
	return nil
}

func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Error("Failed to delete redis keys",
			slog.Any("keys", keys),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", custom_errors.ErrCacheOperation, err)
	}
	return nil
}

// AddToSet adds member to the set at key and pushes the set expiry to at least ttl.
func (c *Client) AddToSet(ctx context.Context, key, member string, ttl time.Duration) error {
	pipe := c.client.TxPipeline()
	pipe.SAdd(ctx, key, member)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Error("Failed to add to set",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", custom_errors.ErrCacheOperation, err)
	}
	return nil
}

func (c *Client) RemoveFromSet(ctx context.Context, key, member string) error {
	if err := c.client.SRem(ctx, key, member).Err(); err != nil {
		c.log.Error("Failed to remove from set",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", custom_errors.ErrCacheOperation, err)
	}
	return nil
}

func (c *Client) SetMembers(ctx context.Context, key string) ([]string, error) {
	members, err := c.client.SMembers(ctx, key).Result()
	if err != nil {
		c.log.Error("Failed to read set",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", custom_errors.ErrCacheOperation, err)
	}
	return members, nil
}

func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		c.log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}

	c.log.Info("Redis connection closed")
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		c.log.Error("Redis ping failed", slog.String("error", err.Error()))
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
