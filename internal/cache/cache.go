package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	doctorDirectoryKey = "doctors:directory"
	revokedKeyPrefix   = "token:revoked:"
)

type Client struct {
	rdb *redis.Client
}

func New(addr, password string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// --------------------------------------------------
// Doctor directory cache
// --------------------------------------------------

// GetDoctorDirectory returns the cached JSON payload of the doctor listing,
// or ("", redis.Nil) on a miss.
func (c *Client) GetDoctorDirectory(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return c.rdb.Get(ctx, doctorDirectoryKey).Result()
}

func (c *Client) SetDoctorDirectory(ctx context.Context, payload string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return c.rdb.Set(ctx, doctorDirectoryKey, payload, ttl).Err()
}

// InvalidateDoctorDirectory drops the cached listing after any write that
// changes what the directory shows.
func (c *Client) InvalidateDoctorDirectory(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return c.rdb.Del(ctx, doctorDirectoryKey).Err()
}

// --------------------------------------------------
// Token revocation (logout)
// --------------------------------------------------

// RevokeToken denylists a token id until its natural expiry.
func (c *Client) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return c.rdb.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

func (c *Client) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	_, err := c.rdb.Get(ctx, revokedKeyPrefix+tokenID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
