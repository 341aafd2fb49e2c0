// Package cache provides the Redis-backed latest-score cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"

	"github.com/luminahr/talentscope/internal/scoring/domain"
)

// RedisScoreCache implements domain.Cache with Redis. Keys are namespaced:
// score:org:{org_id}:employee:{employee_id}
//
// All operations run behind a circuit breaker so a degraded Redis does not
// slow every score read down to its timeout; open-circuit reads behave as
// cache misses.
type RedisScoreCache struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker[any]
}

// NewRedisScoreCache creates a new Redis score cache.
func NewRedisScoreCache(client *redis.Client) *RedisScoreCache {
	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:    "score-cache",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &RedisScoreCache{client: client, breaker: breaker}
}

func cacheKey(orgID, employeeID uuid.UUID) string {
	return fmt.Sprintf("score:org:%s:employee:%s", orgID, employeeID)
}

// Get returns the cached latest score, or nil on a miss.
func (c *RedisScoreCache) Get(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.ProductivityScore, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		data, err := c.client.Get(ctx, cacheKey(orgID, employeeID)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return data, err
	})
	if err != nil {
		return nil, err
	}
	data, _ := result.([]byte)
	if data == nil {
		return nil, nil
	}

	var score domain.ProductivityScore
	if err := json.Unmarshal(data, &score); err != nil {
		return nil, fmt.Errorf("decode cached score: %w", err)
	}
	return &score, nil
}

// Set caches the latest score with the given time-to-live.
func (c *RedisScoreCache) Set(ctx context.Context, score *domain.ProductivityScore, ttl time.Duration) error {
	data, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("encode score: %w", err)
	}

	_, err = c.breaker.Execute(func() (any, error) {
		return nil, c.client.Set(ctx, cacheKey(score.OrganizationID, score.EmployeeID), data, ttl).Err()
	})
	return err
}
