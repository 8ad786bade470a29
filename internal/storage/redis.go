package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"degree_flowchart/internal/logger"
	"degree_flowchart/pkg"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const (
	planPrefix    = "plan:"
	scanBatchSize = 100
)

// redisClient is the subset of *redis.Client used by the plan store
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisPlanStore implements PlanStore using Redis
type RedisPlanStore struct {
	client redisClient
	ttl    time.Duration // 0 keeps plans without expiry
}

// NewRedisPlanStore connects to redisURL and verifies the connection
func NewRedisPlanStore(ctx context.Context, redisURL string, ttl time.Duration) (*RedisPlanStore, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is required")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return newRedisPlanStore(client, ttl), nil
}

func newRedisPlanStore(client redisClient, ttl time.Duration) *RedisPlanStore {
	return &RedisPlanStore{client: client, ttl: ttl}
}

// key generates a Redis key for the given plan ID
func (r *RedisPlanStore) key(planID string) string {
	return planPrefix + planID
}

// GetPlan retrieves a plan from Redis
func (r *RedisPlanStore) GetPlan(ctx context.Context, planID string) (*pkg.Plan, error) {
	data, err := r.client.Get(ctx, r.key(planID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	var plan pkg.Plan
	if err := sonic.UnmarshalString(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}

	return &plan, nil
}

// SavePlan stores a plan with the configured TTL
func (r *RedisPlanStore) SavePlan(ctx context.Context, plan *pkg.Plan) error {
	if err := ValidatePlan(plan); err != nil {
		return err
	}

	data, err := sonic.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := r.client.Set(ctx, r.key(plan.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set plan: %w", err)
	}

	logger.Debug().Str("plan_id", plan.ID).Dur("ttl", r.ttl).Msg("plan saved to redis")
	return nil
}

// DeletePlan removes a plan from Redis
func (r *RedisPlanStore) DeletePlan(ctx context.Context, planID string) error {
	if err := r.client.Del(ctx, r.key(planID)).Err(); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}

// ListPlans scans for plan keys and returns their ids in sorted order
func (r *RedisPlanStore) ListPlans(ctx context.Context) ([]string, error) {
	ids := []string{}
	var cursor uint64

	for {
		keys, next, err := r.client.Scan(ctx, cursor, planPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan plans: %w", err)
		}
		for _, key := range keys {
			ids = append(ids, strings.TrimPrefix(key, planPrefix))
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// Ping tests Redis connection
func (r *RedisPlanStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisPlanStore) Close() error {
	return r.client.Close()
}
