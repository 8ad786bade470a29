package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis is an in-memory stand-in for the redisClient subset
type fakeRedis struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failErr error
	closed  bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.failErr != nil {
		return redis.NewStringResult("", f.failErr)
	}
	value, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	default:
		return redis.NewStatusResult("", errors.New("unsupported value type"))
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	prefix := strings.TrimSuffix(match, "*")
	keys := []string{}
	for key := range f.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return redis.NewScanCmdResult(keys, 0, nil)
}

func (f *fakeRedis) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", f.failErr)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func TestRedisPlanStore(t *testing.T) {
	exercisePlanStore(t, newRedisPlanStore(newFakeRedis(), 0))
}

func TestRedisPlanStore_KeysAndTTL(t *testing.T) {
	client := newFakeRedis()
	store := newRedisPlanStore(client, time.Hour)

	require.NoError(t, store.SavePlan(context.Background(), testPlan("alice")))

	assert.Contains(t, client.data, "plan:alice")
	assert.Equal(t, time.Hour, client.ttls["plan:alice"])
	assert.Contains(t, client.data["plan:alice"], `"semester":"Fall-1"`)

	client.data["other:key"] = "x"
	ids, err := store.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, ids)
}

func TestRedisPlanStore_Errors(t *testing.T) {
	client := newFakeRedis()
	store := newRedisPlanStore(client, 0)
	ctx := context.Background()

	client.data["plan:corrupt"] = "{not json"
	_, err := store.GetPlan(ctx, "corrupt")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPlanNotFound)

	client.failErr = errors.New("connection refused")
	_, err = store.GetPlan(ctx, "alice")
	assert.ErrorContains(t, err, "connection refused")
	assert.Error(t, store.SavePlan(ctx, testPlan("alice")))
	assert.Error(t, store.Ping(ctx))

	require.NoError(t, store.Close())
	assert.True(t, client.closed)
}

func TestNewRedisPlanStore_RequiresURL(t *testing.T) {
	_, err := NewRedisPlanStore(context.Background(), "", 0)
	assert.Error(t, err)

	_, err = NewRedisPlanStore(context.Background(), "not-a-url", 0)
	assert.Error(t, err)
}
