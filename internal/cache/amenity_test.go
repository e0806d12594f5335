package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/stpnv0/AmenityBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeRedis struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	failAll error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll != nil {
		return redis.NewStringResult("", f.failAll)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll != nil {
		return redis.NewStatusResult("", f.failAll)
	}
	f.data[key] = value.([]byte)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll != nil {
		return redis.NewIntResult(0, f.failAll)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func jacuzzi() *domain.Amenity {
	return &domain.Amenity{
		ID:           "jacuzzi",
		Name:         "Jacuzzi",
		Category:     domain.CategoryHotTub,
		Hours:        domain.OperatingHours{Days: domain.AllWeekdays(), Open: 7 * 60, Close: 21 * 60},
		AutoApproval: &domain.AutoApprovalRules{MaxDurationMinutes: 60, MaxBookingsPerDay: 1},
		Active:       true,
	}
}

func TestAmenityCache_MissLoadsAndStores(t *testing.T) {
	rdb := newFakeRedis()
	repo := mocks.NewMockAmenityRepo(t)
	c := NewAmenityCache(rdb, repo, time.Minute, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "jacuzzi").Return(jacuzzi(), nil).Once()

	first, err := c.GetByID(context.Background(), "jacuzzi")
	require.NoError(t, err)
	second, err := c.GetByID(context.Background(), "jacuzzi")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, time.Minute, rdb.ttls["amenity:jacuzzi"])
	require.NotNil(t, second.AutoApproval)
	assert.Equal(t, 60, second.AutoApproval.MaxDurationMinutes)
}

func TestAmenityCache_Invalidate(t *testing.T) {
	rdb := newFakeRedis()
	repo := mocks.NewMockAmenityRepo(t)
	c := NewAmenityCache(rdb, repo, time.Minute, newTestLogger(t))

	raw, err := json.Marshal(jacuzzi())
	require.NoError(t, err)
	rdb.data["amenity:jacuzzi"] = raw

	updated := jacuzzi()
	updated.Name = "Big Jacuzzi"
	repo.EXPECT().GetByID(mock.Anything, "jacuzzi").Return(updated, nil).Once()

	c.Invalidate(context.Background(), "jacuzzi")
	got, err := c.GetByID(context.Background(), "jacuzzi")

	require.NoError(t, err)
	assert.Equal(t, "Big Jacuzzi", got.Name)
}

func TestAmenityCache_RedisDownFallsBackToLoader(t *testing.T) {
	rdb := newFakeRedis()
	rdb.failAll = errors.New("connection refused")
	repo := mocks.NewMockAmenityRepo(t)
	c := NewAmenityCache(rdb, repo, time.Minute, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "jacuzzi").Return(jacuzzi(), nil)

	got, err := c.GetByID(context.Background(), "jacuzzi")

	require.NoError(t, err)
	assert.Equal(t, "Jacuzzi", got.Name)
	c.Invalidate(context.Background(), "jacuzzi")
}

func TestAmenityCache_CorruptEntryReloads(t *testing.T) {
	rdb := newFakeRedis()
	rdb.data["amenity:jacuzzi"] = []byte("{not json")
	repo := mocks.NewMockAmenityRepo(t)
	c := NewAmenityCache(rdb, repo, time.Minute, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "jacuzzi").Return(jacuzzi(), nil)

	got, err := c.GetByID(context.Background(), "jacuzzi")

	require.NoError(t, err)
	assert.Equal(t, "Jacuzzi", got.Name)
}

func TestAmenityCache_NotFoundIsNotCached(t *testing.T) {
	rdb := newFakeRedis()
	repo := mocks.NewMockAmenityRepo(t)
	c := NewAmenityCache(rdb, repo, time.Minute, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "sauna").Return(nil, domain.ErrAmenityNotFound)

	_, err := c.GetByID(context.Background(), "sauna")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAmenityNotFound)
	assert.Empty(t, rdb.data)
}

func TestAmenityCache_NilClientPassesThrough(t *testing.T) {
	repo := mocks.NewMockAmenityRepo(t)
	c := NewAmenityCache(nil, repo, 0, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "jacuzzi").Return(jacuzzi(), nil).Times(2)

	_, err := c.GetByID(context.Background(), "jacuzzi")
	require.NoError(t, err)
	_, err = c.GetByID(context.Background(), "jacuzzi")
	require.NoError(t, err)

	c.Invalidate(context.Background(), "jacuzzi")
}
