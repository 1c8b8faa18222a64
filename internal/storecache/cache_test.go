package storecache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

func counting(values ...string) (FetchFunc[string], *int32) {
	var calls int32
	return func(ctx context.Context) (string, error) {
		n := atomic.AddInt32(&calls, 1)
		idx := int(n) - 1
		if idx >= len(values) {
			idx = len(values) - 1
		}
		return values[idx], nil
	}, &calls
}

func TestGetOrRefreshEmptyFetchesSynchronously(t *testing.T) {
	cache := New[string](time.Hour, clockz.RealClock, nil)
	fetch, calls := counting("stores-v1")

	v, err := cache.GetOrRefresh(context.Background(), "alice", fetch)
	require.NoError(t, err)
	assert.Equal(t, "stores-v1", v)
	assert.EqualValues(t, 1, atomic.LoadInt32(calls))

	_, ok := cache.LastUpdated("alice")
	assert.True(t, ok)
}

func TestGetOrRefreshFreshServesCache(t *testing.T) {
	cache := New[string](time.Hour, clockz.RealClock, nil)
	fetch, calls := counting("stores-v1", "stores-v2")

	_, err := cache.GetOrRefresh(context.Background(), "alice", fetch)
	require.NoError(t, err)

	v, err := cache.GetOrRefresh(context.Background(), "alice", fetch)
	require.NoError(t, err)
	cache.Stop()

	assert.Equal(t, "stores-v1", v)
	assert.EqualValues(t, 1, atomic.LoadInt32(calls))
}

func TestGetOrRefreshStaleReturnsOldValueAndRefreshes(t *testing.T) {
	cache := New[string](time.Millisecond, clockz.RealClock, nil)
	fetch, calls := counting("stores-v1", "stores-v2")

	_, err := cache.GetOrRefresh(context.Background(), "alice", fetch)
	require.NoError(t, err)
	first, _ := cache.LastUpdated("alice")

	time.Sleep(5 * time.Millisecond)

	v, err := cache.GetOrRefresh(context.Background(), "alice", fetch)
	require.NoError(t, err)
	assert.Equal(t, "stores-v1", v, "stale value is served while refreshing")

	cache.Stop()
	assert.EqualValues(t, 2, atomic.LoadInt32(calls))

	updated, _ := cache.LastUpdated("alice")
	assert.True(t, updated.After(first))

	cache.ttl = time.Hour
	v, err = cache.GetOrRefresh(context.Background(), "alice", fetch)
	require.NoError(t, err)
	assert.Equal(t, "stores-v2", v)
}

func TestBackgroundRefreshErrorKeepsStaleValue(t *testing.T) {
	log, hook := test.NewNullLogger()
	cache := New[string](time.Millisecond, clockz.RealClock, log)

	_, err := cache.GetOrRefresh(context.Background(), "alice", func(ctx context.Context) (string, error) {
		return "stores-v1", nil
	})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	v, err := cache.GetOrRefresh(context.Background(), "alice", func(ctx context.Context) (string, error) {
		return "", errors.New("upstream down")
	})
	require.NoError(t, err)
	cache.Stop()

	assert.Equal(t, "stores-v1", v)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	cache.ttl = time.Hour
	v, err = cache.GetOrRefresh(context.Background(), "alice", nil)
	require.NoError(t, err)
	assert.Equal(t, "stores-v1", v)
}

func TestGetOrRefreshEmptyPropagatesError(t *testing.T) {
	cache := New[string](time.Hour, clockz.RealClock, nil)

	_, err := cache.GetOrRefresh(context.Background(), "alice", func(ctx context.Context) (string, error) {
		return "", errors.New("boom")
	})
	assert.EqualError(t, err, "boom")

	_, ok := cache.LastUpdated("alice")
	assert.False(t, ok)
}

func TestForceRefreshReplaces(t *testing.T) {
	cache := New[string](time.Hour, clockz.RealClock, nil)
	fetch, calls := counting("stores-v1", "stores-v2")

	_, err := cache.GetOrRefresh(context.Background(), "alice", fetch)
	require.NoError(t, err)

	v, err := cache.ForceRefresh(context.Background(), "alice", fetch)
	require.NoError(t, err)
	assert.Equal(t, "stores-v2", v)
	assert.EqualValues(t, 2, atomic.LoadInt32(calls))
}

func TestKeysAreIsolatedAndClear(t *testing.T) {
	cache := New[string](time.Hour, clockz.RealClock, nil)

	_, err := cache.GetOrRefresh(context.Background(), "alice", func(ctx context.Context) (string, error) { return "a", nil })
	require.NoError(t, err)
	v, err := cache.GetOrRefresh(context.Background(), "bob", func(ctx context.Context) (string, error) { return "b", nil })
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	cache.Clear("alice")
	_, ok := cache.LastUpdated("alice")
	assert.False(t, ok)
	_, ok = cache.LastUpdated("bob")
	assert.True(t, ok)
}

func TestConcurrentEmptyLoadsShareOneFetch(t *testing.T) {
	cache := New[string](time.Hour, clockz.RealClock, nil)

	release := make(chan struct{})
	var calls int32
	fetch := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "stores", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cache.GetOrRefresh(context.Background(), "alice", fetch)
			assert.NoError(t, err)
			assert.Equal(t, "stores", v)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestStopWaitsForRefreshAndStopsNewOnes(t *testing.T) {
	cache := New[string](time.Millisecond, clockz.RealClock, nil)

	_, err := cache.GetOrRefresh(context.Background(), "alice", func(ctx context.Context) (string, error) {
		return "stores-v1", nil
	})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	release := make(chan struct{})
	var finished atomic.Bool
	_, err = cache.GetOrRefresh(context.Background(), "alice", func(ctx context.Context) (string, error) {
		<-release
		finished.Store(true)
		return "stores-v2", nil
	})
	require.NoError(t, err)

	stopped := make(chan struct{})
	go func() {
		cache.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned before the background refresh finished")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the refresh finished")
	}
	assert.True(t, finished.Load())

	time.Sleep(5 * time.Millisecond)
	var calls atomic.Int32
	v, err := cache.GetOrRefresh(context.Background(), "alice", func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "stores-v3", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "stores-v2", v)
	cache.Stop()
	assert.Zero(t, calls.Load())
}
