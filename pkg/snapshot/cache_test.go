package snapshot

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type scriptedLoader struct {
	calls   atomic.Int32
	results []func(ctx context.Context) (map[string]int, error)
}

func (s *scriptedLoader) Load(ctx context.Context) (map[string]int, error) {
	n := int(s.calls.Add(1)) - 1
	if n >= len(s.results) {
		n = len(s.results) - 1
	}
	return s.results[n](ctx)
}

func returns(values map[string]int) func(ctx context.Context) (map[string]int, error) {
	return func(context.Context) (map[string]int, error) { return values, nil }
}

func fails(err error) func(ctx context.Context) (map[string]int, error) {
	return func(context.Context) (map[string]int, error) { return nil, err }
}

func TestCache_Get(t *testing.T) {
	errBackend := errors.New("table storage unavailable")

	testCases := []struct {
		name     string
		loader   *scriptedLoader
		key      string
		assertFn func(t *testing.T, v int, ok bool, err error, loader *scriptedLoader)
	}{
		{
			name:   "cold start loads and finds key",
			loader: &scriptedLoader{results: []func(context.Context) (map[string]int, error){returns(map[string]int{"BTCUSD": 1})}},
			key:    "BTCUSD",
			assertFn: func(t *testing.T, v int, ok bool, err error, loader *scriptedLoader) {
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, 1, v)
				assert.Equal(t, int32(1), loader.calls.Load())
			},
		},
		{
			name:   "missing key is not an error",
			loader: &scriptedLoader{results: []func(context.Context) (map[string]int, error){returns(map[string]int{"BTCUSD": 1})}},
			key:    "XRPUSD",
			assertFn: func(t *testing.T, v int, ok bool, err error, loader *scriptedLoader) {
				assert.NoError(t, err)
				assert.False(t, ok)
				assert.Zero(t, v)
			},
		},
		{
			name:   "load failure surfaces as LoadError",
			loader: &scriptedLoader{results: []func(context.Context) (map[string]int, error){fails(errBackend)}},
			key:    "BTCUSD",
			assertFn: func(t *testing.T, v int, ok bool, err error, loader *scriptedLoader) {
				var loadErr *LoadError
				assert.ErrorAs(t, err, &loadErr)
				assert.Equal(t, "asset_pairs", loadErr.Cache)
				assert.ErrorIs(t, err, errBackend)
				assert.False(t, ok)
			},
		},
		{
			name:   "nil map from loader is an empty snapshot",
			loader: &scriptedLoader{results: []func(context.Context) (map[string]int, error){returns(nil)}},
			key:    "BTCUSD",
			assertFn: func(t *testing.T, v int, ok bool, err error, loader *scriptedLoader) {
				assert.NoError(t, err)
				assert.False(t, ok)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			cache := New("asset_pairs", testCase.loader.Load, Options{})
			v, ok, err := cache.Get(context.Background(), testCase.key)
			testCase.assertFn(t, v, ok, err, testCase.loader)
		})
	}
}

func TestCache_SingleFlightOnColdStart(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	var calls atomic.Int32

	cache := New("asset_pairs", func(ctx context.Context) (map[string]int, error) {
		calls.Add(1)
		started <- struct{}{}
		<-release
		return map[string]int{"BTCUSD": 1, "ETHUSD": 2}, nil
	}, Options{})

	const callers = 32
	results := make([]map[string]int, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cache.GetAll(context.Background())
		}(i)
	}

	<-started
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 0; i < callers; i++ {
		assert.NoError(t, errs[i])
		assert.Equal(t, map[string]int{"BTCUSD": 1, "ETHUSD": 2}, results[i])
	}
}

func TestCache_GetAllReturnsCopy(t *testing.T) {
	cache := New("asset_pairs", func(ctx context.Context) (map[string]int, error) {
		return map[string]int{"BTCUSD": 1}, nil
	}, Options{})

	first, err := cache.GetAll(context.Background())
	require.NoError(t, err)
	first["BTCUSD"] = 99
	delete(first, "BTCUSD")

	second, err := cache.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"BTCUSD": 1}, second)
}

func TestCache_StaleOnFailure(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	errBackend := errors.New("timeout")
	loader := &scriptedLoader{results: []func(context.Context) (map[string]int, error){
		returns(map[string]int{"BTCUSD": 1}),
		fails(errBackend),
		returns(map[string]int{"BTCUSD": 2, "ETHUSD": 3}),
	}}
	cache := New("asset_pairs", loader.Load, Options{RetryBackoff: 5 * time.Second, Clock: clock.Now})
	ctx := context.Background()

	got, err := cache.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"BTCUSD": 1}, got)

	cache.Invalidate()
	_, err = cache.GetAll(ctx)
	assert.ErrorIs(t, err, errBackend)

	// served from the last good snapshot without touching the loader
	got, err = cache.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"BTCUSD": 1}, got)
	assert.Equal(t, int32(2), loader.calls.Load())

	clock.Advance(5 * time.Second)
	got, err = cache.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"BTCUSD": 2, "ETHUSD": 3}, got)
	assert.Equal(t, int32(3), loader.calls.Load())
}

func TestCache_FailureIsNotCached(t *testing.T) {
	loader := &scriptedLoader{results: []func(context.Context) (map[string]int, error){
		fails(errors.New("boom")),
		returns(map[string]int{"BTCUSD": 1}),
	}}
	cache := New("asset_pairs", loader.Load, Options{RetryBackoff: time.Hour})

	_, _, err := cache.Get(context.Background(), "BTCUSD")
	assert.Error(t, err)

	v, ok, err := cache.Get(context.Background(), "BTCUSD")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, int32(2), loader.calls.Load())
}

func TestCache_TTLExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	loader := &scriptedLoader{results: []func(context.Context) (map[string]int, error){
		returns(map[string]int{"BTCUSD": 1}),
		returns(map[string]int{"BTCUSD": 2}),
	}}
	cache := New("asset_pairs", loader.Load, Options{TTL: time.Minute, Clock: clock.Now})
	ctx := context.Background()

	v, _, _ := cache.Get(ctx, "BTCUSD")
	assert.Equal(t, 1, v)

	clock.Advance(59 * time.Second)
	v, _, _ = cache.Get(ctx, "BTCUSD")
	assert.Equal(t, 1, v)

	clock.Advance(time.Second)
	v, _, _ = cache.Get(ctx, "BTCUSD")
	assert.Equal(t, 2, v)
	assert.Equal(t, int32(2), loader.calls.Load())
}

func TestCache_CallerCancellationDoesNotAbortLoad(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	loadCtxErr := make(chan error, 1)
	var calls atomic.Int32

	cache := New("asset_pairs", func(ctx context.Context) (map[string]int, error) {
		calls.Add(1)
		started <- struct{}{}
		<-release
		loadCtxErr <- ctx.Err()
		return map[string]int{"BTCUSD": 1}, nil
	}, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := cache.GetAll(ctx)
		done <- err
	}()

	<-started
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	close(release)
	assert.NoError(t, <-loadCtxErr)

	// the detached load completes and is installed for later callers
	assert.Eventually(t, func() bool {
		_, ok, err := cache.Get(context.Background(), "BTCUSD")
		return err == nil && ok
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_InvalidateDuringLoad(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 2)
	var calls atomic.Int32

	cache := New("asset_pairs", func(ctx context.Context) (map[string]int, error) {
		n := calls.Add(1)
		started <- struct{}{}
		if n == 1 {
			<-release
		}
		return map[string]int{"gen": int(n)}, nil
	}, Options{})

	done := make(chan map[string]int, 1)
	go func() {
		got, _ := cache.GetAll(context.Background())
		done <- got
	}()

	<-started
	cache.Invalidate()
	close(release)
	assert.Equal(t, map[string]int{"gen": 1}, <-done)

	got, err := cache.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"gen": 2}, got)
}

func TestCache_AtomicReplacement(t *testing.T) {
	var gen atomic.Int32
	cache := New("asset_pairs", func(ctx context.Context) (map[string]int, error) {
		g := int(gen.Add(1))
		values := make(map[string]int, 100)
		for i := 0; i < 100; i++ {
			values[string(rune('a'+i%26))+string(rune('a'+i/26))] = g
		}
		return values, nil
	}, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				cache.Invalidate()
				time.Sleep(time.Millisecond)
			}
		}()
	}

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				values, err := cache.GetAll(context.Background())
				if !assert.NoError(t, err) {
					return
				}
				var first int
				for _, v := range values {
					if first == 0 {
						first = v
					}
					if !assert.Equal(t, first, v, "snapshot mixes generations") {
						return
					}
				}
			}
		}()
	}

	wg.Wait()
}

type recordingObserver struct {
	mu   sync.Mutex
	errs []error
}

func (o *recordingObserver) ObserveLoad(cache string, duration time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errs = append(o.errs, err)
}

func TestCache_Observer(t *testing.T) {
	observer := &recordingObserver{}
	loader := &scriptedLoader{results: []func(context.Context) (map[string]int, error){
		fails(errors.New("boom")),
		returns(map[string]int{"BTCUSD": 1}),
	}}
	cache := New("asset_pairs", loader.Load, Options{Observer: observer})

	_, _ = cache.GetAll(context.Background())
	_, _ = cache.GetAll(context.Background())

	assert.Len(t, observer.errs, 2)
	assert.Error(t, observer.errs[0])
	assert.NoError(t, observer.errs[1])
}
