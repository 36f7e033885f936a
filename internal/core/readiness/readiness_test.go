package readiness

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// release returns a fetch that blocks until ch is closed, then yields v.
func release[T any](ch <-chan struct{}, v T) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		select {
		case <-ch:
			return v, nil
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

func TestReadyRegardlessOfArrivalOrder(t *testing.T) {
	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}}
	for _, order := range orders {
		ctx, cancel := context.WithCancel(context.Background())
		g := NewGroup(ctx)

		gates := []chan struct{}{make(chan struct{}), make(chan struct{}), make(chan struct{})}
		a := Gate(g, "a", release(gates[0], "A"))
		b := Gate(g, "b", release(gates[1], 2))
		c := Gate(g, "c", release(gates[2], true))

		for i, idx := range order {
			require.False(t, g.Ready(), "ready before %d releases", i)
			changed := g.Changed()
			close(gates[idx])
			<-changed
		}

		require.True(t, g.WaitReady(ctx))
		v, ok := a.Get()
		assert.True(t, ok)
		assert.Equal(t, "A", v)
		n, _ := b.Get()
		assert.Equal(t, 2, n)
		flag, _ := c.Get()
		assert.True(t, flag)

		cancel()
		g.Wait()
	}
}

func TestLaggingFieldsDoNotGate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g := NewGroup(ctx)

	never := make(chan struct{})
	Gate(g, "name", func(context.Context) (string, error) { return "x", nil })
	tiers := Lag(g, "tiers", release(never, []int{1}))

	require.True(t, g.WaitReady(ctx))
	assert.False(t, tiers.Resolved())

	gating, lagging := g.Pending()
	assert.Empty(t, gating)
	assert.Equal(t, []string{"tiers"}, lagging)

	short, stop := context.WithTimeout(ctx, 20*time.Millisecond)
	defer stop()
	assert.False(t, g.WaitAll(short))

	cancel()
	g.Wait()
	assert.False(t, tiers.Resolved())
	_, ok := tiers.Get()
	assert.False(t, ok)
	_, lagging = g.Pending()
	assert.Equal(t, []string{"tiers"}, lagging)
}

func TestFailedFetchResolves(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	var (
		mu     sync.Mutex
		failed []string
	)
	g := NewGroup(ctx, WithErrorHook(func(field string, err error) {
		mu.Lock()
		defer mu.Unlock()
		failed = append(failed, field)
		assert.ErrorIs(t, err, boom)
	}))

	owner := Gate(g, "owner", func(context.Context) (string, error) { return "", boom })
	goal := Gate(g, "goal", func(context.Context) (int, error) { return 10, nil })

	require.True(t, g.WaitAll(ctx))
	g.Wait()

	assert.True(t, g.Ready())
	assert.True(t, owner.Resolved())
	_, ok := owner.Get()
	assert.False(t, ok)
	assert.ErrorIs(t, owner.Err(), boom)
	v, ok := goal.Get()
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, []string{"owner"}, failed)
}

func TestWaitReadyTimesOut(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGroup(ctx)

	never := make(chan struct{})
	Gate(g, "fast", func(context.Context) (int, error) { return 1, nil })
	Gate(g, "slow", release(never, 1))

	deadline, stop := context.WithTimeout(ctx, 20*time.Millisecond)
	defer stop()
	assert.False(t, g.WaitReady(deadline))

	gating, _ := g.Pending()
	assert.Equal(t, []string{"slow"}, gating)

	cancel()
	g.Wait()
}

func TestEmptyGroupIsReady(t *testing.T) {
	g := NewGroup(context.Background())
	assert.True(t, g.Ready())
	assert.True(t, g.WaitAll(context.Background()))
}

func TestDuplicateFieldPanics(t *testing.T) {
	g := NewGroup(context.Background())
	Gate(g, "name", func(context.Context) (int, error) { return 1, nil })
	assert.Panics(t, func() {
		Lag(g, "name", func(context.Context) (int, error) { return 1, nil })
	})
	g.Wait()
}
