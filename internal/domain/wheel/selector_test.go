//go:build unit

package wheel_test

import (
	"context"
	"math"
	"math/rand/v2"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"nuzlocke-tracker/internal/domain/wheel"
	"nuzlocke-tracker/internal/pkg/clock"
	"nuzlocke-tracker/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spin = 4500 * time.Millisecond

type selectorFixture struct {
	clock    *clock.MockClock
	store    *mapStore
	key      string
	selector *wheel.Selector
	mu       sync.Mutex
	outcomes []wheel.Outcome
}

func newSelectorFixture(t *testing.T, cooldown time.Duration, opts ...wheel.Option) *selectorFixture {
	t.Helper()
	f := &selectorFixture{
		clock: clock.NewMockClock(t0),
		store: newMapStore(),
	}
	f.key = wheel.CooldownKey(uuid.New())
	cd := wheel.NewCooldown(f.store, f.key, cooldown, f.clock)
	opts = append(opts, wheel.WithSettledFunc(func(o wheel.Outcome) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.outcomes = append(f.outcomes, o)
	}))
	f.selector = wheel.NewSelector(cd, wheel.DefaultCatalog(), f.clock, spin, opts...)
	return f
}

func (f *selectorFixture) outcomeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.outcomes)
}

func fixedPick(idx int) wheel.Option {
	return wheel.WithPicker(func(int) int { return idx })
}

func TestSelector_SpinLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newSelectorFixture(t, day, fixedPick(4))

	res, err := f.selector.Trigger(ctx)
	require.NoError(t, err)
	require.True(t, res.Accepted)
	assert.Equal(t, 4, res.Index)
	assert.Equal(t, t0.Add(spin), res.SettlesAt)
	assert.Equal(t, wheel.StateSpinning, f.selector.State())
	assert.Zero(t, f.outcomeCount())

	remaining, err := f.selector.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, day, remaining.Remaining)

	f.clock.Add(spin)
	require.Equal(t, 1, f.outcomeCount())
	assert.Equal(t, wheel.StateSettled, f.selector.State())
	assert.Equal(t, "+5000₽", f.outcomes[0].Segment.Name)
	assert.Equal(t, int64(5000), f.outcomes[0].Segment.BalanceDelta)
	assert.Equal(t, t0, f.outcomes[0].SpunAt)
	assert.Equal(t, t0.Add(spin), f.outcomes[0].SettledAt)

	f.clock.Add(100 * time.Millisecond)
	res, err = f.selector.Trigger(ctx)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, day-4600*time.Millisecond, res.Remaining)
	assert.Equal(t, "23:59:55", wheel.FormatRemaining(res.Remaining))

	f.clock.Set(t0.Add(86401 * time.Second))
	res, err = f.selector.Trigger(ctx)
	require.NoError(t, err)
	assert.True(t, res.Accepted)

	f.clock.Add(spin)
	assert.Equal(t, 2, f.outcomeCount())
}

func TestSelector_CountdownReadDuringTriggerKeepsCooldown(t *testing.T) {
	ctx := context.Background()
	f := newSelectorFixture(t, day, fixedPick(1))
	require.NoError(t, f.store.Set(ctx, f.key, strconv.FormatInt(t0.Add(-2*day).UnixMilli(), 10)))

	// the countdown reader fetches the expired value, then a spin commits before its delete lands
	countdown := wheel.NewCooldown(f.store, f.key, day, f.clock)
	var first wheel.TriggerResult
	f.store.onNextDelete(func() {
		var err error
		first, err = f.selector.Trigger(ctx)
		require.NoError(t, err)
	})
	_, err := countdown.ReadRemaining(ctx)
	require.NoError(t, err)
	require.True(t, first.Accepted)

	f.clock.Add(4600 * time.Millisecond)
	res, err := f.selector.Trigger(ctx)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, day-4600*time.Millisecond, res.Remaining)
	assert.Equal(t, 1, f.outcomeCount())
}

func TestSelector_TriggerWhileSpinningIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newSelectorFixture(t, 0, fixedPick(0))

	res, err := f.selector.Trigger(ctx)
	require.NoError(t, err)
	require.True(t, res.Accepted)

	// zero cooldown: only the spinning state can reject this
	f.clock.Add(time.Second)
	res, err = f.selector.Trigger(ctx)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, 1, f.store.setCount())
}

func TestSelector_ConcurrentTriggers(t *testing.T) {
	ctx := context.Background()
	f := newSelectorFixture(t, day)

	var accepted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.selector.Trigger(ctx)
			assert.NoError(t, err)
			if res.Accepted {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), accepted.Load())
	assert.Equal(t, 1, f.store.setCount())
	assert.Equal(t, 1, f.clock.PendingTimers())

	f.clock.Add(spin)
	assert.Equal(t, 1, f.outcomeCount())
}

func TestSelector_PersistFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newSelectorFixture(t, day)
	f.store.setErr = errStoreDown

	res, err := f.selector.Trigger(ctx)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCooldownPersist))
	assert.False(t, res.Accepted)
	assert.Equal(t, wheel.StateIdle, f.selector.State())
	assert.Zero(t, f.clock.PendingTimers())
}

func TestSelector_CooldownSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(t0)
	store := newMapStore()
	key := wheel.CooldownKey(uuid.New())

	first := wheel.NewSelector(wheel.NewCooldown(store, key, day, clk), wheel.DefaultCatalog(), clk, spin)
	res, err := first.Trigger(ctx)
	require.NoError(t, err)
	require.True(t, res.Accepted)

	clk.Add(time.Hour)
	second := wheel.NewSelector(wheel.NewCooldown(store, key, day, clk), wheel.DefaultCatalog(), clk, spin)
	res, err = second.Trigger(ctx)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, day-time.Hour, res.Remaining)
}

func TestSelector_AngleLandsMidSegment(t *testing.T) {
	ctx := context.Background()
	f := newSelectorFixture(t, 0, fixedPick(3))
	segAngle := wheel.DefaultCatalog().SegmentAngle()

	res, err := f.selector.Trigger(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 360*6+360-3*segAngle-segAngle/2, res.Angle, 1e-9)

	f.clock.Add(spin)
	res, err = f.selector.Trigger(ctx)
	require.NoError(t, err)
	require.True(t, res.Accepted)

	assert.Greater(t, res.Angle, 360*12.0)
	assert.InDelta(t, 360-3*segAngle-segAngle/2, math.Mod(res.Angle, 360), 1e-9)
}

func TestSelector_UniformDistribution(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(7, 11))
	f := newSelectorFixture(t, 0, wheel.WithPicker(rng.IntN))

	const trials = 12000
	n := wheel.DefaultCatalog().Len()
	counts := make([]int, n)
	for i := 0; i < trials; i++ {
		res, err := f.selector.Trigger(ctx)
		require.NoError(t, err)
		require.True(t, res.Accepted)
		counts[res.Index]++
		f.clock.Add(spin)
	}

	expected := float64(trials) / float64(n)
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	// 11 degrees of freedom, p = 0.001
	assert.Less(t, chi2, 31.26)
	assert.Equal(t, trials, f.outcomeCount())
}

func TestCatalog(t *testing.T) {
	t.Run("default catalog has twelve segments", func(t *testing.T) {
		c := wheel.DefaultCatalog()
		assert.Equal(t, 12, c.Len())
		assert.InDelta(t, 30.0, c.SegmentAngle(), 1e-9)
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		_, err := wheel.NewCatalog(nil)
		assert.ErrorIs(t, err, wheel.ErrEmptyCatalog)
	})

	t.Run("rejects bad color", func(t *testing.T) {
		_, err := wheel.NewCatalog([]wheel.Segment{{Name: "x", Color: "red"}})
		assert.True(t, errs.Is(err, wheel.ErrInvalidSegment))
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := wheel.NewCatalog([]wheel.Segment{
			{Name: "Trade", Color: "#000000"},
			{Name: "trade", Color: "#ffffff"},
		})
		assert.True(t, errs.Is(err, wheel.ErrDuplicateSegment))
	})
}
