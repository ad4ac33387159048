package wheel

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"nuzlocke-tracker/internal/pkg/clock"
)

type State string

const (
	StateIdle     State = "idle"
	StateSpinning State = "spinning"
	StateSettled  State = "settled"
)

// fullTurns is how many whole revolutions a spin makes before landing.
const fullTurns = 6

type Outcome struct {
	Index     int
	Segment   Segment
	SpunAt    time.Time
	SettledAt time.Time
}

type TriggerResult struct {
	Accepted  bool
	Index     int
	Angle     float64
	SpunAt    time.Time
	SettlesAt time.Time
	// Remaining is the cooldown left when the trigger was rejected.
	Remaining time.Duration
}

type Snapshot struct {
	State       State
	Remaining   time.Duration
	Angle       float64
	SettlesAt   time.Time
	LastOutcome *Outcome
}

type SettledFunc func(Outcome)

type Option func(*Selector)

// WithPicker replaces the uniform random source. pick(n) must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *Selector) { s.pick = pick }
}

func WithSettledFunc(fn SettledFunc) Option {
	return func(s *Selector) { s.onSettled = fn }
}

type Selector struct {
	mu sync.Mutex

	cooldown     *Cooldown
	catalog      Catalog
	clock        clock.Clock
	spinDuration time.Duration
	pick         func(n int) int
	onSettled    SettledFunc

	state     State
	angle     float64
	settlesAt time.Time
	last      *Outcome
}

func NewSelector(cooldown *Cooldown, catalog Catalog, clk clock.Clock, spinDuration time.Duration, opts ...Option) *Selector {
	s := &Selector{
		cooldown:     cooldown,
		catalog:      catalog,
		clock:        clk,
		spinDuration: spinDuration,
		pick:         rand.IntN,
		state:        StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Trigger starts a spin when the selector is not spinning and the cooldown has elapsed.
// A rejected trigger is not an error. The trigger time is persisted before the pick, so a
// crash mid-spin still consumes the cooldown.
func (s *Selector) Trigger(ctx context.Context) (TriggerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSpinning {
		return TriggerResult{Accepted: false}, nil
	}

	remaining, err := s.cooldown.ReadRemaining(ctx)
	if err != nil {
		return TriggerResult{}, err
	}
	if remaining > 0 {
		return TriggerResult{Accepted: false, Remaining: remaining}, nil
	}

	now := s.clock.Now()
	if err := s.cooldown.RecordTrigger(ctx, now); err != nil {
		return TriggerResult{}, err
	}

	idx := s.pick(s.catalog.Len())
	s.angle = nextAngle(s.angle, idx, s.catalog.SegmentAngle())
	s.state = StateSpinning
	s.settlesAt = now.Add(s.spinDuration)

	pending := Outcome{
		Index:   idx,
		Segment: s.catalog.At(idx),
		SpunAt:  now,
	}
	s.clock.AfterFunc(s.spinDuration, func() { s.settle(pending) })

	return TriggerResult{
		Accepted:  true,
		Index:     idx,
		Angle:     s.angle,
		SpunAt:    now,
		SettlesAt: s.settlesAt,
	}, nil
}

func (s *Selector) settle(o Outcome) {
	s.mu.Lock()
	o.SettledAt = s.clock.Now()
	s.state = StateSettled
	s.last = &o
	cb := s.onSettled
	s.mu.Unlock()

	if cb != nil {
		cb(o)
	}
}

func (s *Selector) Snapshot(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, err := s.cooldown.ReadRemaining(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		State:     s.state,
		Remaining: remaining,
		Angle:     s.angle,
		SettlesAt: s.settlesAt,
	}
	if s.last != nil {
		o := *s.last
		snap.LastOutcome = &o
	}
	return snap, nil
}

func (s *Selector) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Busy reports whether a spin is in progress.
func (s *Selector) Busy() bool {
	return s.State() == StateSpinning
}

func (s *Selector) Catalog() Catalog { return s.catalog }

func (s *Selector) CooldownDuration() time.Duration { return s.cooldown.Duration() }

// nextAngle turns the wheel forward several times from its current position and stops with
// the pointer at the middle of segment idx.
func nextAngle(current float64, idx int, segAngle float64) float64 {
	base := current - math.Mod(current, 360)
	return base + 360*fullTurns + (360 - float64(idx)*segAngle - segAngle/2)
}
