package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nuzlocke-tracker/internal/domain/wheel"
	"nuzlocke-tracker/internal/pkg/clock"
	"nuzlocke-tracker/internal/pkg/config"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EventSpinSettled = "spin_settled"

	settleTimeout = 10 * time.Second
)

type WheelCommands interface {
	Spin(ctx context.Context, groupID, userID uuid.UUID) (*SpinResult, error)
	Status(ctx context.Context, groupID, userID uuid.UUID) (*WheelStatus, error)
	Remaining(ctx context.Context, userID uuid.UUID) (time.Duration, error)
}

type SpinResult struct {
	Accepted  bool
	Index     int
	Segment   *wheel.Segment
	Angle     float64
	SettlesAt time.Time
	Remaining time.Duration
}

type WheelStatus struct {
	State       wheel.State
	Remaining   time.Duration
	Angle       float64
	SettlesAt   time.Time
	LastOutcome *wheel.Outcome
	Segments    []wheel.Segment
}

// SpinSettled is pushed to the spinner's live sessions once the wheel stops.
type SpinSettled struct {
	SpinID       uuid.UUID `json:"spin_id"`
	GroupID      uuid.UUID `json:"group_id"`
	Index        int       `json:"index"`
	Segment      string    `json:"segment"`
	Description  string    `json:"description"`
	Color        string    `json:"color"`
	BalanceDelta int64     `json:"balance_delta"`
	SettledAt    time.Time `json:"settled_at"`
}

type wheelEntry struct {
	// mu serializes triggers so groupID always belongs to the pending spin
	mu           sync.Mutex
	selector     *wheel.Selector
	groupID      uuid.UUID
	lastActivity time.Time
}

// WheelService keeps one selector per user. Idle selectors are evicted by the
// janitor; their cooldown lives in the store so eviction loses nothing.
type WheelService struct {
	uow      shared.UnitOfWork
	store    shared.KVStore
	notifier shared.Notifier
	catalog  wheel.Catalog
	clock    clock.Clock
	logger   *slog.Logger
	cfg      config.WheelConfig
	opts     []wheel.Option

	mu      sync.Mutex
	entries map[uuid.UUID]*wheelEntry

	stop chan struct{}
	done chan struct{}
}

func NewWheelService(
	uow shared.UnitOfWork,
	store shared.KVStore,
	notifier shared.Notifier,
	catalog wheel.Catalog,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
	opts ...wheel.Option,
) *WheelService {
	return &WheelService{
		uow:      uow,
		store:    store,
		notifier: notifier,
		catalog:  catalog,
		clock:    clk,
		logger:   logger.With("component", "wheel"),
		cfg:      cfg.Wheel,
		opts:     opts,
		entries:  make(map[uuid.UUID]*wheelEntry),
	}
}

func (s *WheelService) cooldown(userID uuid.UUID) *wheel.Cooldown {
	return wheel.NewCooldown(s.store, wheel.CooldownKey(userID), s.cfg.Cooldown, s.clock)
}

func (s *WheelService) entry(userID uuid.UUID) *wheelEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		e = &wheelEntry{}
		opts := append([]wheel.Option{}, s.opts...)
		opts = append(opts, wheel.WithSettledFunc(func(o wheel.Outcome) { s.settled(userID, e, o) }))
		e.selector = wheel.NewSelector(s.cooldown(userID), s.catalog, s.clock, s.cfg.SpinDuration, opts...)
		s.entries[userID] = e
	}
	e.lastActivity = s.clock.Now()
	return e
}

func (s *WheelService) Spin(ctx context.Context, groupID, userID uuid.UUID) (*SpinResult, error) {
	if err := requireMember(ctx, s.uow, groupID, userID); err != nil {
		return nil, err
	}

	e := s.entry(userID)
	e.mu.Lock()
	res, err := e.selector.Trigger(ctx)
	if err == nil && res.Accepted {
		e.groupID = groupID
	}
	e.mu.Unlock()
	if err != nil {
		return nil, err
	}

	out := &SpinResult{Accepted: res.Accepted, Remaining: res.Remaining}
	if res.Accepted {
		seg := s.catalog.At(res.Index)
		out.Index = res.Index
		out.Segment = &seg
		out.Angle = res.Angle
		out.SettlesAt = res.SettlesAt
		s.logger.Info("wheel spun", "user_id", userID, "group_id", groupID, "index", res.Index)
	}
	return out, nil
}

func (s *WheelService) Status(ctx context.Context, groupID, userID uuid.UUID) (*WheelStatus, error) {
	if err := requireMember(ctx, s.uow, groupID, userID); err != nil {
		return nil, err
	}

	snap, err := s.entry(userID).selector.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &WheelStatus{
		State:       snap.State,
		Remaining:   snap.Remaining,
		Angle:       snap.Angle,
		SettlesAt:   snap.SettlesAt,
		LastOutcome: snap.LastOutcome,
		Segments:    s.catalog.Segments(),
	}, nil
}

// Remaining reads the cooldown without touching the selector registry.
func (s *WheelService) Remaining(ctx context.Context, userID uuid.UUID) (time.Duration, error) {
	return s.cooldown(userID).ReadRemaining(ctx)
}

func (s *WheelService) settled(userID uuid.UUID, e *wheelEntry, o wheel.Outcome) {
	e.mu.Lock()
	groupID := e.groupID
	e.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), settleTimeout)
	defer cancel()

	rec := shared.SpinRecord{
		ID:           uuid.New(),
		GroupID:      groupID,
		UserID:       userID,
		SegmentIndex: o.Index,
		SegmentName:  o.Segment.Name,
		BalanceDelta: o.Segment.BalanceDelta,
		SpunAt:       o.SpunAt,
		SettledAt:    o.SettledAt,
	}
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Spins().Create(ctx, tx.DB(), rec); derr != nil {
			return derr
		}
		if rec.BalanceDelta == 0 {
			return nil
		}
		m, derr := tx.Members().FindForUpdate(ctx, tx.DB(), groupID, userID)
		if derr != nil {
			return derr
		}
		m.Credit(rec.BalanceDelta)
		return tx.Members().Save(ctx, tx.DB(), m)
	})
	if err != nil {
		// the outcome still reaches the player; only the history entry is lost
		s.logger.Error("failed to record spin outcome",
			"user_id", userID,
			"group_id", groupID,
			"segment", o.Segment.Name,
			"error", err.Error())
	}

	if s.notifier != nil {
		s.notifier.NotifyUser(userID, EventSpinSettled, SpinSettled{
			SpinID:       rec.ID,
			GroupID:      groupID,
			Index:        o.Index,
			Segment:      o.Segment.Name,
			Description:  o.Segment.Description,
			Color:        o.Segment.Color,
			BalanceDelta: o.Segment.BalanceDelta,
			SettledAt:    o.SettledAt,
		})
	}
}

// EvictIdle drops selectors that are not spinning and have not been used for the
// configured idle period. It returns how many were dropped.
func (s *WheelService) EvictIdle() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.clock.Now().Add(-s.cfg.IdleEviction)
	evicted := 0
	for userID, e := range s.entries {
		if e.lastActivity.Before(cutoff) && !e.selector.Busy() {
			delete(s.entries, userID)
			evicted++
		}
	}
	return evicted
}

func (s *WheelService) Selectors() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Start runs the janitor until Stop.
func (s *WheelService) Start() {
	interval := max(s.cfg.IdleEviction/6, time.Second)
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				if n := s.EvictIdle(); n > 0 {
					s.logger.Info("evicted idle wheel selectors", "count", n)
				}
			}
		}
	}()
}

func (s *WheelService) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
}
