package reconciler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nuzlocke-tracker/internal/pkg/config"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/errgroup"
)

var (
	ErrReactorClosed = errs.New("reactor is closed")
	ErrInvalidEvent  = errs.New("fallen event is missing owner or species")
)

const (
	EventLivingRemoved = "living_removed"

	taskTimeout = 10 * time.Second
)

type LivingRemoved struct {
	LivingID  uuid.UUID `json:"living_id"`
	FallenID  uuid.UUID `json:"fallen_id"`
	GroupID   uuid.UUID `json:"group_id"`
	SpeciesID int       `json:"pokemon_id"`
}

type ownerSub struct {
	sub  shared.Subscription
	refs int
}

// Reactor removes a player's living record once the same species shows up in their fallen box.
type Reactor struct {
	feed         shared.FallenFeed
	uow          shared.UnitOfWork
	notifier     shared.Notifier
	logger       *slog.Logger
	scopeByGroup bool

	seen  *lru.Cache
	tasks *errgroup.Group

	// pending holds fallen ids with an attempt running; true once a redelivery arrived meanwhile
	pendingMu sync.Mutex
	pending   map[uuid.UUID]bool

	// gate orders task submission against Close
	gate   sync.RWMutex
	closed bool

	mu   sync.Mutex
	subs map[uuid.UUID]*ownerSub
}

func NewReactor(feed shared.FallenFeed, uow shared.UnitOfWork, notifier shared.Notifier, cfg config.Config, logger *slog.Logger) (*Reactor, error) {
	seen, err := lru.New(max(cfg.Reactor.DedupeSize, 1))
	if err != nil {
		return nil, errs.Wrap(err, "create dedupe cache")
	}

	tasks := new(errgroup.Group)
	tasks.SetLimit(max(cfg.Reactor.MaxInFlight, 1))

	return &Reactor{
		feed:         feed,
		uow:          uow,
		notifier:     notifier,
		logger:       logger.With("component", "reactor"),
		scopeByGroup: cfg.Reactor.ScopeByGroup,
		seen:         seen,
		pending:      make(map[uuid.UUID]bool),
		tasks:        tasks,
		subs:         make(map[uuid.UUID]*ownerSub),
	}, nil
}

// Subscribe starts reconciling owner's fallen inserts. Every caller shares one feed
// subscription per owner; the feed is released when the last caller releases.
func (r *Reactor) Subscribe(owner uuid.UUID) (func(), error) {
	r.gate.RLock()
	closed := r.closed
	r.gate.RUnlock()
	if closed {
		return nil, ErrReactorClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.subs[owner]
	if !ok {
		sub, err := r.feed.SubscribeInserts(shared.FeedFilter{UserID: owner}, r.handle)
		if err != nil {
			return nil, errs.Wrap(err, "subscribe to fallen inserts")
		}
		s = &ownerSub{sub: sub}
		r.subs[owner] = s
		r.logger.Debug("owner subscribed", "user_id", owner)
	}
	s.refs++

	var once sync.Once
	return func() {
		once.Do(func() { r.release(owner, s) })
	}, nil
}

func (r *Reactor) release(owner uuid.UUID, s *ownerSub) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.subs[owner] != s {
		return
	}
	s.refs--
	if s.refs > 0 {
		return
	}
	delete(r.subs, owner)
	s.sub.Unsubscribe()
	r.logger.Debug("owner unsubscribed", "user_id", owner)
}

// Subscribers reports how many owners currently hold a feed subscription.
func (r *Reactor) Subscribers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

func (r *Reactor) handle(ev shared.FallenEvent) {
	r.gate.RLock()
	defer r.gate.RUnlock()
	if r.closed {
		return
	}

	r.tasks.Go(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()

		if _, err := r.Reconcile(ctx, ev); err != nil {
			r.logger.Error("failed to reconcile fallen record",
				"fallen_id", ev.ID,
				"user_id", ev.UserID,
				"pokemon_id", ev.SpeciesID,
				"error", err.Error())
		}
		return nil
	})
}

// Reconcile deletes the earliest living record the fallen event supersedes.
// A missing match and a repeated event are both no-ops.
func (r *Reactor) Reconcile(ctx context.Context, ev shared.FallenEvent) (bool, error) {
	if ev.UserID == uuid.Nil || ev.SpeciesID <= 0 {
		return false, ErrInvalidEvent
	}
	if ev.ID == uuid.Nil {
		return r.reconcile(ctx, ev)
	}
	if !r.claim(ev.ID) {
		r.logger.Debug("duplicate fallen event dropped", "fallen_id", ev.ID)
		return false, nil
	}

	for {
		removed, err := r.reconcile(ctx, ev)
		if !r.finish(ev.ID, err == nil) {
			return removed, err
		}
		r.logger.Warn("retrying fallen record for a redelivery", "fallen_id", ev.ID, "error", err.Error())
	}
}

// claim reports whether the caller should process id. A delivery that arrives
// while another attempt runs is remembered so a failed attempt is repeated.
func (r *Reactor) claim(id uuid.UUID) bool {
	r.pendingMu.Lock()
	defer r.pendingMu.Unlock()

	if r.seen.Contains(id) {
		return false
	}
	if _, running := r.pending[id]; running {
		r.pending[id] = true
		return false
	}
	r.pending[id] = false
	return true
}

// finish settles an attempt and reports whether a redelivery is owed another one.
func (r *Reactor) finish(id uuid.UUID, ok bool) bool {
	r.pendingMu.Lock()
	defer r.pendingMu.Unlock()

	if ok {
		r.seen.Add(id, struct{}{})
		delete(r.pending, id)
		return false
	}
	if r.pending[id] {
		r.pending[id] = false
		return true
	}
	delete(r.pending, id)
	return false
}

func (r *Reactor) reconcile(ctx context.Context, ev shared.FallenEvent) (bool, error) {
	match := shared.LivingMatch{UserID: ev.UserID, SpeciesID: ev.SpeciesID}
	if r.scopeByGroup {
		groupID := ev.GroupID
		match.GroupID = &groupID
	}

	repos := r.uow.Reads()
	livingID, removed, err := repos.Living().DeleteEarliestMatch(ctx, repos.DB(), match)
	if err != nil {
		return false, errs.Wrap(err, "delete living match")
	}
	if !removed {
		return false, nil
	}

	r.logger.Info("living record removed after fall",
		"living_id", livingID,
		"fallen_id", ev.ID,
		"user_id", ev.UserID,
		"pokemon_id", ev.SpeciesID)

	if r.notifier != nil {
		r.notifier.NotifyUser(ev.UserID, EventLivingRemoved, LivingRemoved{
			LivingID:  livingID,
			FallenID:  ev.ID,
			GroupID:   ev.GroupID,
			SpeciesID: ev.SpeciesID,
		})
	}
	return true, nil
}

// Close unsubscribes every owner and waits for in-flight reconciliations.
func (r *Reactor) Close() error {
	r.gate.Lock()
	r.closed = true
	r.gate.Unlock()

	r.mu.Lock()
	for owner, s := range r.subs {
		s.sub.Unsubscribe()
		delete(r.subs, owner)
	}
	r.mu.Unlock()

	return r.tasks.Wait()
}
