package shared

import (
	"context"
	"time"

	"nuzlocke-tracker/internal/domain/pokemon"

	"github.com/google/uuid"
)

// KVStore holds small string values that must survive restarts.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	DeleteIf(ctx context.Context, key, expected string) (bool, error)
}

// FallenEvent is one insert into the fallen table as delivered by the change feed.
type FallenEvent struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	GroupID   uuid.UUID `json:"group_id"`
	SpeciesID int       `json:"pokemon_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedFilter struct {
	UserID uuid.UUID
}

type FallenHandler func(FallenEvent)

type Subscription interface {
	Unsubscribe()
}

// FallenFeed delivers fallen inserts at least once and in no particular order.
type FallenFeed interface {
	SubscribeInserts(filter FeedFilter, handler FallenHandler) (Subscription, error)
}

type SpeciesCatalog interface {
	Lookup(ctx context.Context, name string) (pokemon.Species, error)
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
}

// Notifier pushes server events to open live sessions.
type Notifier interface {
	NotifyUser(userID uuid.UUID, event string, payload any)
	// NotifyGroup reaches every session currently attached to groupID.
	NotifyGroup(groupID uuid.UUID, event string, payload any)
}
