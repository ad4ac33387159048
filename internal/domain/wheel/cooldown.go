package wheel

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"nuzlocke-tracker/internal/pkg/clock"
	"nuzlocke-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

// Store is the single-value persistence the cooldown needs. Values survive
// process restarts.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// DeleteIf removes key only while it still holds expected.
	DeleteIf(ctx context.Context, key, expected string) (bool, error)
}

func CooldownKey(userID uuid.UUID) string {
	return "wheel:last_spin:" + userID.String()
}

type Cooldown struct {
	store    Store
	key      string
	duration time.Duration
	clock    clock.Clock
}

func NewCooldown(store Store, key string, duration time.Duration, clk clock.Clock) *Cooldown {
	return &Cooldown{
		store:    store,
		key:      key,
		duration: duration,
		clock:    clk,
	}
}

func (c *Cooldown) Duration() time.Duration { return c.duration }

// ReadRemaining clears the stored timestamp once it has expired.
func (c *Cooldown) ReadRemaining(ctx context.Context) (time.Duration, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return 0, errs.Wrap(err, "read last trigger")
	}
	if !ok {
		return 0, nil
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.clear(ctx, raw)
		return 0, nil
	}

	remaining := time.UnixMilli(ms).Add(c.duration).Sub(c.clock.Now())
	if remaining <= 0 {
		c.clear(ctx, raw)
		return 0, nil
	}
	return remaining, nil
}

func (c *Cooldown) RecordTrigger(ctx context.Context, now time.Time) error {
	if err := c.store.Set(ctx, c.key, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		return errs.Mark(errs.Wrap(err, "record trigger"), errs.ErrCooldownPersist)
	}
	return nil
}

// clear only removes the value that was read, so a trigger recorded after the
// read survives. A failed delete leaves a stale key that still reads as expired.
func (c *Cooldown) clear(ctx context.Context, stale string) {
	_, _ = c.store.DeleteIf(ctx, c.key, stale)
}

// FormatRemaining renders HH:MM:SS, floor-truncated to the second.
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "00:00:00"
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
