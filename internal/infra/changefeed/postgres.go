package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"nuzlocke-tracker/internal/pkg/config"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FallenChannel must match the pg_notify channel of the deadbox insert trigger
// in migrations/001_initial_schema.sql.
const FallenChannel = "deadbox_inserted"

// PostgresFeed relays the NOTIFY payloads emitted by the deadbox insert trigger.
type PostgresFeed struct {
	*Dispatcher

	pool           *pgxpool.Pool
	channel        string
	reconnectDelay time.Duration
	logger         *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPostgresFeed(pool *pgxpool.Pool, cfg config.Config, logger *slog.Logger) *PostgresFeed {
	return &PostgresFeed{
		Dispatcher:     NewDispatcher(),
		pool:           pool,
		channel:        FallenChannel,
		reconnectDelay: cfg.Reactor.ReconnectDelay,
		logger:         logger.With("component", "changefeed", "channel", FallenChannel),
	}
}

func (f *PostgresFeed) Start(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.done = make(chan struct{})
	go f.run(ctx)
	return nil
}

func (f *PostgresFeed) Stop(ctx context.Context) error {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.cancel = nil
	f.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *PostgresFeed) run(ctx context.Context) {
	defer close(f.done)

	for {
		err := f.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		f.logger.Warn("listener disconnected, reconnecting",
			"error", err,
			"delay_ms", f.reconnectDelay.Milliseconds())

		select {
		case <-ctx.Done():
			return
		case <-time.After(f.reconnectDelay):
		}
	}
}

func (f *PostgresFeed) listen(ctx context.Context) error {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return errs.Wrap(err, "acquire listener connection")
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{f.channel}.Sanitize()); err != nil {
		return errs.Wrap(err, "listen")
	}
	f.logger.Info("listening for fallen inserts")

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return errs.Wrap(err, "wait for notification")
		}

		ev, err := DecodeFallenEvent([]byte(n.Payload))
		if err != nil {
			f.logger.Error("dropping malformed notification", "payload", n.Payload, "error", err.Error())
			continue
		}
		f.Dispatch(ev)
	}
}

// DecodeFallenEvent parses the row_to_json payload of a deadbox insert.
func DecodeFallenEvent(payload []byte) (shared.FallenEvent, error) {
	var ev shared.FallenEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return shared.FallenEvent{}, errs.Wrap(err, "decode fallen event")
	}
	return ev, nil
}
