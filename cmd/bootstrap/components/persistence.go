package components

import (
	"log/slog"

	"nuzlocke-tracker/internal/infra/changefeed"
	"nuzlocke-tracker/internal/infra/db"
	"nuzlocke-tracker/internal/infra/kvstore"
	"nuzlocke-tracker/internal/infra/uow"
	"nuzlocke-tracker/internal/pkg/config"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	storeModule,
	feedModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var storeModule = fx.Module("persistence/store",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			kvstore.NewPostgresStore,
			fx.As(new(shared.KVStore)),
		),
	),
)

var feedModule = fx.Module("persistence/feed",
	fx.Provide(
		NewFallenFeed,
		func(f *changefeed.PostgresFeed) shared.FallenFeed { return f },
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewFallenFeed starts LISTEN with the app and stops it before the pool closes.
func NewFallenFeed(lc fx.Lifecycle, pool *pgxpool.Pool, cfg config.Config, logger *slog.Logger) *changefeed.PostgresFeed {
	feed := changefeed.NewPostgresFeed(pool, cfg, logger)
	lc.Append(fx.Hook{
		OnStart: feed.Start,
		OnStop:  feed.Stop,
	})
	return feed
}
