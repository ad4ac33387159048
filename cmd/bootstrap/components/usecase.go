package components

import (
	"context"
	"log/slog"

	"nuzlocke-tracker/internal/domain/wheel"
	"nuzlocke-tracker/internal/infra/pokeapi"
	"nuzlocke-tracker/internal/infra/wheelcatalog"
	"nuzlocke-tracker/internal/pkg/clock"
	"nuzlocke-tracker/internal/pkg/config"
	"nuzlocke-tracker/internal/usecase"
	"nuzlocke-tracker/internal/usecase/commands"
	"nuzlocke-tracker/internal/usecase/queries"
	"nuzlocke-tracker/internal/usecase/reconciler"
	"nuzlocke-tracker/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseReactorModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewWheelCatalog,
	fx.Annotate(
		pokeapi.NewClient,
		fx.As(new(shared.SpeciesCatalog)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewGroupUseCase,
		commands.NewLiveboxUseCase,
		commands.NewDeadboxUseCase,
		commands.NewChallengeUseCase,
		commands.NewChatUseCase,
		NewWheelService,
		func(s *commands.WheelService) commands.WheelCommands { return s },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPokemonQueries,
		queries.NewGroupQueries,
		queries.NewPokedexQueries,
		queries.NewCommunityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseReactorModule = fx.Module("usecase/reconciler",
	fx.Provide(
		NewReactor,
	),
)

func NewWheelCatalog(cfg config.Config) (wheel.Catalog, error) {
	return wheelcatalog.Load(cfg.Wheel.CatalogPath)
}

// NewWheelService runs the idle-selector janitor for the lifetime of the app.
func NewWheelService(
	lc fx.Lifecycle,
	uow shared.UnitOfWork,
	store shared.KVStore,
	notifier shared.Notifier,
	catalog wheel.Catalog,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *commands.WheelService {
	svc := commands.NewWheelService(uow, store, notifier, catalog, clk, cfg, logger)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			svc.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			svc.Stop()
			return nil
		},
	})
	return svc
}

func NewReactor(
	lc fx.Lifecycle,
	feed shared.FallenFeed,
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	cfg config.Config,
	logger *slog.Logger,
) (*reconciler.Reactor, error) {
	r, err := reconciler.NewReactor(feed, uow, notifier, cfg, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return r.Close()
		},
	})
	return r, nil
}
