package components

import (
	"context"
	"log/slog"

	"nuzlocke-tracker/internal/handler"
	"nuzlocke-tracker/internal/handler/api"
	"nuzlocke-tracker/internal/handler/live"
	"nuzlocke-tracker/internal/handler/middleware"
	"nuzlocke-tracker/internal/usecase/reconciler"
	"nuzlocke-tracker/internal/usecase/shared"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewGroupHandler,
		api.NewLiveboxHandler,
		api.NewDeadboxHandler,
		api.NewWheelHandler,
		api.NewPokedexHandler,
		api.NewChallengeHandler,
		api.NewChatHandler,
		middleware.NewAuthMiddleware,
		NewHub,
		func(h *live.Hub) shared.Notifier { return h },
		func(r *reconciler.Reactor) live.Reconciler { return r },
		live.NewHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

// NewHub drops open live sessions on shutdown so the HTTP server can drain.
func NewHub(lc fx.Lifecycle, logger *slog.Logger) *live.Hub {
	hub := live.NewHub(logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Shutdown()
			return nil
		},
	})
	return hub
}

func NewHandlers(
	auth *api.AuthHandler,
	group *api.GroupHandler,
	livebox *api.LiveboxHandler,
	deadbox *api.DeadboxHandler,
	wheel *api.WheelHandler,
	pokedex *api.PokedexHandler,
	challenges *api.ChallengeHandler,
	chat *api.ChatHandler,
	liveHandler *live.Handler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Group:   group,
		Livebox: livebox,
		Deadbox: deadbox,
		Wheel:   wheel,
		Pokedex: pokedex,
		Live:    liveHandler,

		Challenges: challenges,
		Chat:       chat,
	}
}
