package queries

import (
	"context"

	"nuzlocke-tracker/internal/domain/pokemon"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type LivingFilters struct {
	UserID *uuid.UUID
	Box    *int
}

type PokemonQueries interface {
	ListLiving(ctx context.Context, groupID uuid.UUID, filters LivingFilters, actorID uuid.UUID) ([]*LivingView, error)
	ListFallen(ctx context.Context, groupID uuid.UUID, userFilter *uuid.UUID, actorID uuid.UUID) ([]*FallenView, error)
}

type pokemonQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewPokemonQueries(uow shared.UnitOfWork) PokemonQueries {
	return &pokemonQueriesImpl{uow: uow}
}

func (q *pokemonQueriesImpl) ListLiving(ctx context.Context, groupID uuid.UUID, filters LivingFilters, actorID uuid.UUID) ([]*LivingView, error) {
	if filters.Box != nil {
		if _, err := pokemon.NewBox(*filters.Box); err != nil {
			return nil, err
		}
	}
	if err := requireMember(ctx, q.uow, groupID, actorID); err != nil {
		return nil, err
	}

	repos := q.uow.Reads()
	records, err := repos.Living().List(ctx, repos.DB(), shared.LivingFilter{
		GroupID: groupID,
		UserID:  filters.UserID,
		Box:     filters.Box,
	})
	if err != nil {
		return nil, err
	}

	views := make([]*LivingView, 0, len(records))
	for _, l := range records {
		views = append(views, ToLivingView(l))
	}
	return views, nil
}

func (q *pokemonQueriesImpl) ListFallen(ctx context.Context, groupID uuid.UUID, userFilter *uuid.UUID, actorID uuid.UUID) ([]*FallenView, error) {
	if err := requireMember(ctx, q.uow, groupID, actorID); err != nil {
		return nil, err
	}

	repos := q.uow.Reads()
	records, err := repos.Fallen().List(ctx, repos.DB(), shared.FallenFilter{GroupID: groupID, UserID: userFilter})
	if err != nil {
		return nil, err
	}

	views := make([]*FallenView, 0, len(records))
	for _, f := range records {
		views = append(views, ToFallenView(f))
	}
	return views, nil
}

func requireMember(ctx context.Context, uow shared.UnitOfWork, groupID, userID uuid.UUID) error {
	repos := uow.Reads()
	_, err := repos.Members().Find(ctx, repos.DB(), groupID, userID)
	return err
}
