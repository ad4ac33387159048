package commands

import (
	"context"

	"nuzlocke-tracker/internal/domain/pokemon"
	"nuzlocke-tracker/internal/pkg/clock"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type LiveboxCommands interface {
	AddLiving(ctx context.Context, req AddLivingRequest, userID uuid.UUID) (*pokemon.Living, error)
	RemoveLiving(ctx context.Context, groupID, livingID, userID uuid.UUID) error
	ClearBox(ctx context.Context, groupID uuid.UUID, box int, userID uuid.UUID) (int64, error)
}

type AddLivingRequest struct {
	GroupID uuid.UUID
	Species string
	Box     int
}

type liveboxUseCaseImpl struct {
	uow     shared.UnitOfWork
	catalog shared.SpeciesCatalog
	clock   clock.Clock
}

func NewLiveboxUseCase(uow shared.UnitOfWork, catalog shared.SpeciesCatalog, clk clock.Clock) LiveboxCommands {
	return &liveboxUseCaseImpl{uow: uow, catalog: catalog, clock: clk}
}

func (uc *liveboxUseCaseImpl) AddLiving(ctx context.Context, req AddLivingRequest, userID uuid.UUID) (*pokemon.Living, error) {
	if _, err := pokemon.NewBox(req.Box); err != nil {
		return nil, err
	}
	if err := requireMember(ctx, uc.uow, req.GroupID, userID); err != nil {
		return nil, err
	}

	species, err := uc.catalog.Lookup(ctx, req.Species)
	if err != nil {
		return nil, err
	}

	living, err := pokemon.NewLiving(uuid.New(), userID, req.GroupID, species, req.Box, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	repos := uc.uow.Reads()
	if err := repos.Living().Create(ctx, repos.DB(), living); err != nil {
		return nil, err
	}
	return living, nil
}

func (uc *liveboxUseCaseImpl) RemoveLiving(ctx context.Context, groupID, livingID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		living, err := tx.Living().FindByID(ctx, tx.DB(), livingID)
		if err != nil {
			return err
		}
		if living.GroupID() != groupID {
			return errs.ErrRecordNotFound
		}
		if living.UserID() != userID {
			return errs.ErrNotRecordOwner
		}
		return tx.Living().Delete(ctx, tx.DB(), livingID)
	})
}

// ClearBox empties the caller's box and reports how many records were removed.
func (uc *liveboxUseCaseImpl) ClearBox(ctx context.Context, groupID uuid.UUID, box int, userID uuid.UUID) (int64, error) {
	if _, err := pokemon.NewBox(box); err != nil {
		return 0, err
	}
	if err := requireMember(ctx, uc.uow, groupID, userID); err != nil {
		return 0, err
	}

	repos := uc.uow.Reads()
	return repos.Living().DeleteByBox(ctx, repos.DB(), groupID, userID, box)
}
