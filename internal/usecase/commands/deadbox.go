package commands

import (
	"context"

	"nuzlocke-tracker/internal/domain/pokemon"
	"nuzlocke-tracker/internal/pkg/clock"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type DeadboxCommands interface {
	AddFallen(ctx context.Context, req AddFallenRequest, userID uuid.UUID) (*AddFallenResult, error)
	RemoveFallen(ctx context.Context, groupID, fallenID, userID uuid.UUID) (*LivesResult, error)
	ClearFallen(ctx context.Context, groupID, userID uuid.UUID) (*ClearFallenResult, error)
}

type AddFallenRequest struct {
	GroupID uuid.UUID
	Species string
}

type AddFallenResult struct {
	Fallen *pokemon.Fallen
	Lives  int
}

type LivesResult struct {
	Restored int
	Lives    int
}

type ClearFallenResult struct {
	Removed  int64
	Restored int
	Lives    int
}

type deadboxUseCaseImpl struct {
	uow     shared.UnitOfWork
	catalog shared.SpeciesCatalog
	clock   clock.Clock
}

func NewDeadboxUseCase(uow shared.UnitOfWork, catalog shared.SpeciesCatalog, clk clock.Clock) DeadboxCommands {
	return &deadboxUseCaseImpl{uow: uow, catalog: catalog, clock: clk}
}

// AddFallen records a fallen Pokémon at the price of one life. The insert and the
// life change commit together.
func (uc *deadboxUseCaseImpl) AddFallen(ctx context.Context, req AddFallenRequest, userID uuid.UUID) (*AddFallenResult, error) {
	species, err := uc.catalog.Lookup(ctx, req.Species)
	if err != nil {
		return nil, err
	}

	var result *AddFallenResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, derr := tx.Members().FindForUpdate(ctx, tx.DB(), req.GroupID, userID)
		if derr != nil {
			return derr
		}
		if derr = m.LoseLife(); derr != nil {
			return derr
		}

		fallen, derr := pokemon.NewFallen(uuid.New(), userID, req.GroupID, species, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.Members().Save(ctx, tx.DB(), m); derr != nil {
			return derr
		}
		if derr = tx.Fallen().Create(ctx, tx.DB(), fallen); derr != nil {
			return derr
		}
		result = &AddFallenResult{Fallen: fallen, Lives: m.Lives()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveFallen deletes one of the caller's fallen records and gives back a life.
func (uc *deadboxUseCaseImpl) RemoveFallen(ctx context.Context, groupID, fallenID, userID uuid.UUID) (*LivesResult, error) {
	var result *LivesResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fallen, derr := tx.Fallen().FindByID(ctx, tx.DB(), fallenID)
		if derr != nil {
			return derr
		}
		if fallen.GroupID() != groupID {
			return errs.ErrRecordNotFound
		}
		if fallen.UserID() != userID {
			return errs.ErrNotRecordOwner
		}

		m, derr := tx.Members().FindForUpdate(ctx, tx.DB(), groupID, userID)
		if derr != nil {
			return derr
		}
		if derr = tx.Fallen().Delete(ctx, tx.DB(), fallenID); derr != nil {
			return derr
		}
		restored := m.RestoreLives(1)
		if derr = tx.Members().Save(ctx, tx.DB(), m); derr != nil {
			return derr
		}
		result = &LivesResult{Restored: restored, Lives: m.Lives()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ClearFallen deletes all of the caller's fallen records. Lives come back one per
// record, never above the initial count.
func (uc *deadboxUseCaseImpl) ClearFallen(ctx context.Context, groupID, userID uuid.UUID) (*ClearFallenResult, error) {
	var result *ClearFallenResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, derr := tx.Members().FindForUpdate(ctx, tx.DB(), groupID, userID)
		if derr != nil {
			return derr
		}
		removed, derr := tx.Fallen().DeleteByOwner(ctx, tx.DB(), groupID, userID)
		if derr != nil {
			return derr
		}
		restored := m.RestoreLives(int(removed))
		if restored > 0 {
			if derr = tx.Members().Save(ctx, tx.DB(), m); derr != nil {
				return derr
			}
		}
		result = &ClearFallenResult{Removed: removed, Restored: restored, Lives: m.Lives()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
