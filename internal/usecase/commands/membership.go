package commands

import (
	"context"

	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

// requireMember fails with errs.ErrNotGroupMember unless userID belongs to groupID.
func requireMember(ctx context.Context, uow shared.UnitOfWork, groupID, userID uuid.UUID) error {
	repos := uow.Reads()
	_, err := repos.Members().Find(ctx, repos.DB(), groupID, userID)
	return err
}
