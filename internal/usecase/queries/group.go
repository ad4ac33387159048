package queries

import (
	"context"

	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type GroupQueries interface {
	Standings(ctx context.Context, groupID, actorID uuid.UUID) ([]*MemberView, error)
	SpinHistory(ctx context.Context, groupID, actorID uuid.UUID, limit int) ([]*SpinView, error)
}

type groupQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewGroupQueries(uow shared.UnitOfWork) GroupQueries {
	return &groupQueriesImpl{uow: uow}
}

func (q *groupQueriesImpl) Standings(ctx context.Context, groupID, actorID uuid.UUID) ([]*MemberView, error) {
	if err := requireMember(ctx, q.uow, groupID, actorID); err != nil {
		return nil, err
	}

	repos := q.uow.Reads()
	rows, err := repos.Members().ListStandings(ctx, repos.DB(), groupID)
	if err != nil {
		return nil, err
	}

	views := make([]*MemberView, 0, len(rows))
	for _, r := range rows {
		views = append(views, &MemberView{
			UserID:   r.UserID,
			Username: r.Username,
			Lives:    r.Lives,
			Balance:  r.Balance,
			Deaths:   r.Deaths,
			JoinedAt: r.JoinedAt,
		})
	}
	return views, nil
}

// SpinHistory returns the actor's own spins in the group, newest first.
func (q *groupQueriesImpl) SpinHistory(ctx context.Context, groupID, actorID uuid.UUID, limit int) ([]*SpinView, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = min(limit, MaxHistoryLimit)

	if err := requireMember(ctx, q.uow, groupID, actorID); err != nil {
		return nil, err
	}

	repos := q.uow.Reads()
	rows, err := repos.Spins().ListByUser(ctx, repos.DB(), groupID, actorID, limit)
	if err != nil {
		return nil, err
	}

	views := make([]*SpinView, 0, len(rows))
	for _, r := range rows {
		views = append(views, &SpinView{
			ID:           r.ID,
			SegmentIndex: r.SegmentIndex,
			SegmentName:  r.SegmentName,
			BalanceDelta: r.BalanceDelta,
			SpunAt:       r.SpunAt,
			SettledAt:    r.SettledAt,
		})
	}
	return views, nil
}
