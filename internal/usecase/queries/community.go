package queries

import (
	"context"

	"nuzlocke-tracker/internal/domain/chat"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommunityQueries reads the group's challenge board and chat history.
type CommunityQueries interface {
	ListChallenges(ctx context.Context, groupID, actorID uuid.UUID) ([]*ChallengeView, error)
	ChatHistory(ctx context.Context, groupID, actorID uuid.UUID) ([]*ChatMessageView, error)
}

type communityQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCommunityQueries(uow shared.UnitOfWork) CommunityQueries {
	return &communityQueriesImpl{uow: uow}
}

func (q *communityQueriesImpl) ListChallenges(ctx context.Context, groupID, actorID uuid.UUID) ([]*ChallengeView, error) {
	if err := requireMember(ctx, q.uow, groupID, actorID); err != nil {
		return nil, err
	}

	repos := q.uow.Reads()
	list, err := repos.Challenges().ListByGroup(ctx, repos.DB(), groupID)
	if err != nil {
		return nil, err
	}

	views := make([]*ChallengeView, 0, len(list))
	for _, c := range list {
		views = append(views, ToChallengeView(c))
	}
	return views, nil
}

// ChatHistory returns the most recent messages, oldest first.
func (q *communityQueriesImpl) ChatHistory(ctx context.Context, groupID, actorID uuid.UUID) ([]*ChatMessageView, error) {
	if err := requireMember(ctx, q.uow, groupID, actorID); err != nil {
		return nil, err
	}

	repos := q.uow.Reads()
	entries, err := repos.Chat().ListRecent(ctx, repos.DB(), groupID, chat.HistoryLimit)
	if err != nil {
		return nil, err
	}

	views := make([]*ChatMessageView, 0, len(entries))
	for _, e := range entries {
		views = append(views, &ChatMessageView{
			ID:        e.ID,
			UserID:    e.UserID,
			Username:  e.Username,
			Body:      e.Body,
			CreatedAt: e.CreatedAt,
		})
	}
	return views, nil
}
