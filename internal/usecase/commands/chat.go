package commands

import (
	"context"
	"time"

	"nuzlocke-tracker/internal/domain/chat"
	"nuzlocke-tracker/internal/pkg/clock"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EventChatMessage = "chat_message"
	EventChatDeleted = "chat_deleted"
)

type ChatCommands interface {
	SendMessage(ctx context.Context, groupID, userID uuid.UUID, body string) (*ChatPosted, error)
	DeleteMessage(ctx context.Context, groupID, messageID, userID uuid.UUID) error
}

// ChatPosted is pushed to every live session of the group when a message is stored.
type ChatPosted struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"group_id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatDeleted struct {
	ID      uuid.UUID `json:"id"`
	GroupID uuid.UUID `json:"group_id"`
}

type chatUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
}

func NewChatUseCase(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock) ChatCommands {
	return &chatUseCaseImpl{uow: uow, notifier: notifier, clock: clk}
}

func (uc *chatUseCaseImpl) SendMessage(ctx context.Context, groupID, userID uuid.UUID, body string) (*ChatPosted, error) {
	msg, err := chat.NewMessage(uuid.New(), groupID, userID, body, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	repos := uc.uow.Reads()
	author, err := repos.Members().Find(ctx, repos.DB(), groupID, userID)
	if err != nil {
		return nil, err
	}
	if err := repos.Chat().Create(ctx, repos.DB(), msg); err != nil {
		return nil, err
	}

	posted := &ChatPosted{
		ID:        msg.ID(),
		GroupID:   groupID,
		UserID:    userID,
		Username:  author.Username(),
		Body:      msg.Body(),
		CreatedAt: msg.CreatedAt(),
	}
	uc.notifier.NotifyGroup(groupID, EventChatMessage, posted)
	return posted, nil
}

// DeleteMessage removes one of the caller's own messages.
func (uc *chatUseCaseImpl) DeleteMessage(ctx context.Context, groupID, messageID, userID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		msg, err := tx.Chat().FindByID(ctx, tx.DB(), messageID)
		if err != nil {
			return err
		}
		if msg.GroupID() != groupID {
			return errs.ErrMessageNotFound
		}
		if msg.UserID() != userID {
			return errs.ErrNotMessageAuthor
		}
		return tx.Chat().Delete(ctx, tx.DB(), messageID)
	})
	if err != nil {
		return err
	}

	uc.notifier.NotifyGroup(groupID, EventChatDeleted, ChatDeleted{ID: messageID, GroupID: groupID})
	return nil
}
