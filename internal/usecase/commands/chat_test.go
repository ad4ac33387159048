//go:build unit

package commands_test

import (
	"context"
	"testing"

	"nuzlocke-tracker/internal/domain/chat"
	"nuzlocke-tracker/internal/infra/db"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/commands"
	sharedmock "nuzlocke-tracker/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChatCommands_SendMessage(t *testing.T) {
	ctx := context.Background()
	groupID, userID := uuid.New(), uuid.New()

	t.Run("stores the message and pushes it to the group", func(t *testing.T) {
		f := newFixture(t)
		notifier := sharedmock.NewMockNotifier(gomock.NewController(t))
		uc := commands.NewChatUseCase(f.uow, notifier, f.clock)
		f.expectMember(groupID, userID)

		var stored *chat.Message
		f.chat.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, m *chat.Message) error {
				stored = m
				return nil
			})
		var pushed *commands.ChatPosted
		notifier.EXPECT().NotifyGroup(groupID, commands.EventChatMessage, gomock.Any()).
			Do(func(_ uuid.UUID, _ string, payload any) {
				pushed, _ = payload.(*commands.ChatPosted)
			})

		got, err := uc.SendMessage(ctx, groupID, userID, "  smell ya later ")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "smell ya later", stored.Body())
		assert.Equal(t, stored.ID(), got.ID)
		assert.Equal(t, "ash", got.Username)
		assert.Equal(t, t0, got.CreatedAt)
		assert.Same(t, got, pushed)
	})

	t.Run("empty body", func(t *testing.T) {
		f := newFixture(t)
		notifier := sharedmock.NewMockNotifier(gomock.NewController(t))
		uc := commands.NewChatUseCase(f.uow, notifier, f.clock)

		_, err := uc.SendMessage(ctx, groupID, userID, "   ")
		assert.ErrorIs(t, err, chat.ErrInvalidBody)
	})

	t.Run("non-members cannot post and nothing is pushed", func(t *testing.T) {
		f := newFixture(t)
		notifier := sharedmock.NewMockNotifier(gomock.NewController(t))
		uc := commands.NewChatUseCase(f.uow, notifier, f.clock)
		f.members.EXPECT().Find(gomock.Any(), gomock.Any(), groupID, userID).Return(nil, errs.ErrNotGroupMember)

		_, err := uc.SendMessage(ctx, groupID, userID, "hi")
		assert.True(t, errs.Is(err, errs.ErrNotGroupMember))
	})
}

func TestChatCommands_DeleteMessage(t *testing.T) {
	ctx := context.Background()
	groupID, userID := uuid.New(), uuid.New()

	message := func(t *testing.T, groupID, author uuid.UUID) *chat.Message {
		m, err := chat.NewMessage(uuid.New(), groupID, author, "hello", t0)
		require.NoError(t, err)
		return m
	}

	t.Run("author deletes and the group is told", func(t *testing.T) {
		f := newFixture(t)
		notifier := sharedmock.NewMockNotifier(gomock.NewController(t))
		uc := commands.NewChatUseCase(f.uow, notifier, f.clock)
		m := message(t, groupID, userID)
		f.chat.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		f.chat.EXPECT().Delete(gomock.Any(), gomock.Any(), m.ID()).Return(nil)
		notifier.EXPECT().NotifyGroup(groupID, commands.EventChatDeleted, commands.ChatDeleted{ID: m.ID(), GroupID: groupID})

		assert.NoError(t, uc.DeleteMessage(ctx, groupID, m.ID(), userID))
	})

	t.Run("someone else's message", func(t *testing.T) {
		f := newFixture(t)
		notifier := sharedmock.NewMockNotifier(gomock.NewController(t))
		uc := commands.NewChatUseCase(f.uow, notifier, f.clock)
		m := message(t, groupID, uuid.New())
		f.chat.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)

		err := uc.DeleteMessage(ctx, groupID, m.ID(), userID)
		assert.True(t, errs.Is(err, errs.ErrNotMessageAuthor))
	})

	t.Run("message of another group", func(t *testing.T) {
		f := newFixture(t)
		notifier := sharedmock.NewMockNotifier(gomock.NewController(t))
		uc := commands.NewChatUseCase(f.uow, notifier, f.clock)
		m := message(t, uuid.New(), userID)
		f.chat.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)

		err := uc.DeleteMessage(ctx, groupID, m.ID(), userID)
		assert.True(t, errs.Is(err, errs.ErrMessageNotFound))
	})
}
