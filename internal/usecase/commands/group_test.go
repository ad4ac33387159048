//go:build unit

package commands_test

import (
	"context"
	"testing"

	"nuzlocke-tracker/internal/domain/group"
	"nuzlocke-tracker/internal/domain/member"
	"nuzlocke-tracker/internal/pkg/config"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGroupCommands_CreateGroup(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates the group and enrolls the creator", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewGroupUseCase(f.uow, f.clock, config.NewTestConfig())

		var created *group.Group
		f.groups.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, g *group.Group) error {
				created = g
				return nil
			})
		f.members.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, m *member.Member) error {
				assert.Equal(t, created.ID(), m.GroupID())
				assert.Equal(t, userID, m.UserID())
				assert.Equal(t, 20, m.Lives())
				assert.Equal(t, int64(1000), m.Balance())
				return nil
			})

		g, err := uc.CreateGroup(ctx, commands.CreateGroupRequest{Name: "Kanto run", Username: "ash"}, userID)
		require.NoError(t, err)
		assert.Equal(t, "Kanto run", g.Name())
		assert.Equal(t, userID, g.CreatedBy())
	})

	t.Run("invalid name never reaches the store", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewGroupUseCase(f.uow, f.clock, config.NewTestConfig())

		_, err := uc.CreateGroup(ctx, commands.CreateGroupRequest{Name: "  ", Username: "ash"}, userID)
		assert.ErrorIs(t, err, group.ErrInvalidName)
	})
}

func TestGroupCommands_JoinGroup(t *testing.T) {
	ctx := context.Background()
	groupID, userID := uuid.New(), uuid.New()

	t.Run("joins an existing group", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewGroupUseCase(f.uow, f.clock, config.NewTestConfig())
		f.groups.EXPECT().FindByID(gomock.Any(), gomock.Any(), groupID).Return(&group.Group{}, nil)
		f.members.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		m, err := uc.JoinGroup(ctx, groupID, "misty", userID)
		require.NoError(t, err)
		assert.Equal(t, "misty", m.Username())
	})

	t.Run("unknown group", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewGroupUseCase(f.uow, f.clock, config.NewTestConfig())
		f.groups.EXPECT().FindByID(gomock.Any(), gomock.Any(), groupID).Return(nil, errs.ErrGroupNotFound)

		_, err := uc.JoinGroup(ctx, groupID, "misty", userID)
		assert.True(t, errs.Is(err, errs.ErrGroupNotFound))
	})

	t.Run("already a member", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewGroupUseCase(f.uow, f.clock, config.NewTestConfig())
		f.groups.EXPECT().FindByID(gomock.Any(), gomock.Any(), groupID).Return(&group.Group{}, nil)
		f.members.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.ErrAlreadyMember)

		_, err := uc.JoinGroup(ctx, groupID, "misty", userID)
		assert.True(t, errs.Is(err, errs.ErrAlreadyMember))
	})
}
