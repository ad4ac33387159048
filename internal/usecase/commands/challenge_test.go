//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"nuzlocke-tracker/internal/domain/challenge"
	"nuzlocke-tracker/internal/domain/group"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var nuzlockeRule = challenge.Content{
	Title:       "No items in battle",
	Description: "Potions only between fights",
	Reward:      "200 coins",
	Difficulty:  "hard",
}

func storedChallenge(t *testing.T, groupID, author uuid.UUID) *challenge.Challenge {
	t.Helper()
	c, err := challenge.NewChallenge(uuid.New(), groupID, author, nuzlockeRule, t0)
	require.NoError(t, err)
	return c
}

func storedGroup(t *testing.T, groupID, owner uuid.UUID) *group.Group {
	t.Helper()
	g, err := group.NewGroup(groupID, "Kanto", owner, t0)
	require.NoError(t, err)
	return g
}

func TestChallengeCommands_Create(t *testing.T) {
	ctx := context.Background()
	groupID, userID := uuid.New(), uuid.New()

	t.Run("any member can post", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewChallengeUseCase(f.uow, f.clock)
		f.expectMember(groupID, userID)
		f.challenges.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		c, err := uc.CreateChallenge(ctx, groupID, userID, nuzlockeRule)
		require.NoError(t, err)
		assert.Equal(t, groupID, c.GroupID())
		assert.Equal(t, userID, c.CreatedBy())
		assert.Equal(t, challenge.Hard, c.Difficulty())
		assert.Equal(t, t0, c.CreatedAt())
	})

	t.Run("invalid content is rejected before any lookup", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewChallengeUseCase(f.uow, f.clock)

		_, err := uc.CreateChallenge(ctx, groupID, userID, challenge.Content{Title: "x"})
		assert.ErrorIs(t, err, challenge.ErrInvalidDescription)
	})

	t.Run("not a member", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewChallengeUseCase(f.uow, f.clock)
		f.members.EXPECT().Find(gomock.Any(), gomock.Any(), groupID, userID).Return(nil, errs.ErrNotGroupMember)

		_, err := uc.CreateChallenge(ctx, groupID, userID, nuzlockeRule)
		assert.True(t, errs.Is(err, errs.ErrNotGroupMember))
	})
}

func TestChallengeCommands_Update(t *testing.T) {
	ctx := context.Background()
	groupID, author, owner, other := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	edit := challenge.Content{Title: "Monotype", Description: "Water only", Difficulty: "extreme"}

	t.Run("author edits without a group lookup", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewChallengeUseCase(f.uow, f.clock)
		c := storedChallenge(t, groupID, author)
		f.clock.Add(time.Hour)
		f.challenges.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), c.ID()).Return(c, nil)
		f.challenges.EXPECT().Save(gomock.Any(), gomock.Any(), c).Return(nil)

		got, err := uc.UpdateChallenge(ctx, groupID, c.ID(), author, edit)
		require.NoError(t, err)
		assert.Equal(t, "Monotype", got.Title())
		assert.Equal(t, challenge.Extreme, got.Difficulty())
		assert.Empty(t, got.Reward())
		assert.Equal(t, t0.Add(time.Hour), got.UpdatedAt())
	})

	t.Run("group creator may edit any challenge", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewChallengeUseCase(f.uow, f.clock)
		c := storedChallenge(t, groupID, author)
		f.challenges.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), c.ID()).Return(c, nil)
		f.groups.EXPECT().FindByID(gomock.Any(), gomock.Any(), groupID).Return(storedGroup(t, groupID, owner), nil)
		f.challenges.EXPECT().Save(gomock.Any(), gomock.Any(), c).Return(nil)

		_, err := uc.UpdateChallenge(ctx, groupID, c.ID(), owner, edit)
		assert.NoError(t, err)
	})

	t.Run("other members are refused", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewChallengeUseCase(f.uow, f.clock)
		c := storedChallenge(t, groupID, author)
		f.challenges.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), c.ID()).Return(c, nil)
		f.groups.EXPECT().FindByID(gomock.Any(), gomock.Any(), groupID).Return(storedGroup(t, groupID, owner), nil)

		_, err := uc.UpdateChallenge(ctx, groupID, c.ID(), other, edit)
		assert.True(t, errs.Is(err, errs.ErrNotChallengeEditor))
		assert.Equal(t, "No items in battle", c.Title())
	})

	t.Run("challenge of another group reads as missing", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewChallengeUseCase(f.uow, f.clock)
		c := storedChallenge(t, uuid.New(), author)
		f.challenges.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), c.ID()).Return(c, nil)

		_, err := uc.UpdateChallenge(ctx, groupID, c.ID(), author, edit)
		assert.True(t, errs.Is(err, errs.ErrChallengeNotFound))
	})

	t.Run("invalid edit is not saved", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewChallengeUseCase(f.uow, f.clock)
		c := storedChallenge(t, groupID, author)
		f.challenges.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), c.ID()).Return(c, nil)

		_, err := uc.UpdateChallenge(ctx, groupID, c.ID(), author, challenge.Content{Title: "x", Description: "y", Difficulty: "insane"})
		assert.ErrorIs(t, err, challenge.ErrInvalidDifficulty)
	})
}

func TestChallengeCommands_Delete(t *testing.T) {
	ctx := context.Background()
	groupID, author, owner := uuid.New(), uuid.New(), uuid.New()

	t.Run("author deletes", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewChallengeUseCase(f.uow, f.clock)
		c := storedChallenge(t, groupID, author)
		f.challenges.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), c.ID()).Return(c, nil)
		f.challenges.EXPECT().Delete(gomock.Any(), gomock.Any(), c.ID()).Return(nil)

		assert.NoError(t, uc.DeleteChallenge(ctx, groupID, c.ID(), author))
	})

	t.Run("missing challenge", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewChallengeUseCase(f.uow, f.clock)
		id := uuid.New()
		f.challenges.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, errs.ErrChallengeNotFound)

		err := uc.DeleteChallenge(ctx, groupID, id, owner)
		assert.True(t, errs.Is(err, errs.ErrChallengeNotFound))
	})

	t.Run("non-editor cannot delete", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewChallengeUseCase(f.uow, f.clock)
		c := storedChallenge(t, groupID, author)
		f.challenges.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), c.ID()).Return(c, nil)
		f.groups.EXPECT().FindByID(gomock.Any(), gomock.Any(), groupID).Return(storedGroup(t, groupID, owner), nil)

		err := uc.DeleteChallenge(ctx, groupID, c.ID(), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrNotChallengeEditor))
	})
}
