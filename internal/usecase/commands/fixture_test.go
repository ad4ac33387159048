//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"nuzlocke-tracker/internal/domain/member"
	"nuzlocke-tracker/internal/domain/pokemon"
	"nuzlocke-tracker/internal/pkg/clock"
	"nuzlocke-tracker/internal/usecase/shared"
	sharedmock "nuzlocke-tracker/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

var rules = member.Rules{InitialLives: 20, InitialBalance: 1000}

type fixture struct {
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	groups  *sharedmock.MockGroupRepository
	members *sharedmock.MockMemberRepository
	living  *sharedmock.MockLivingRepository
	fallen  *sharedmock.MockFallenRepository
	spins   *sharedmock.MockSpinRepository
	catalog *sharedmock.MockSpeciesCatalog
	clock   *clock.MockClock

	challenges *sharedmock.MockChallengeRepository
	chat       *sharedmock.MockChatRepository
}

// newFixture wires one mock Tx that serves both Within and Reads.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:     sharedmock.NewMockUnitOfWork(ctrl),
		tx:      sharedmock.NewMockTx(ctrl),
		groups:  sharedmock.NewMockGroupRepository(ctrl),
		members: sharedmock.NewMockMemberRepository(ctrl),
		living:  sharedmock.NewMockLivingRepository(ctrl),
		fallen:  sharedmock.NewMockFallenRepository(ctrl),
		spins:   sharedmock.NewMockSpinRepository(ctrl),
		catalog: sharedmock.NewMockSpeciesCatalog(ctrl),
		clock:   clock.NewMockClock(t0),

		challenges: sharedmock.NewMockChallengeRepository(ctrl),
		chat:       sharedmock.NewMockChatRepository(ctrl),
	}
	f.tx.EXPECT().Groups().Return(f.groups).AnyTimes()
	f.tx.EXPECT().Members().Return(f.members).AnyTimes()
	f.tx.EXPECT().Living().Return(f.living).AnyTimes()
	f.tx.EXPECT().Fallen().Return(f.fallen).AnyTimes()
	f.tx.EXPECT().Spins().Return(f.spins).AnyTimes()
	f.tx.EXPECT().Challenges().Return(f.challenges).AnyTimes()
	f.tx.EXPECT().Chat().Return(f.chat).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()

	f.uow.EXPECT().Reads().Return(f.tx).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	return f
}

func (f *fixture) expectMember(groupID, userID uuid.UUID) {
	f.members.EXPECT().Find(gomock.Any(), gomock.Any(), groupID, userID).
		Return(newMember(nil, groupID, userID, rules.InitialLives), nil)
}

func newMember(t *testing.T, groupID, userID uuid.UUID, lives int) *member.Member {
	m, err := member.Restore(groupID, userID, "ash", lives, rules.InitialBalance, t0, rules)
	if t != nil {
		require.NoError(t, err)
	}
	return m
}

func pikachu(t *testing.T) pokemon.Species {
	t.Helper()
	s, err := pokemon.NewSpecies(25, "pikachu", "https://img/25.png", []string{"electric"})
	require.NoError(t, err)
	return s
}
