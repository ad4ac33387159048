//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"nuzlocke-tracker/internal/domain/wheel"
	"nuzlocke-tracker/internal/infra/kvstore"
	"nuzlocke-tracker/internal/pkg/config"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/commands"
	"nuzlocke-tracker/internal/usecase/shared"
	sharedmock "nuzlocke-tracker/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const jackpot = 4 // "+5000₽" in the default catalog

type wheelFixture struct {
	*fixture
	store    *kvstore.MemoryStore
	notifier *sharedmock.MockNotifier
	svc      *commands.WheelService
}

func newWheelFixture(t *testing.T, pick int) *wheelFixture {
	t.Helper()
	f := newFixture(t)
	notifier := sharedmock.NewMockNotifier(gomock.NewController(t))
	store := kvstore.NewMemoryStore()

	svc := commands.NewWheelService(f.uow, store, notifier, wheel.DefaultCatalog(), f.clock,
		config.NewTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)),
		wheel.WithPicker(func(int) int { return pick }))
	return &wheelFixture{fixture: f, store: store, notifier: notifier, svc: svc}
}

func TestWheelService_Spin(t *testing.T) {
	ctx := context.Background()
	groupID, userID := uuid.New(), uuid.New()

	t.Run("settle records the spin, credits the balance and notifies", func(t *testing.T) {
		f := newWheelFixture(t, jackpot)
		f.members.EXPECT().Find(gomock.Any(), gomock.Any(), groupID, userID).
			Return(newMember(t, groupID, userID, 20), nil).Times(2)

		res, err := f.svc.Spin(ctx, groupID, userID)
		require.NoError(t, err)
		require.True(t, res.Accepted)
		assert.Equal(t, jackpot, res.Index)
		assert.Equal(t, "+5000₽", res.Segment.Name)
		assert.Equal(t, t0.Add(4500*time.Millisecond), res.SettlesAt)

		m := newMember(t, groupID, userID, 20)
		var recorded shared.SpinRecord
		f.spins.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, rec shared.SpinRecord) error {
				recorded = rec
				return nil
			})
		f.members.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), groupID, userID).Return(m, nil)
		f.members.EXPECT().Save(gomock.Any(), gomock.Any(), m).Return(nil)
		f.notifier.EXPECT().NotifyUser(userID, commands.EventSpinSettled, gomock.Any()).
			Do(func(_ uuid.UUID, _ string, payload any) {
				ev := payload.(commands.SpinSettled)
				assert.Equal(t, "+5000₽", ev.Segment)
				assert.Equal(t, groupID, ev.GroupID)
				assert.Equal(t, int64(5000), ev.BalanceDelta)
			})

		f.clock.Add(4500 * time.Millisecond)

		assert.Equal(t, groupID, recorded.GroupID)
		assert.Equal(t, jackpot, recorded.SegmentIndex)
		assert.Equal(t, t0, recorded.SpunAt)
		assert.Equal(t, int64(6000), m.Balance())

		status, err := f.svc.Status(ctx, groupID, userID)
		require.NoError(t, err)
		assert.Equal(t, wheel.StateSettled, status.State)
		require.NotNil(t, status.LastOutcome)
		assert.Equal(t, jackpot, status.LastOutcome.Index)
		assert.Equal(t, 24*time.Hour-4500*time.Millisecond, status.Remaining)
		assert.Len(t, status.Segments, 12)
	})

	t.Run("segments without a balance change skip the member update", func(t *testing.T) {
		f := newWheelFixture(t, 0)
		f.expectMember(groupID, userID)
		_, err := f.svc.Spin(ctx, groupID, userID)
		require.NoError(t, err)

		f.spins.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().NotifyUser(userID, commands.EventSpinSettled, gomock.Any())
		f.clock.Add(5 * time.Second)
	})

	t.Run("cooldown rejects a second spin", func(t *testing.T) {
		f := newWheelFixture(t, 0)
		f.members.EXPECT().Find(gomock.Any(), gomock.Any(), groupID, userID).
			Return(newMember(t, groupID, userID, 20), nil).Times(2)
		f.spins.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().NotifyUser(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := f.svc.Spin(ctx, groupID, userID)
		require.NoError(t, err)
		f.clock.Add(time.Hour)

		res, err := f.svc.Spin(ctx, groupID, userID)
		require.NoError(t, err)
		assert.False(t, res.Accepted)
		assert.Equal(t, 23*time.Hour, res.Remaining)

		remaining, err := f.svc.Remaining(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 23*time.Hour, remaining)
	})

	t.Run("cooldown is per user, not per group", func(t *testing.T) {
		f := newWheelFixture(t, 0)
		otherGroup := uuid.New()
		f.expectMember(groupID, userID)
		f.expectMember(otherGroup, userID)

		first, err := f.svc.Spin(ctx, groupID, userID)
		require.NoError(t, err)
		require.True(t, first.Accepted)

		second, err := f.svc.Spin(ctx, otherGroup, userID)
		require.NoError(t, err)
		assert.False(t, second.Accepted)
	})

	t.Run("non-members cannot spin", func(t *testing.T) {
		f := newWheelFixture(t, 0)
		f.members.EXPECT().Find(gomock.Any(), gomock.Any(), groupID, userID).Return(nil, errs.ErrNotGroupMember)

		_, err := f.svc.Spin(ctx, groupID, userID)
		assert.True(t, errs.Is(err, errs.ErrNotGroupMember))
		assert.Zero(t, f.svc.Selectors())
	})

	t.Run("history write failure still notifies", func(t *testing.T) {
		f := newWheelFixture(t, 0)
		f.expectMember(groupID, userID)
		_, err := f.svc.Spin(ctx, groupID, userID)
		require.NoError(t, err)

		f.spins.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		f.notifier.EXPECT().NotifyUser(userID, commands.EventSpinSettled, gomock.Any())
		f.clock.Add(5 * time.Second)
	})
}

func TestWheelService_EvictIdle(t *testing.T) {
	ctx := context.Background()
	groupID, userID := uuid.New(), uuid.New()
	f := newWheelFixture(t, 0)
	f.members.EXPECT().Find(gomock.Any(), gomock.Any(), groupID, userID).
		Return(newMember(t, groupID, userID, 20), nil).AnyTimes()

	_, err := f.svc.Spin(ctx, groupID, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.svc.Selectors())

	f.spins.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().NotifyUser(gomock.Any(), gomock.Any(), gomock.Any())
	f.clock.Set(t0.Add(5 * time.Second))

	f.clock.Add(30 * time.Minute)
	assert.Zero(t, f.svc.EvictIdle())

	f.clock.Add(31 * time.Minute)
	assert.Equal(t, 1, f.svc.EvictIdle())
	assert.Zero(t, f.svc.Selectors())

	// the cooldown outlives the evicted selector
	res, err := f.svc.Spin(ctx, groupID, userID)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
}

func TestWheelService_StartStop(t *testing.T) {
	f := newWheelFixture(t, 0)
	f.svc.Start()
	f.svc.Stop()
	f.svc.Stop()
}
