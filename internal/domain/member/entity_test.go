//go:build unit

package member_test

import (
	"testing"
	"time"

	"nuzlocke-tracker/internal/domain/member"
	"nuzlocke-tracker/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rules = member.Rules{InitialLives: 20, InitialBalance: 1000}

func newMember(t *testing.T, lives int) *member.Member {
	t.Helper()
	m, err := member.Restore(uuid.New(), uuid.New(), "ash", lives, 1000, time.Now(), rules)
	require.NoError(t, err)
	return m
}

func TestMember(t *testing.T) {
	t.Run("new member starts with the group rules", func(t *testing.T) {
		m, err := member.NewMember(uuid.New(), uuid.New(), "  misty ", rules, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "misty", m.Username())
		assert.Equal(t, 20, m.Lives())
		assert.Equal(t, int64(1000), m.Balance())
	})

	t.Run("rejects negative lives", func(t *testing.T) {
		_, err := member.Restore(uuid.New(), uuid.New(), "brock", -1, 0, time.Now(), rules)
		assert.ErrorIs(t, err, member.ErrInvalidLives)
	})

	t.Run("caps stored lives after the starting count was lowered", func(t *testing.T) {
		lowered := member.Rules{InitialLives: 10, InitialBalance: 1000}
		m, err := member.Restore(uuid.New(), uuid.New(), "brock", 17, 0, time.Now(), lowered)
		require.NoError(t, err)
		assert.Equal(t, 10, m.Lives())
		assert.Zero(t, m.RestoreLives(1), "already at the cap")

		require.NoError(t, m.LoseLife())
		assert.Equal(t, 9, m.Lives())
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := member.NewMember(uuid.New(), uuid.New(), " ", rules, time.Now())
		assert.ErrorIs(t, err, member.ErrInvalidUsername)
	})

	t.Run("losing the last life", func(t *testing.T) {
		m := newMember(t, 1)
		require.NoError(t, m.LoseLife())
		assert.Zero(t, m.Lives())

		err := m.LoseLife()
		assert.True(t, errs.Is(err, errs.ErrNoLivesLeft))
		assert.Zero(t, m.Lives())
	})

	t.Run("restore is capped at the initial lives", func(t *testing.T) {
		tests := []struct {
			name     string
			lives    int
			restore  int
			restored int
			final    int
		}{
			{"below cap", 15, 3, 3, 18},
			{"hits cap", 18, 5, 2, 20},
			{"already full", 20, 1, 0, 20},
			{"nothing to restore", 10, 0, 0, 10},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				m := newMember(t, tt.lives)
				assert.Equal(t, tt.restored, m.RestoreLives(tt.restore))
				assert.Equal(t, tt.final, m.Lives())
			})
		}
	})

	t.Run("credit adds to balance", func(t *testing.T) {
		m := newMember(t, 20)
		m.Credit(5000)
		assert.Equal(t, int64(6000), m.Balance())
	})
}
