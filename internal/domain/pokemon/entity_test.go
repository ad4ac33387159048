//go:build unit

package pokemon_test

import (
	"testing"
	"time"

	"nuzlocke-tracker/internal/domain/pokemon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pikachu(t *testing.T) pokemon.Species {
	t.Helper()
	s, err := pokemon.NewSpecies(25, "pikachu", "https://img/25.png", []string{"electric"})
	require.NoError(t, err)
	return s
}

func TestSpecies(t *testing.T) {
	t.Run("display name is capitalized", func(t *testing.T) {
		assert.Equal(t, "Pikachu", pikachu(t).DisplayName())
	})

	t.Run("types are copied", func(t *testing.T) {
		types := []string{"grass", "poison"}
		s, err := pokemon.NewSpecies(1, "bulbasaur", "", types)
		require.NoError(t, err)
		types[0] = "fire"
		assert.Equal(t, []string{"grass", "poison"}, s.Types())
	})

	t.Run("invalid species", func(t *testing.T) {
		_, err := pokemon.NewSpecies(0, "missingno", "", nil)
		assert.ErrorIs(t, err, pokemon.ErrInvalidSpecies)

		_, err = pokemon.NewSpecies(1, "  ", "", nil)
		assert.ErrorIs(t, err, pokemon.ErrInvalidSpecies)
	})
}

func TestLiving(t *testing.T) {
	userID, groupID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		now := time.Now()
		l, err := pokemon.NewLiving(uuid.Nil, userID, groupID, pikachu(t), 2, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.Equal(t, 2, l.Box().Number())
		assert.Equal(t, 25, l.Species().ID())
		assert.Equal(t, now, l.CreatedAt())
	})

	t.Run("box range", func(t *testing.T) {
		for _, n := range []int{pokemon.MinBox - 1, pokemon.MaxBox + 1} {
			_, err := pokemon.NewLiving(uuid.Nil, userID, groupID, pikachu(t), n, time.Now())
			assert.ErrorIs(t, err, pokemon.ErrInvalidBox)
		}
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := pokemon.NewLiving(uuid.Nil, uuid.Nil, groupID, pikachu(t), 1, time.Now())
		assert.ErrorIs(t, err, pokemon.ErrMissingOwner)
	})
}

func TestFallen(t *testing.T) {
	id := uuid.New()
	f, err := pokemon.NewFallen(id, uuid.New(), uuid.New(), pikachu(t), time.Now())
	require.NoError(t, err)
	assert.Equal(t, id, f.ID())

	_, err = pokemon.NewFallen(uuid.Nil, uuid.New(), uuid.Nil, pikachu(t), time.Now())
	assert.ErrorIs(t, err, pokemon.ErrMissingOwner)
}
