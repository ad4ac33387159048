//go:build unit

package group_test

import (
	"strings"
	"testing"
	"time"

	"nuzlocke-tracker/internal/domain/group"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	t.Run("trims the name and assigns an id", func(t *testing.T) {
		g, err := group.NewGroup(uuid.Nil, "  Kanto run ", uuid.New(), time.Now())
		require.NoError(t, err)
		assert.Equal(t, "Kanto run", g.Name())
		assert.NotEqual(t, uuid.Nil, g.ID())
	})

	t.Run("name length", func(t *testing.T) {
		_, err := group.NewGroup(uuid.Nil, "", uuid.New(), time.Now())
		assert.ErrorIs(t, err, group.ErrInvalidName)

		_, err = group.NewGroup(uuid.Nil, strings.Repeat("é", group.MaxNameLength), uuid.New(), time.Now())
		assert.NoError(t, err)

		_, err = group.NewGroup(uuid.Nil, strings.Repeat("a", group.MaxNameLength+1), uuid.New(), time.Now())
		assert.ErrorIs(t, err, group.ErrInvalidName)
	})
}
