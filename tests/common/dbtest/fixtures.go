//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestGroup inserts a group with its creator as the first member.
func CreateTestGroup(t *testing.T, db DBLike, name string, ownerID uuid.UUID, username string, lives int) uuid.UUID {
	t.Helper()

	groupID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO groups (id, name, created_by) VALUES ($1, $2, $3)", groupID, name, ownerID)
	require.NoError(t, err)
	AddTestMember(t, db, groupID, ownerID, username, lives)
	return groupID
}

func AddTestMember(t *testing.T, db DBLike, groupID, userID uuid.UUID, username string, lives int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO group_members (group_id, user_id, username, lives, balance) VALUES ($1, $2, $3, $4, 0)",
		groupID, userID, username, lives)
	require.NoError(t, err)
}

func InsertTestLiving(t *testing.T, db DBLike, groupID, userID uuid.UUID, pokemonID int, name string, box int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO livebox_pokemons (id, group_id, user_id, pokemon_id, name, box_number)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, groupID, userID, pokemonID, name, box)
	require.NoError(t, err)
	return id
}

func CountLiving(t *testing.T, db DBLike, groupID, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM livebox_pokemons WHERE group_id = $1 AND user_id = $2", groupID, userID).Scan(&n)
	require.NoError(t, err)
	return n
}

func MemberLives(t *testing.T, db DBLike, groupID, userID uuid.UUID) (lives int, balance int64) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT lives, balance FROM group_members WHERE group_id = $1 AND user_id = $2", groupID, userID).Scan(&lives, &balance)
	require.NoError(t, err)
	return lives, balance
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
