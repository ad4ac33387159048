package repository

import (
	"context"

	"nuzlocke-tracker/internal/domain/challenge"
	"nuzlocke-tracker/internal/infra"
	"nuzlocke-tracker/internal/infra/db"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const challengeColumns = `id, group_id, created_by, title, description, reward, difficulty, created_at, updated_at`

type ChallengeRepository struct{}

func NewChallengeRepository() *ChallengeRepository {
	return &ChallengeRepository{}
}

func (r *ChallengeRepository) Create(ctx context.Context, tx db.DBTX, c *challenge.Challenge) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO active_challenges (`+challengeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID(), c.GroupID(), c.CreatedBy(), c.Title(), c.Description(), c.Reward(), string(c.Difficulty()), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create challenge", err)
	}
	return nil
}

func (r *ChallengeRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*challenge.Challenge, error) {
	return r.find(ctx, tx, `SELECT `+challengeColumns+` FROM active_challenges WHERE id = $1`, id)
}

func (r *ChallengeRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*challenge.Challenge, error) {
	return r.find(ctx, tx, `SELECT `+challengeColumns+` FROM active_challenges WHERE id = $1 FOR UPDATE`, id)
}

func (r *ChallengeRepository) find(ctx context.Context, tx db.DBTX, query string, id uuid.UUID) (*challenge.Challenge, error) {
	c, err := scanChallenge(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapLookupErr("failed to find challenge", err, errs.ErrChallengeNotFound)
	}
	return c, nil
}

func (r *ChallengeRepository) Save(ctx context.Context, tx db.DBTX, c *challenge.Challenge) error {
	tag, err := tx.Exec(ctx, `
		UPDATE active_challenges
		SET title = $2, description = $3, reward = $4, difficulty = $5, updated_at = $6
		WHERE id = $1`,
		c.ID(), c.Title(), c.Description(), c.Reward(), string(c.Difficulty()), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save challenge", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("challenge not found", errs.ErrChallengeNotFound)
	}
	return nil
}

func (r *ChallengeRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM active_challenges WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete challenge", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("challenge not found", errs.ErrChallengeNotFound)
	}
	return nil
}

func (r *ChallengeRepository) ListByGroup(ctx context.Context, tx db.DBTX, groupID uuid.UUID) ([]*challenge.Challenge, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+challengeColumns+`
		FROM active_challenges
		WHERE group_id = $1
		ORDER BY created_at DESC, id`,
		groupID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list challenges", err)
	}
	defer rows.Close()

	var out []*challenge.Challenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan challenge", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list challenges", err)
	}
	return out, nil
}

func scanChallenge(row rowScanner) (*challenge.Challenge, error) {
	var (
		id, groupID, createdBy uuid.UUID
		content                challenge.Content
		createdAt, updatedAt   pgtype.Timestamptz
	)
	if err := row.Scan(&id, &groupID, &createdBy, &content.Title, &content.Description, &content.Reward,
		&content.Difficulty, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return challenge.Restore(id, groupID, createdBy, content,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt))
}
