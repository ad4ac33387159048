package repository

import (
	"context"

	"nuzlocke-tracker/internal/infra"
	"nuzlocke-tracker/internal/infra/db"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpinRepository struct{}

func NewSpinRepository() *SpinRepository {
	return &SpinRepository{}
}

func (r *SpinRepository) Create(ctx context.Context, tx db.DBTX, s shared.SpinRecord) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO wheel_spins (id, group_id, user_id, segment_index, segment_name, balance_delta, spun_at, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.GroupID, s.UserID, s.SegmentIndex, s.SegmentName, s.BalanceDelta, s.SpunAt, s.SettledAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record spin", err)
	}
	return nil
}

func (r *SpinRepository) ListByUser(ctx context.Context, tx db.DBTX, groupID, userID uuid.UUID, limit int) ([]shared.SpinRecord, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, segment_index, segment_name, balance_delta, spun_at, settled_at
		FROM wheel_spins
		WHERE group_id = $1 AND user_id = $2
		ORDER BY spun_at DESC
		LIMIT $3`,
		groupID, userID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spins", err)
	}
	defer rows.Close()

	var out []shared.SpinRecord
	for rows.Next() {
		var (
			s                 shared.SpinRecord
			spunAt, settledAt pgtype.Timestamptz
		)
		if err := rows.Scan(&s.ID, &s.SegmentIndex, &s.SegmentName, &s.BalanceDelta, &spunAt, &settledAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan spin", err)
		}
		s.GroupID, s.UserID = groupID, userID
		s.SpunAt, s.SettledAt = spunAt.Time, settledAt.Time
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list spins", err)
	}
	return out, nil
}
