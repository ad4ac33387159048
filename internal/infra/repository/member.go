package repository

import (
	"context"

	"nuzlocke-tracker/internal/domain/member"
	"nuzlocke-tracker/internal/infra"
	"nuzlocke-tracker/internal/infra/db"
	"nuzlocke-tracker/internal/pkg/config"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/pkg/pgconv"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MemberRepository struct {
	rules member.Rules
}

func NewMemberRepository(cfg config.Config) *MemberRepository {
	return &MemberRepository{
		rules: member.Rules{
			InitialLives:   cfg.Group.InitialLives,
			InitialBalance: cfg.Group.InitialBalance,
		},
	}
}

func (r *MemberRepository) Create(ctx context.Context, tx db.DBTX, m *member.Member) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO group_members (group_id, user_id, username, lives, balance, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.GroupID(), m.UserID(), m.Username(), m.Lives(), m.Balance(), m.JoinedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return errs.Mark(infra.WrapRepoErr("member already exists", err), errs.ErrAlreadyMember)
		}
		return infra.WrapRepoErr("failed to create member", err)
	}
	return nil
}

func (r *MemberRepository) Find(ctx context.Context, tx db.DBTX, groupID, userID uuid.UUID) (*member.Member, error) {
	return r.find(ctx, tx, groupID, userID, "")
}

func (r *MemberRepository) FindForUpdate(ctx context.Context, tx db.DBTX, groupID, userID uuid.UUID) (*member.Member, error) {
	return r.find(ctx, tx, groupID, userID, " FOR UPDATE")
}

func (r *MemberRepository) find(ctx context.Context, tx db.DBTX, groupID, userID uuid.UUID, lock string) (*member.Member, error) {
	var (
		username string
		lives    int
		balance  int64
		joinedAt pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, `
		SELECT username, lives, balance, joined_at
		FROM group_members
		WHERE group_id = $1 AND user_id = $2`+lock,
		groupID, userID,
	).Scan(&username, &lives, &balance, &joinedAt)
	if err != nil {
		return nil, wrapLookupErr("failed to find member", err, errs.ErrNotGroupMember)
	}
	return member.Restore(groupID, userID, username, min(lives, r.rules.InitialLives), balance, joinedAt.Time, r.rules)
}

func (r *MemberRepository) Save(ctx context.Context, tx db.DBTX, m *member.Member) error {
	tag, err := tx.Exec(ctx,
		`UPDATE group_members SET lives = $3, balance = $4 WHERE group_id = $1 AND user_id = $2`,
		m.GroupID(), m.UserID(), m.Lives(), m.Balance(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save member", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("member not found", errs.ErrNotGroupMember)
	}
	return nil
}

func (r *MemberRepository) ListStandings(ctx context.Context, tx db.DBTX, groupID uuid.UUID) ([]shared.MemberStanding, error) {
	rows, err := tx.Query(ctx, `
		SELECT m.user_id, m.username, m.lives, m.balance, m.joined_at, COUNT(d.id)
		FROM group_members m
		LEFT JOIN deadbox_pokemons d ON d.group_id = m.group_id AND d.user_id = m.user_id
		WHERE m.group_id = $1
		GROUP BY m.group_id, m.user_id
		ORDER BY m.joined_at, m.username`,
		groupID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list members", err)
	}
	defer rows.Close()

	var out []shared.MemberStanding
	for rows.Next() {
		var (
			s        shared.MemberStanding
			joinedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&s.UserID, &s.Username, &s.Lives, &s.Balance, &joinedAt, &s.Deaths); err != nil {
			return nil, infra.WrapRepoErr("failed to scan member", err)
		}
		s.JoinedAt = joinedAt.Time
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list members", err)
	}
	return out, nil
}
