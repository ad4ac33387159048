package repository

import (
	"context"

	"nuzlocke-tracker/internal/domain/group"
	"nuzlocke-tracker/internal/infra"
	"nuzlocke-tracker/internal/infra/db"
	"nuzlocke-tracker/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GroupRepository struct{}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{}
}

func (r *GroupRepository) Create(ctx context.Context, tx db.DBTX, g *group.Group) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO groups (id, name, created_by, created_at) VALUES ($1, $2, $3, $4)`,
		g.ID(), g.Name(), g.CreatedBy(), g.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create group", err)
	}
	return nil
}

func (r *GroupRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*group.Group, error) {
	var (
		name      string
		createdBy uuid.UUID
		createdAt pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, `SELECT name, created_by, created_at FROM groups WHERE id = $1`, id).
		Scan(&name, &createdBy, &createdAt)
	if err != nil {
		return nil, wrapLookupErr("failed to find group", err, errs.ErrGroupNotFound)
	}
	return group.NewGroup(id, name, createdBy, createdAt.Time)
}
