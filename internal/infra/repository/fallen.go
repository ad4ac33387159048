package repository

import (
	"context"

	"nuzlocke-tracker/internal/domain/pokemon"
	"nuzlocke-tracker/internal/infra"
	"nuzlocke-tracker/internal/infra/db"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/pkg/pgconv"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const fallenColumns = `id, user_id, group_id, pokemon_id, name, sprite_url, types, created_at`

type FallenRepository struct{}

func NewFallenRepository() *FallenRepository {
	return &FallenRepository{}
}

// Create fires the deadbox_inserted trigger, which feeds the reactor.
func (r *FallenRepository) Create(ctx context.Context, tx db.DBTX, f *pokemon.Fallen) error {
	s := f.Species()
	_, err := tx.Exec(ctx, `
		INSERT INTO deadbox_pokemons (id, user_id, group_id, pokemon_id, name, sprite_url, types, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		f.ID(), f.UserID(), f.GroupID(), s.ID(), s.DisplayName(), s.SpriteURL(), s.Types(), f.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create fallen record", err)
	}
	return nil
}

func (r *FallenRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pokemon.Fallen, error) {
	row := tx.QueryRow(ctx, `SELECT `+fallenColumns+` FROM deadbox_pokemons WHERE id = $1`, id)
	f, err := scanFallen(row)
	if err != nil {
		return nil, wrapLookupErr("failed to find fallen record", err, errs.ErrRecordNotFound)
	}
	return f, nil
}

func (r *FallenRepository) List(ctx context.Context, tx db.DBTX, filter shared.FallenFilter) ([]*pokemon.Fallen, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+fallenColumns+`
		FROM deadbox_pokemons
		WHERE group_id = $1
		  AND ($2::uuid IS NULL OR user_id = $2)
		ORDER BY created_at DESC, id`,
		filter.GroupID, pgconv.UUIDPtrToPgtype(filter.UserID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fallen records", err)
	}
	defer rows.Close()

	var out []*pokemon.Fallen
	for rows.Next() {
		f, err := scanFallen(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan fallen record", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list fallen records", err)
	}
	return out, nil
}

func (r *FallenRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM deadbox_pokemons WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete fallen record", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("fallen record not found", errs.ErrRecordNotFound)
	}
	return nil
}

func (r *FallenRepository) DeleteByOwner(ctx context.Context, tx db.DBTX, groupID, userID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM deadbox_pokemons WHERE group_id = $1 AND user_id = $2`, groupID, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear fallen records", err)
	}
	return tag.RowsAffected(), nil
}

func scanFallen(row rowScanner) (*pokemon.Fallen, error) {
	var (
		id, userID, groupID uuid.UUID
		speciesID           int
		name, sprite        string
		types               []string
		createdAt           pgtype.Timestamptz
	)
	if err := row.Scan(&id, &userID, &groupID, &speciesID, &name, &sprite, &types, &createdAt); err != nil {
		return nil, err
	}
	species, err := pokemon.NewSpecies(speciesID, name, sprite, types)
	if err != nil {
		return nil, err
	}
	return pokemon.NewFallen(id, userID, groupID, species, pgconv.TimeFromPgtype(createdAt))
}
