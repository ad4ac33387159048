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

const livingColumns = `id, user_id, group_id, pokemon_id, name, sprite_url, types, box_number, created_at`

type LivingRepository struct{}

func NewLivingRepository() *LivingRepository {
	return &LivingRepository{}
}

func (r *LivingRepository) Create(ctx context.Context, tx db.DBTX, l *pokemon.Living) error {
	s := l.Species()
	_, err := tx.Exec(ctx, `
		INSERT INTO livebox_pokemons (id, user_id, group_id, pokemon_id, name, sprite_url, types, box_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		l.ID(), l.UserID(), l.GroupID(), s.ID(), s.DisplayName(), s.SpriteURL(), s.Types(), l.Box().Number(), l.CreatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return errs.Mark(infra.WrapRepoErr("living record already exists", err), errs.ErrDuplicateLiving)
		}
		return infra.WrapRepoErr("failed to create living record", err)
	}
	return nil
}

func (r *LivingRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pokemon.Living, error) {
	row := tx.QueryRow(ctx, `SELECT `+livingColumns+` FROM livebox_pokemons WHERE id = $1`, id)
	l, err := scanLiving(row)
	if err != nil {
		return nil, wrapLookupErr("failed to find living record", err, errs.ErrRecordNotFound)
	}
	return l, nil
}

func (r *LivingRepository) List(ctx context.Context, tx db.DBTX, filter shared.LivingFilter) ([]*pokemon.Living, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+livingColumns+`
		FROM livebox_pokemons
		WHERE group_id = $1
		  AND ($2::uuid IS NULL OR user_id = $2)
		  AND ($3::int IS NULL OR box_number = $3)
		ORDER BY created_at DESC, id`,
		filter.GroupID, pgconv.UUIDPtrToPgtype(filter.UserID), pgconv.Int4PtrToPgtype(filter.Box),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list living records", err)
	}
	defer rows.Close()

	var out []*pokemon.Living
	for rows.Next() {
		l, err := scanLiving(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan living record", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list living records", err)
	}
	return out, nil
}

func (r *LivingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM livebox_pokemons WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete living record", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("living record not found", errs.ErrRecordNotFound)
	}
	return nil
}

func (r *LivingRepository) DeleteByBox(ctx context.Context, tx db.DBTX, groupID, userID uuid.UUID, box int) (int64, error) {
	tag, err := tx.Exec(ctx,
		`DELETE FROM livebox_pokemons WHERE group_id = $1 AND user_id = $2 AND box_number = $3`,
		groupID, userID, box,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear box", err)
	}
	return tag.RowsAffected(), nil
}

// SKIP LOCKED keeps two concurrent deliveries from deleting the same row twice.
func (r *LivingRepository) DeleteEarliestMatch(ctx context.Context, tx db.DBTX, m shared.LivingMatch) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		DELETE FROM livebox_pokemons
		WHERE id = (
			SELECT id FROM livebox_pokemons
			WHERE user_id = $1
			  AND pokemon_id = $2
			  AND ($3::uuid IS NULL OR group_id = $3)
			ORDER BY created_at, id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id`,
		m.UserID, m.SpeciesID, pgconv.UUIDPtrToPgtype(m.GroupID),
	).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, infra.WrapRepoErr("failed to delete matching living record", err)
	}
	return id, true, nil
}

func scanLiving(row rowScanner) (*pokemon.Living, error) {
	var (
		id, userID, groupID uuid.UUID
		speciesID, box      int
		name, sprite        string
		types               []string
		createdAt           pgtype.Timestamptz
	)
	if err := row.Scan(&id, &userID, &groupID, &speciesID, &name, &sprite, &types, &box, &createdAt); err != nil {
		return nil, err
	}
	species, err := pokemon.NewSpecies(speciesID, name, sprite, types)
	if err != nil {
		return nil, err
	}
	return pokemon.NewLiving(id, userID, groupID, species, box, pgconv.TimeFromPgtype(createdAt))
}
