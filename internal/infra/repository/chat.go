package repository

import (
	"context"
	"slices"

	"nuzlocke-tracker/internal/domain/chat"
	"nuzlocke-tracker/internal/infra"
	"nuzlocke-tracker/internal/infra/db"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/pkg/pgconv"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ChatRepository struct{}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

func (r *ChatRepository) Create(ctx context.Context, tx db.DBTX, m *chat.Message) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO group_chat_messages (id, group_id, user_id, body, created_at) VALUES ($1, $2, $3, $4, $5)`,
		m.ID(), m.GroupID(), m.UserID(), m.Body(), m.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create chat message", err)
	}
	return nil
}

func (r *ChatRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*chat.Message, error) {
	var (
		groupID, userID uuid.UUID
		body            string
		createdAt       pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx,
		`SELECT group_id, user_id, body, created_at FROM group_chat_messages WHERE id = $1`, id,
	).Scan(&groupID, &userID, &body, &createdAt)
	if err != nil {
		return nil, wrapLookupErr("failed to find chat message", err, errs.ErrMessageNotFound)
	}
	return chat.NewMessage(id, groupID, userID, body, pgconv.TimeFromPgtype(createdAt))
}

func (r *ChatRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM group_chat_messages WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete chat message", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("chat message not found", errs.ErrMessageNotFound)
	}
	return nil
}

func (r *ChatRepository) ListRecent(ctx context.Context, tx db.DBTX, groupID uuid.UUID, limit int) ([]shared.ChatEntry, error) {
	rows, err := tx.Query(ctx, `
		SELECT c.id, c.group_id, c.user_id, COALESCE(m.username, ''), c.body, c.created_at
		FROM group_chat_messages c
		LEFT JOIN group_members m ON m.group_id = c.group_id AND m.user_id = c.user_id
		WHERE c.group_id = $1
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2`,
		groupID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list chat messages", err)
	}
	defer rows.Close()

	var out []shared.ChatEntry
	for rows.Next() {
		var (
			e         shared.ChatEntry
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&e.ID, &e.GroupID, &e.UserID, &e.Username, &e.Body, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan chat message", err)
		}
		e.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list chat messages", err)
	}
	// newest rows were needed for the limit; callers read in chat order
	slices.Reverse(out)
	return out, nil
}
