package shared

import (
	"context"

	"nuzlocke-tracker/internal/domain/challenge"
	"nuzlocke-tracker/internal/domain/chat"
	"nuzlocke-tracker/internal/domain/group"
	"nuzlocke-tracker/internal/domain/member"
	"nuzlocke-tracker/internal/domain/pokemon"
	"nuzlocke-tracker/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Repositories bound to the pool for single statements outside a transaction
	Reads() Tx
}

type Tx interface {
	Groups() GroupRepository
	Members() MemberRepository
	Living() LivingRepository
	Fallen() FallenRepository
	Spins() SpinRepository
	Challenges() ChallengeRepository
	Chat() ChatRepository
	DB() db.DBTX
}

type GroupRepository interface {
	Create(ctx context.Context, tx db.DBTX, g *group.Group) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*group.Group, error)
}

type MemberRepository interface {
	Create(ctx context.Context, tx db.DBTX, mem *member.Member) error
	Find(ctx context.Context, tx db.DBTX, groupID, userID uuid.UUID) (*member.Member, error)
	// FindForUpdate locks the member row until the transaction ends.
	FindForUpdate(ctx context.Context, tx db.DBTX, groupID, userID uuid.UUID) (*member.Member, error)
	Save(ctx context.Context, tx db.DBTX, mem *member.Member) error
	ListStandings(ctx context.Context, tx db.DBTX, groupID uuid.UUID) ([]MemberStanding, error)
}

type LivingRepository interface {
	// Create fails with errs.ErrDuplicateLiving when the owner already keeps the species in that box.
	Create(ctx context.Context, tx db.DBTX, l *pokemon.Living) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pokemon.Living, error)
	List(ctx context.Context, tx db.DBTX, filter LivingFilter) ([]*pokemon.Living, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	DeleteByBox(ctx context.Context, tx db.DBTX, groupID, userID uuid.UUID, box int) (int64, error)
	// DeleteEarliestMatch removes the oldest living record matching m, if any.
	DeleteEarliestMatch(ctx context.Context, tx db.DBTX, match LivingMatch) (uuid.UUID, bool, error)
}

type FallenRepository interface {
	Create(ctx context.Context, tx db.DBTX, f *pokemon.Fallen) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pokemon.Fallen, error)
	List(ctx context.Context, tx db.DBTX, filter FallenFilter) ([]*pokemon.Fallen, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, tx db.DBTX, groupID, userID uuid.UUID) (int64, error)
}

type SpinRepository interface {
	Create(ctx context.Context, tx db.DBTX, s SpinRecord) error
	ListByUser(ctx context.Context, tx db.DBTX, groupID, userID uuid.UUID, limit int) ([]SpinRecord, error)
}

type ChallengeRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *challenge.Challenge) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*challenge.Challenge, error)
	// FindForUpdate locks the challenge row until the transaction ends.
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*challenge.Challenge, error)
	Save(ctx context.Context, tx db.DBTX, c *challenge.Challenge) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// ListByGroup returns the group's challenges, newest first.
	ListByGroup(ctx context.Context, tx db.DBTX, groupID uuid.UUID) ([]*challenge.Challenge, error)
}

type ChatRepository interface {
	Create(ctx context.Context, tx db.DBTX, m *chat.Message) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*chat.Message, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// ListRecent returns the latest limit messages of the group, oldest first.
	ListRecent(ctx context.Context, tx db.DBTX, groupID uuid.UUID, limit int) ([]ChatEntry, error)
}
