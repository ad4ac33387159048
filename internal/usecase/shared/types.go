package shared

import (
	"time"

	"github.com/google/uuid"
)

type LivingFilter struct {
	GroupID uuid.UUID
	UserID  *uuid.UUID
	Box     *int
}

type FallenFilter struct {
	GroupID uuid.UUID
	UserID  *uuid.UUID
}

// LivingMatch identifies the living records a fallen record supersedes.
// A nil GroupID matches the owner's records in every group.
type LivingMatch struct {
	UserID    uuid.UUID
	SpeciesID int
	GroupID   *uuid.UUID
}

type MemberStanding struct {
	UserID   uuid.UUID
	Username string
	Lives    int
	Balance  int64
	Deaths   int
	JoinedAt time.Time
}

type SpinRecord struct {
	ID           uuid.UUID
	GroupID      uuid.UUID
	UserID       uuid.UUID
	SegmentIndex int
	SegmentName  string
	BalanceDelta int64
	SpunAt       time.Time
	SettledAt    time.Time
}

// ChatEntry is a stored chat message joined with its author's display name.
type ChatEntry struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	UserID    uuid.UUID
	Username  string
	Body      string
	CreatedAt time.Time
}
