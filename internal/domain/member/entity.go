package member

import (
	"strings"
	"time"

	"nuzlocke-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidLives    = errs.New("lives out of range")
	ErrInvalidUsername = errs.New("username cannot be empty")
)

// Rules are the per-run limits every member of a group shares.
type Rules struct {
	InitialLives   int
	InitialBalance int64
}

type Member struct {
	groupID  uuid.UUID
	userID   uuid.UUID
	username string
	lives    int
	balance  int64
	joinedAt time.Time
	maxLives int
}

func NewMember(groupID, userID uuid.UUID, username string, rules Rules, now time.Time) (*Member, error) {
	return Restore(groupID, userID, username, rules.InitialLives, rules.InitialBalance, now, rules)
}

// Restore rebuilds a member from stored state. Lives above the current
// starting count are capped, so lowering the rule keeps old members loadable.
func Restore(groupID, userID uuid.UUID, username string, lives int, balance int64, joinedAt time.Time, rules Rules) (*Member, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if lives < 0 {
		return nil, ErrInvalidLives
	}
	lives = min(lives, rules.InitialLives)
	return &Member{
		groupID:  groupID,
		userID:   userID,
		username: username,
		lives:    lives,
		balance:  balance,
		joinedAt: joinedAt,
		maxLives: rules.InitialLives,
	}, nil
}

func (m *Member) GroupID() uuid.UUID  { return m.groupID }
func (m *Member) UserID() uuid.UUID   { return m.userID }
func (m *Member) Username() string    { return m.username }
func (m *Member) Lives() int          { return m.lives }
func (m *Member) Balance() int64      { return m.balance }
func (m *Member) JoinedAt() time.Time { return m.joinedAt }

// LoseLife is the price of recording a fallen Pokémon.
func (m *Member) LoseLife() error {
	if m.lives <= 0 {
		return errs.ErrNoLivesLeft
	}
	m.lives--
	return nil
}

// RestoreLives gives back up to n lives without passing the initial count and
// returns how many were restored.
func (m *Member) RestoreLives(n int) int {
	restored := min(n, m.maxLives-m.lives)
	if restored <= 0 {
		return 0
	}
	m.lives += restored
	return restored
}

func (m *Member) Credit(delta int64) {
	m.balance += delta
}
