package challenge

import (
	"strings"
	"time"

	"nuzlocke-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 80
	MaxDescriptionLength = 500
	MaxRewardLength      = 120
)

var (
	ErrInvalidTitle       = errs.New("challenge title must be 1-80 characters")
	ErrInvalidDescription = errs.New("challenge description must be 1-500 characters")
	ErrInvalidReward      = errs.New("challenge reward must be at most 120 characters")
	ErrInvalidDifficulty  = errs.New("unknown challenge difficulty")
)

type Difficulty string

const (
	Easy    Difficulty = "easy"
	Medium  Difficulty = "medium"
	Hard    Difficulty = "hard"
	Extreme Difficulty = "extreme"
)

// ParseDifficulty accepts the four known levels; an empty value means Medium.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(raw))); d {
	case "":
		return Medium, nil
	case Easy, Medium, Hard, Extreme:
		return d, nil
	default:
		return "", ErrInvalidDifficulty
	}
}

// Content is the user-editable part of a challenge.
type Content struct {
	Title       string
	Description string
	Reward      string
	Difficulty  string
}

// Challenge is a house rule or side goal posted to a group's board.
type Challenge struct {
	id          uuid.UUID
	groupID     uuid.UUID
	createdBy   uuid.UUID
	title       string
	description string
	reward      string
	difficulty  Difficulty
	createdAt   time.Time
	updatedAt   time.Time
}

func NewChallenge(id, groupID, createdBy uuid.UUID, content Content, now time.Time) (*Challenge, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	c := &Challenge{id: id, groupID: groupID, createdBy: createdBy, createdAt: now}
	if err := c.Edit(content, now); err != nil {
		return nil, err
	}
	return c, nil
}

// Restore rebuilds a challenge from stored state without touching its timestamps.
func Restore(id, groupID, createdBy uuid.UUID, content Content, createdAt, updatedAt time.Time) (*Challenge, error) {
	c, err := NewChallenge(id, groupID, createdBy, content, createdAt)
	if err != nil {
		return nil, err
	}
	c.updatedAt = updatedAt
	return c, nil
}

// Edit replaces the content as a whole; on error the challenge is unchanged.
func (c *Challenge) Edit(content Content, now time.Time) error {
	title := strings.TrimSpace(content.Title)
	if title == "" || len([]rune(title)) > MaxTitleLength {
		return ErrInvalidTitle
	}
	description := strings.TrimSpace(content.Description)
	if description == "" || len([]rune(description)) > MaxDescriptionLength {
		return ErrInvalidDescription
	}
	reward := strings.TrimSpace(content.Reward)
	if len([]rune(reward)) > MaxRewardLength {
		return ErrInvalidReward
	}
	difficulty, err := ParseDifficulty(content.Difficulty)
	if err != nil {
		return err
	}

	c.title = title
	c.description = description
	c.reward = reward
	c.difficulty = difficulty
	c.updatedAt = now
	return nil
}

// EditableBy reports whether userID may change the challenge: its author or
// the group's creator.
func (c *Challenge) EditableBy(userID, groupOwner uuid.UUID) bool {
	return userID == c.createdBy || userID == groupOwner
}

func (c *Challenge) ID() uuid.UUID          { return c.id }
func (c *Challenge) GroupID() uuid.UUID     { return c.groupID }
func (c *Challenge) CreatedBy() uuid.UUID   { return c.createdBy }
func (c *Challenge) Title() string          { return c.title }
func (c *Challenge) Description() string    { return c.description }
func (c *Challenge) Reward() string         { return c.reward }
func (c *Challenge) Difficulty() Difficulty { return c.difficulty }
func (c *Challenge) CreatedAt() time.Time   { return c.createdAt }
func (c *Challenge) UpdatedAt() time.Time   { return c.updatedAt }
