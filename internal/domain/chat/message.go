package chat

import (
	"strings"
	"time"

	"nuzlocke-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxBodyLength = 1000

	// HistoryLimit is how many recent messages a group's chat loads.
	HistoryLimit = 100
)

var ErrInvalidBody = errs.New("message must be 1-1000 characters")

// Message is one text line in a group's chat.
type Message struct {
	id        uuid.UUID
	groupID   uuid.UUID
	userID    uuid.UUID
	body      string
	createdAt time.Time
}

func NewMessage(id, groupID, userID uuid.UUID, body string, now time.Time) (*Message, error) {
	body = strings.TrimSpace(body)
	if body == "" || len([]rune(body)) > MaxBodyLength {
		return nil, ErrInvalidBody
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Message{id: id, groupID: groupID, userID: userID, body: body, createdAt: now}, nil
}

func (m *Message) ID() uuid.UUID        { return m.id }
func (m *Message) GroupID() uuid.UUID   { return m.groupID }
func (m *Message) UserID() uuid.UUID    { return m.userID }
func (m *Message) Body() string         { return m.body }
func (m *Message) CreatedAt() time.Time { return m.createdAt }
