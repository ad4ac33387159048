package group

import (
	"strings"
	"time"

	"nuzlocke-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNameLength = 60

var ErrInvalidName = errs.New("group name must be 1-60 characters")

// Group is one Nuzlocke run shared by its members.
type Group struct {
	id        uuid.UUID
	name      string
	createdBy uuid.UUID
	createdAt time.Time
}

func NewGroup(id uuid.UUID, name string, createdBy uuid.UUID, now time.Time) (*Group, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > MaxNameLength {
		return nil, ErrInvalidName
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Group{id: id, name: name, createdBy: createdBy, createdAt: now}, nil
}

func (g *Group) ID() uuid.UUID        { return g.id }
func (g *Group) Name() string         { return g.name }
func (g *Group) CreatedBy() uuid.UUID { return g.createdBy }
func (g *Group) CreatedAt() time.Time { return g.createdAt }
