package pokemon

import (
	"time"

	"github.com/google/uuid"
)

// Living is a Pokémon still in a player's box.
type Living struct {
	id        uuid.UUID
	userID    uuid.UUID
	groupID   uuid.UUID
	species   Species
	box       Box
	createdAt time.Time
}

func NewLiving(id, userID, groupID uuid.UUID, species Species, boxNumber int, now time.Time) (*Living, error) {
	if userID == uuid.Nil || groupID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	box, err := NewBox(boxNumber)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Living{
		id:        id,
		userID:    userID,
		groupID:   groupID,
		species:   species,
		box:       box,
		createdAt: now,
	}, nil
}

func (l *Living) ID() uuid.UUID        { return l.id }
func (l *Living) UserID() uuid.UUID    { return l.userID }
func (l *Living) GroupID() uuid.UUID   { return l.groupID }
func (l *Living) Species() Species     { return l.species }
func (l *Living) Box() Box             { return l.box }
func (l *Living) CreatedAt() time.Time { return l.createdAt }

// Fallen is a Pokémon recorded as lost. Inserting one costs its owner a life.
type Fallen struct {
	id        uuid.UUID
	userID    uuid.UUID
	groupID   uuid.UUID
	species   Species
	createdAt time.Time
}

func NewFallen(id, userID, groupID uuid.UUID, species Species, now time.Time) (*Fallen, error) {
	if userID == uuid.Nil || groupID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Fallen{
		id:        id,
		userID:    userID,
		groupID:   groupID,
		species:   species,
		createdAt: now,
	}, nil
}

func (f *Fallen) ID() uuid.UUID        { return f.id }
func (f *Fallen) UserID() uuid.UUID    { return f.userID }
func (f *Fallen) GroupID() uuid.UUID   { return f.groupID }
func (f *Fallen) Species() Species     { return f.species }
func (f *Fallen) CreatedAt() time.Time { return f.createdAt }
