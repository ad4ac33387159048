package queries

import (
	"time"

	"nuzlocke-tracker/internal/domain/challenge"
	"nuzlocke-tracker/internal/domain/pokemon"

	"github.com/google/uuid"
)

type SpeciesView struct {
	PokemonID   int      `json:"pokemon_id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	SpriteURL   string   `json:"sprite_url"`
	Types       []string `json:"types"`
}

type LivingView struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	GroupID   uuid.UUID   `json:"group_id"`
	Box       int         `json:"box_number"`
	Species   SpeciesView `json:"species"`
	CreatedAt time.Time   `json:"created_at"`
}

type FallenView struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	GroupID   uuid.UUID   `json:"group_id"`
	Species   SpeciesView `json:"species"`
	CreatedAt time.Time   `json:"created_at"`
}

type MemberView struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Lives    int       `json:"lives"`
	Balance  int64     `json:"balance"`
	Deaths   int       `json:"deaths"`
	JoinedAt time.Time `json:"joined_at"`
}

type SpinView struct {
	ID           uuid.UUID `json:"id"`
	SegmentIndex int       `json:"segment_index"`
	SegmentName  string    `json:"segment_name"`
	BalanceDelta int64     `json:"balance_delta"`
	SpunAt       time.Time `json:"spun_at"`
	SettledAt    time.Time `json:"settled_at"`
}

type ChallengeView struct {
	ID          uuid.UUID `json:"id"`
	CreatedBy   uuid.UUID `json:"created_by"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Reward      string    `json:"reward"`
	Difficulty  string    `json:"difficulty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ChatMessageView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func toSpeciesView(s pokemon.Species) SpeciesView {
	return SpeciesView{
		PokemonID:   s.ID(),
		Name:        s.Name(),
		DisplayName: s.DisplayName(),
		SpriteURL:   s.SpriteURL(),
		Types:       s.Types(),
	}
}

func ToLivingView(l *pokemon.Living) *LivingView {
	return &LivingView{
		ID:        l.ID(),
		UserID:    l.UserID(),
		GroupID:   l.GroupID(),
		Box:       l.Box().Number(),
		Species:   toSpeciesView(l.Species()),
		CreatedAt: l.CreatedAt(),
	}
}

func ToFallenView(f *pokemon.Fallen) *FallenView {
	return &FallenView{
		ID:        f.ID(),
		UserID:    f.UserID(),
		GroupID:   f.GroupID(),
		Species:   toSpeciesView(f.Species()),
		CreatedAt: f.CreatedAt(),
	}
}

func ToChallengeView(c *challenge.Challenge) *ChallengeView {
	return &ChallengeView{
		ID:          c.ID(),
		CreatedBy:   c.CreatedBy(),
		Title:       c.Title(),
		Description: c.Description(),
		Reward:      c.Reward(),
		Difficulty:  string(c.Difficulty()),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}
