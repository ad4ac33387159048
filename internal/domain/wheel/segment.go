package wheel

import (
	"regexp"
	"strings"

	"nuzlocke-tracker/internal/pkg/errs"
)

var (
	ErrEmptyCatalog     = errs.New("wheel catalog has no segments")
	ErrInvalidSegment   = errs.New("invalid wheel segment")
	ErrDuplicateSegment = errs.New("duplicate wheel segment name")
)

var colorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Segment struct {
	Name        string
	Description string
	Color       string
	// BalanceDelta is credited to the spinner's group balance when the segment wins.
	BalanceDelta int64
}

// Catalog is ordered: the order drives the wheel geometry, never the odds.
type Catalog struct {
	segments []Segment
}

func NewCatalog(segments []Segment) (Catalog, error) {
	if len(segments) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(segments))
	out := make([]Segment, len(segments))
	for i, s := range segments {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" || !colorRegex.MatchString(s.Color) {
			return Catalog{}, errs.Wrapf(ErrInvalidSegment, "segment %d", i)
		}
		key := strings.ToLower(s.Name)
		if _, dup := seen[key]; dup {
			return Catalog{}, errs.Wrapf(ErrDuplicateSegment, "segment %q", s.Name)
		}
		seen[key] = struct{}{}
		out[i] = s
	}
	return Catalog{segments: out}, nil
}

func (c Catalog) Len() int { return len(c.segments) }

func (c Catalog) At(i int) Segment { return c.segments[i] }

func (c Catalog) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// SegmentAngle is the arc, in degrees, that each segment covers.
func (c Catalog) SegmentAngle() float64 {
	return 360 / float64(len(c.segments))
}

func DefaultCatalog() Catalog {
	c, err := NewCatalog([]Segment{
		{Name: "Nothing", Color: "#22c55e", Description: "Nothing special happens."},
		{Name: "No items", Color: "#3b82f6", Description: "You can't use items in your next battle."},
		{Name: "No potions", Color: "#ef4444", Description: "No potions until the next gym."},
		{Name: "Ditto", Color: "#a855f7", Description: "Copy another player's effect."},
		{Name: "+5000₽", Color: "#eab308", Description: "You earn 5000 Pokédollars.", BalanceDelta: 5000},
		{Name: "Nerfed", Color: "#f97316", Description: "Your strongest Pokémon sits out the next battle."},
		{Name: "Card breaker", Color: "#ec4899", Description: "Pick a card to cancel."},
		{Name: "Ranged attack", Color: "#06b6d4", Description: "Your Pokémon learns a new move."},
		{Name: "Power-up", Color: "#8b5cf6", Description: "Your Pokémon gets a temporary boost."},
		{Name: "Trade", Color: "#dc2626", Description: "Trade a Pokémon with another player."},
		{Name: "Extra potion", Color: "#10b981", Description: "You get 2 extra potions."},
		{Name: "No Poké Balls", Color: "#2563eb", Description: "No catching until the next gym."},
	})
	if err != nil {
		panic("wheel: invalid default catalog: " + err.Error())
	}
	return c
}
