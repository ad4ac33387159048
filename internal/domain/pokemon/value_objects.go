package pokemon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Species struct {
	id        int
	name      string
	spriteURL string
	types     []string
}

func NewSpecies(id int, name, spriteURL string, types []string) (Species, error) {
	name = strings.TrimSpace(name)
	if id <= 0 || name == "" {
		return Species{}, ErrInvalidSpecies
	}
	t := make([]string, len(types))
	copy(t, types)
	return Species{id: id, name: name, spriteURL: spriteURL, types: t}, nil
}

func (s Species) ID() int           { return s.id }
func (s Species) Name() string      { return s.name }
func (s Species) SpriteURL() string { return s.spriteURL }
func (s Species) Types() []string {
	out := make([]string, len(s.types))
	copy(out, s.types)
	return out
}

// DisplayName capitalizes the first letter, the way names appear in the boxes.
func (s Species) DisplayName() string {
	r, size := utf8.DecodeRuneInString(s.name)
	if r == utf8.RuneError {
		return s.name
	}
	return string(unicode.ToUpper(r)) + s.name[size:]
}

type Box struct {
	number int
}

func NewBox(n int) (Box, error) {
	if n < MinBox || n > MaxBox {
		return Box{}, ErrInvalidBox
	}
	return Box{number: n}, nil
}

func (b Box) Number() int { return b.number }
