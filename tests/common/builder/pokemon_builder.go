//go:build unit || e2e

package builder

import (
	"time"

	"nuzlocke-tracker/internal/domain/pokemon"
	reqdto "nuzlocke-tracker/internal/handler/dto/request"
	"nuzlocke-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type PokemonBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	GroupID   uuid.UUID
	PokemonID int
	Name      string
	SpriteURL string
	Types     []string
	Box       int
	CreatedAt time.Time
}

func NewPokemonBuilder() *PokemonBuilder {
	return &PokemonBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		GroupID:   uuid.New(),
		PokemonID: 25,
		Name:      "pikachu",
		SpriteURL: "https://img.example/25.png",
		Types:     []string{"electric"},
		Box:       1,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *PokemonBuilder) With(mutate func(*PokemonBuilder)) *PokemonBuilder {
	mutate(b)
	return b
}

func (b *PokemonBuilder) BuildSpecies() pokemon.Species {
	s, err := pokemon.NewSpecies(b.PokemonID, b.Name, b.SpriteURL, b.Types)
	if err != nil {
		panic(err)
	}
	return s
}

func (b *PokemonBuilder) BuildLiving() *pokemon.Living {
	l, err := pokemon.NewLiving(b.ID, b.UserID, b.GroupID, b.BuildSpecies(), b.Box, b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return l
}

func (b *PokemonBuilder) BuildFallen() *pokemon.Fallen {
	f, err := pokemon.NewFallen(b.ID, b.UserID, b.GroupID, b.BuildSpecies(), b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return f
}

func (b *PokemonBuilder) BuildSpeciesView() *queries.SpeciesView {
	v := queries.ToLivingView(b.BuildLiving()).Species
	return &v
}

func (b *PokemonBuilder) BuildLivingView() *queries.LivingView {
	return queries.ToLivingView(b.BuildLiving())
}

func (b *PokemonBuilder) BuildFallenView() *queries.FallenView {
	return queries.ToFallenView(b.BuildFallen())
}

func (b *PokemonBuilder) BuildAddLivingRequestDTO() reqdto.AddLivingRequest {
	return reqdto.AddLivingRequest{Name: b.Name, BoxNumber: b.Box}
}

func (b *PokemonBuilder) BuildAddFallenRequestDTO() reqdto.AddFallenRequest {
	return reqdto.AddFallenRequest{Name: b.Name}
}
