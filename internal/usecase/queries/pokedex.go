package queries

import (
	"context"
	"strings"

	"nuzlocke-tracker/internal/usecase/shared"
)

// SuggestionLimit matches the six entries the search box shows.
const SuggestionLimit = 6

type PokedexQueries interface {
	Lookup(ctx context.Context, name string) (*SpeciesView, error)
	Suggest(ctx context.Context, query string) ([]string, error)
}

type pokedexQueriesImpl struct {
	catalog shared.SpeciesCatalog
}

func NewPokedexQueries(catalog shared.SpeciesCatalog) PokedexQueries {
	return &pokedexQueriesImpl{catalog: catalog}
}

func (q *pokedexQueriesImpl) Lookup(ctx context.Context, name string) (*SpeciesView, error) {
	s, err := q.catalog.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	v := toSpeciesView(s)
	return &v, nil
}

func (q *pokedexQueriesImpl) Suggest(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return []string{}, nil
	}
	return q.catalog.Suggest(ctx, query, SuggestionLimit)
}
