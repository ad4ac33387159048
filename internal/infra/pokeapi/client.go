package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"

	"nuzlocke-tracker/internal/domain/pokemon"
	"nuzlocke-tracker/internal/pkg/config"
	"nuzlocke-tracker/internal/pkg/errs"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"
)

type pokemonResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

type nameListResponse struct {
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

// names implements fuzzy.Source over the species name list.
type names []string

func (n names) String(i int) string { return n[i] }
func (n names) Len() int            { return len(n) }

type Client struct {
	http      *http.Client
	baseURL   string
	nameLimit int
	cache     *lru.Cache
	logger    *slog.Logger

	namesMu sync.Mutex
	names   names
}

func NewClient(cfg config.Config, logger *slog.Logger) (*Client, error) {
	cache, err := lru.New(max(cfg.PokeAPI.CacheSize, 1))
	if err != nil {
		return nil, errs.Wrap(err, "create species cache")
	}
	return &Client{
		http:      &http.Client{Timeout: cfg.PokeAPI.Timeout},
		baseURL:   strings.TrimRight(cfg.PokeAPI.BaseURL, "/"),
		nameLimit: cfg.PokeAPI.NameLimit,
		cache:     cache,
		logger:    logger.With("component", "pokeapi"),
	}, nil
}

// Lookup resolves a species by name or national dex number.
func (c *Client) Lookup(ctx context.Context, name string) (pokemon.Species, error) {
	key := normalizeName(name)
	if key == "" {
		return pokemon.Species{}, errs.ErrSpeciesNotFound
	}
	if v, ok := c.cache.Get(key); ok {
		return v.(pokemon.Species), nil
	}

	var resp pokemonResponse
	if err := c.getJSON(ctx, "/pokemon/"+url.PathEscape(key), &resp); err != nil {
		return pokemon.Species{}, err
	}

	types := make([]string, 0, len(resp.Types))
	for _, t := range resp.Types {
		types = append(types, t.Type.Name)
	}
	sprite := resp.Sprites.Other.OfficialArtwork.FrontDefault
	if sprite == "" {
		sprite = resp.Sprites.FrontDefault
	}

	species, err := pokemon.NewSpecies(resp.ID, resp.Name, sprite, types)
	if err != nil {
		return pokemon.Species{}, errs.Mark(err, errs.ErrCatalogUnavailable)
	}
	c.cache.Add(key, species)
	c.cache.Add(resp.Name, species)
	return species, nil
}

// Suggest ranks species names against query; names containing the query verbatim come first.
func (c *Client) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	q := normalizeName(query)
	if q == "" || limit <= 0 {
		return []string{}, nil
	}

	all, err := c.loadNames(ctx)
	if err != nil {
		return nil, err
	}

	matches := fuzzy.FindFrom(q, all)
	sort.SliceStable(matches, func(i, j int) bool {
		return strings.Contains(matches[i].Str, q) && !strings.Contains(matches[j].Str, q)
	})

	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.Str)
	}
	return out, nil
}

func (c *Client) loadNames(ctx context.Context) (names, error) {
	c.namesMu.Lock()
	defer c.namesMu.Unlock()
	if c.names != nil {
		return c.names, nil
	}

	var resp nameListResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/pokemon?limit=%d", c.nameLimit), &resp); err != nil {
		return nil, err
	}
	list := make(names, 0, len(resp.Results))
	for _, r := range resp.Results {
		list = append(list, r.Name)
	}
	c.names = list
	c.logger.Info("species names loaded", "count", len(list))
	return list, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "call pokeapi"), errs.ErrCatalogUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.ErrSpeciesNotFound
	case resp.StatusCode != http.StatusOK:
		return errs.Mark(errs.New(fmt.Sprintf("pokeapi returned %d", resp.StatusCode)), errs.ErrCatalogUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(errs.Wrap(err, "decode pokeapi response"), errs.ErrCatalogUnavailable)
	}
	return nil
}

// PokeAPI keys species by lowercase hyphenated names.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}
