//go:build unit || e2e

package pokeapitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
)

type Species struct {
	ID    int
	Name  string
	Types []string
}

var Kanto = []Species{
	{ID: 1, Name: "bulbasaur", Types: []string{"grass", "poison"}},
	{ID: 4, Name: "charmander", Types: []string{"fire"}},
	{ID: 5, Name: "charmeleon", Types: []string{"fire"}},
	{ID: 6, Name: "charizard", Types: []string{"fire", "flying"}},
	{ID: 7, Name: "squirtle", Types: []string{"water"}},
	{ID: 25, Name: "pikachu", Types: []string{"electric"}},
	{ID: 133, Name: "eevee", Types: []string{"normal"}},
}

// Server answers the PokeAPI endpoints the catalog client uses.
type Server struct {
	*httptest.Server
	byName map[string]Species
	hits   atomic.Int64
}

func NewServer(species []Species) *Server {
	s := &Server{byName: make(map[string]Species, len(species))}
	for _, sp := range species {
		s.byName[sp.Name] = sp
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /pokemon/{name}", s.pokemon)
	mux.HandleFunc("GET /pokemon", func(w http.ResponseWriter, _ *http.Request) {
		s.hits.Add(1)
		var b strings.Builder
		b.WriteString(`{"results":[`)
		for i, sp := range species {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, `{"name":%q}`, sp.Name)
		}
		b.WriteString(`]}`)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(b.String()))
	})
	s.Server = httptest.NewServer(mux)
	return s
}

// Hits counts requests that reached the server.
func (s *Server) Hits() int64 { return s.hits.Load() }

func (s *Server) pokemon(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)
	sp, ok := s.byName[r.PathValue("name")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	var types strings.Builder
	for i, t := range sp.Types {
		if i > 0 {
			types.WriteByte(',')
		}
		fmt.Fprintf(&types, `{"slot":%d,"type":{"name":%q}}`, i+1, t)
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"id":%d,"name":%q,"sprites":{"front_default":"https://sprites.example/%d.png","other":{"official-artwork":{"front_default":"https://artwork.example/%d.png"}}},"types":[%s]}`,
		sp.ID, sp.Name, sp.ID, sp.ID, types.String())
}
