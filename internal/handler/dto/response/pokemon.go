package response

import (
	"nuzlocke-tracker/internal/usecase/commands"
	"nuzlocke-tracker/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SpeciesResponse struct {
	PokemonID   int      `json:"pokemon_id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	SpriteURL   string   `json:"sprite_url"`
	Types       []string `json:"types"`
}

func FromSpeciesView(v *queries.SpeciesView) *SpeciesResponse {
	r := &SpeciesResponse{}
	_ = copier.CopyWithOption(r, v, copier.Option{DeepCopy: true})
	return r
}

type LivingResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	BoxNumber int    `json:"box_number"`
	SpeciesResponse
	CreatedAt int64 `json:"created_at"`
}

func FromLivingView(v *queries.LivingView) *LivingResponse {
	return &LivingResponse{
		ID:              v.ID.String(),
		UserID:          v.UserID.String(),
		BoxNumber:       v.Box,
		SpeciesResponse: *FromSpeciesView(&v.Species),
		CreatedAt:       v.CreatedAt.Unix(),
	}
}

func FromLivingViews(views []*queries.LivingView) []*LivingResponse {
	res := make([]*LivingResponse, len(views))
	for i, v := range views {
		res[i] = FromLivingView(v)
	}
	return res
}

type FallenResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	SpeciesResponse
	CreatedAt int64 `json:"created_at"`
}

func FromFallenView(v *queries.FallenView) *FallenResponse {
	return &FallenResponse{
		ID:              v.ID.String(),
		UserID:          v.UserID.String(),
		SpeciesResponse: *FromSpeciesView(&v.Species),
		CreatedAt:       v.CreatedAt.Unix(),
	}
}

func FromFallenViews(views []*queries.FallenView) []*FallenResponse {
	res := make([]*FallenResponse, len(views))
	for i, v := range views {
		res[i] = FromFallenView(v)
	}
	return res
}

type AddFallenResponse struct {
	Fallen *FallenResponse `json:"fallen"`
	Lives  int             `json:"lives"`
}

type LivesResponse struct {
	Restored int `json:"restored"`
	Lives    int `json:"lives"`
}

func FromLivesResult(r *commands.LivesResult) *LivesResponse {
	return &LivesResponse{Restored: r.Restored, Lives: r.Lives}
}

type ClearResponse struct {
	Removed  int64 `json:"removed"`
	Restored int   `json:"restored,omitempty"`
	Lives    *int  `json:"lives,omitempty"`
}

func FromClearFallenResult(r *commands.ClearFallenResult) *ClearResponse {
	lives := r.Lives
	return &ClearResponse{Removed: r.Removed, Restored: r.Restored, Lives: &lives}
}

type SuggestResponse struct {
	Names []string `json:"names"`
}
