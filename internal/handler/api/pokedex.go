package api

import (
	"net/http"

	reqdto "nuzlocke-tracker/internal/handler/dto/request"
	resdto "nuzlocke-tracker/internal/handler/dto/response"
	"nuzlocke-tracker/internal/handler/httperr"
	"nuzlocke-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PokedexHandler struct {
	q queries.PokedexQueries
}

func NewPokedexHandler(q queries.PokedexQueries) *PokedexHandler {
	return &PokedexHandler{q: q}
}

// @Summary Look up a species
// @Tags pokedex
// @Produce json
// @Param name path string true "Species name or number"
// @Success 200 {object} resdto.SpeciesResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /pokedex/{name} [get]
func (h *PokedexHandler) Lookup(c *gin.Context) {
	view, err := h.q.Lookup(c.Request.Context(), c.Param("name"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpeciesView(view))
}

// @Summary Suggest species names
// @Tags pokedex
// @Produce json
// @Param q query string true "Partial name"
// @Success 200 {object} resdto.SuggestResponse
// @Router /pokedex/suggest [get]
func (h *PokedexHandler) Suggest(c *gin.Context) {
	var query reqdto.SuggestQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	names, err := h.q.Suggest(c.Request.Context(), query.Q)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SuggestResponse{Names: names})
}
