package api

import (
	"net/http"

	reqdto "nuzlocke-tracker/internal/handler/dto/request"
	resdto "nuzlocke-tracker/internal/handler/dto/response"
	"nuzlocke-tracker/internal/handler/httperr"
	"nuzlocke-tracker/internal/usecase/commands"
	"nuzlocke-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DeadboxHandler struct {
	cmds commands.DeadboxCommands
	q    queries.PokemonQueries
}

func NewDeadboxHandler(cmds commands.DeadboxCommands, q queries.PokemonQueries) *DeadboxHandler {
	return &DeadboxHandler{cmds: cmds, q: q}
}

// @Summary List fallen Pokémon
// @Tags deadbox
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param user_id query string false "Only this player's Pokémon"
// @Success 200 {array} resdto.FallenResponse
// @Failure 403 {object} map[string]string
// @Router /groups/{groupId}/deadbox [get]
func (h *DeadboxHandler) List(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	var query reqdto.FallenListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	owner, ok := parseUserFilter(c, query.UserID)
	if !ok {
		return
	}

	views, err := h.q.ListFallen(c.Request.Context(), groupID, owner, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFallenViews(views))
}

// @Summary Record a fallen Pokémon
// @Description Costs one life. The matching living Pokémon is removed shortly after.
// @Tags deadbox
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param request body reqdto.AddFallenRequest true "Species"
// @Success 201 {object} resdto.AddFallenResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /groups/{groupId}/deadbox [post]
func (h *DeadboxHandler) Add(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	var req reqdto.AddFallenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.cmds.AddFallen(c.Request.Context(), commands.AddFallenRequest{GroupID: groupID, Species: req.Name}, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.AddFallenResponse{
		Fallen: resdto.FromFallenView(queries.ToFallenView(res.Fallen)),
		Lives:  res.Lives,
	})
}

// @Summary Remove a fallen Pokémon
// @Description Gives back one life, never above the starting count.
// @Tags deadbox
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param id path string true "Record ID"
// @Success 200 {object} resdto.LivesResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /groups/{groupId}/deadbox/{id} [delete]
func (h *DeadboxHandler) Remove(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	res, err := h.cmds.RemoveFallen(c.Request.Context(), groupID, id, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLivesResult(res))
}

// @Summary Clear your fallen Pokémon
// @Tags deadbox
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Success 200 {object} resdto.ClearResponse
// @Failure 403 {object} map[string]string
// @Router /groups/{groupId}/deadbox [delete]
func (h *DeadboxHandler) Clear(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}

	res, err := h.cmds.ClearFallen(c.Request.Context(), groupID, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClearFallenResult(res))
}
