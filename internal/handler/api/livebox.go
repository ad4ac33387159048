package api

import (
	"net/http"
	"strconv"

	reqdto "nuzlocke-tracker/internal/handler/dto/request"
	resdto "nuzlocke-tracker/internal/handler/dto/response"
	"nuzlocke-tracker/internal/handler/httperr"
	"nuzlocke-tracker/internal/usecase/commands"
	"nuzlocke-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LiveboxHandler struct {
	cmds commands.LiveboxCommands
	q    queries.PokemonQueries
}

func NewLiveboxHandler(cmds commands.LiveboxCommands, q queries.PokemonQueries) *LiveboxHandler {
	return &LiveboxHandler{cmds: cmds, q: q}
}

// @Summary List living Pokémon
// @Tags livebox
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param user_id query string false "Only this player's Pokémon"
// @Param box query int false "Box number (1-3)"
// @Success 200 {array} resdto.LivingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /groups/{groupId}/livebox [get]
func (h *LiveboxHandler) List(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	var query reqdto.LivingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	owner, ok := parseUserFilter(c, query.UserID)
	if !ok {
		return
	}

	views, err := h.q.ListLiving(c.Request.Context(), groupID, queries.LivingFilters{
		UserID: owner,
		Box:    query.Box,
	}, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLivingViews(views))
}

// @Summary Add a living Pokémon
// @Tags livebox
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param request body reqdto.AddLivingRequest true "Species and box"
// @Success 201 {object} resdto.LivingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /groups/{groupId}/livebox [post]
func (h *LiveboxHandler) Add(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	var req reqdto.AddLivingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	living, err := h.cmds.AddLiving(c.Request.Context(), commands.AddLivingRequest{
		GroupID: groupID,
		Species: req.Name,
		Box:     req.BoxNumber,
	}, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLivingView(queries.ToLivingView(living)))
}

// @Summary Remove a living Pokémon
// @Tags livebox
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /groups/{groupId}/livebox/{id} [delete]
func (h *LiveboxHandler) Remove(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.cmds.RemoveLiving(c.Request.Context(), groupID, id, userID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear one of your boxes
// @Tags livebox
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param box path int true "Box number (1-3)"
// @Success 200 {object} resdto.ClearResponse
// @Failure 400 {object} map[string]string
// @Router /groups/{groupId}/livebox/boxes/{box} [delete]
func (h *LiveboxHandler) ClearBox(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	box, err := strconv.Atoi(c.Param("box"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid box number", nil)
		return
	}

	removed, err := h.cmds.ClearBox(c.Request.Context(), groupID, box, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ClearResponse{Removed: removed})
}
