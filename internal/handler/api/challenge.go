package api

import (
	"net/http"

	"nuzlocke-tracker/internal/domain/challenge"
	reqdto "nuzlocke-tracker/internal/handler/dto/request"
	resdto "nuzlocke-tracker/internal/handler/dto/response"
	"nuzlocke-tracker/internal/handler/httperr"
	"nuzlocke-tracker/internal/usecase/commands"
	"nuzlocke-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	cmds commands.ChallengeCommands
	q    queries.CommunityQueries
}

func NewChallengeHandler(cmds commands.ChallengeCommands, q queries.CommunityQueries) *ChallengeHandler {
	return &ChallengeHandler{cmds: cmds, q: q}
}

// @Summary List the group's challenges
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Success 200 {array} resdto.ChallengeResponse
// @Failure 403 {object} map[string]string
// @Router /groups/{groupId}/challenges [get]
func (h *ChallengeHandler) List(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}

	views, err := h.q.ListChallenges(c.Request.Context(), groupID, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromChallengeViews(views))
}

// @Summary Post a challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param request body reqdto.ChallengeRequest true "Challenge"
// @Success 201 {object} resdto.ChallengeResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /groups/{groupId}/challenges [post]
func (h *ChallengeHandler) Create(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	content, ok := bindChallenge(c)
	if !ok {
		return
	}

	created, err := h.cmds.CreateChallenge(c.Request.Context(), groupID, userID, content)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromChallengeView(queries.ToChallengeView(created)))
}

// @Summary Edit a challenge
// @Description Allowed for the challenge's author and the group's creator.
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param id path string true "Challenge ID"
// @Param request body reqdto.ChallengeRequest true "Challenge"
// @Success 200 {object} resdto.ChallengeResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /groups/{groupId}/challenges/{id} [put]
func (h *ChallengeHandler) Update(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}
	content, ok := bindChallenge(c)
	if !ok {
		return
	}

	updated, err := h.cmds.UpdateChallenge(c.Request.Context(), groupID, id, userID, content)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromChallengeView(queries.ToChallengeView(updated)))
}

// @Summary Delete a challenge
// @Tags challenges
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param id path string true "Challenge ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /groups/{groupId}/challenges/{id} [delete]
func (h *ChallengeHandler) Delete(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.cmds.DeleteChallenge(c.Request.Context(), groupID, id, userID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindChallenge(c *gin.Context) (challenge.Content, bool) {
	var req reqdto.ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return challenge.Content{}, false
	}
	return challenge.Content{
		Title:       req.Title,
		Description: req.Description,
		Reward:      req.Reward,
		Difficulty:  req.Difficulty,
	}, true
}
