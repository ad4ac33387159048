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

type ChatHandler struct {
	cmds commands.ChatCommands
	q    queries.CommunityQueries
}

func NewChatHandler(cmds commands.ChatCommands, q queries.CommunityQueries) *ChatHandler {
	return &ChatHandler{cmds: cmds, q: q}
}

// @Summary Recent chat messages
// @Description The latest 100 messages, oldest first.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Success 200 {array} resdto.ChatMessageResponse
// @Failure 403 {object} map[string]string
// @Router /groups/{groupId}/chat [get]
func (h *ChatHandler) History(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}

	views, err := h.q.ChatHistory(c.Request.Context(), groupID, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromChatMessageViews(views))
}

// @Summary Send a chat message
// @Description Stores the message and pushes it to every live session of the group.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param request body reqdto.ChatMessageRequest true "Message"
// @Success 201 {object} resdto.ChatMessageResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /groups/{groupId}/chat [post]
func (h *ChatHandler) Send(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	var req reqdto.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	posted, err := h.cmds.SendMessage(c.Request.Context(), groupID, userID, req.Body)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromChatPosted(posted))
}

// @Summary Delete one of your chat messages
// @Tags chat
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /groups/{groupId}/chat/{id} [delete]
func (h *ChatHandler) Delete(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.cmds.DeleteMessage(c.Request.Context(), groupID, id, userID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
