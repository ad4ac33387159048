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

type GroupHandler struct {
	cmds commands.GroupCommands
	q    queries.GroupQueries
}

func NewGroupHandler(cmds commands.GroupCommands, q queries.GroupQueries) *GroupHandler {
	return &GroupHandler{cmds: cmds, q: q}
}

// @Summary Create group
// @Description Create a group and join it as its first member
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGroupRequest true "Create group request"
// @Success 201 {object} resdto.GroupResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /groups [post]
func (h *GroupHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req reqdto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	g, err := h.cmds.CreateGroup(c.Request.Context(), commands.CreateGroupRequest{Name: req.Name, Username: req.Username}, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromGroup(g))
}

// @Summary Join group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param request body reqdto.JoinGroupRequest true "Join request"
// @Success 201 {object} resdto.MemberResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /groups/{groupId}/join [post]
func (h *GroupHandler) Join(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	var req reqdto.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	m, err := h.cmds.JoinGroup(c.Request.Context(), groupID, req.Username, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMember(m))
}

// @Summary List members
// @Description Lives, balance and death count of every member
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Success 200 {array} resdto.MemberResponse
// @Failure 403 {object} map[string]string
// @Router /groups/{groupId}/members [get]
func (h *GroupHandler) Members(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}

	views, err := h.q.Standings(c.Request.Context(), groupID, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromMemberViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
