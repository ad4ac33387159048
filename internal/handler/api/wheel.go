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

type WheelHandler struct {
	cmds commands.WheelCommands
	q    queries.GroupQueries
}

func NewWheelHandler(cmds commands.WheelCommands, q queries.GroupQueries) *WheelHandler {
	return &WheelHandler{cmds: cmds, q: q}
}

// @Summary Wheel status
// @Description Spin state, cooldown left and the wheel segments
// @Tags wheel
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Success 200 {object} resdto.WheelStatusResponse
// @Failure 403 {object} map[string]string
// @Router /groups/{groupId}/wheel [get]
func (h *WheelHandler) Status(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}

	status, err := h.cmds.Status(c.Request.Context(), groupID, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWheelStatus(status))
}

// @Summary Spin the wheel
// @Description A spin during cooldown or while the wheel turns is ignored (accepted=false).
// @Tags wheel
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Success 202 {object} resdto.SpinResponse
// @Success 200 {object} resdto.SpinResponse
// @Failure 403 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /groups/{groupId}/wheel/spin [post]
func (h *WheelHandler) Spin(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}

	res, err := h.cmds.Spin(c.Request.Context(), groupID, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	status := http.StatusOK
	if res.Accepted {
		status = http.StatusAccepted
	}
	c.JSON(status, resdto.FromSpinResult(res))
}

// @Summary Spin history
// @Tags wheel
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param limit query int false "Max entries (1-100)"
// @Success 200 {array} resdto.SpinHistoryItemResponse
// @Router /groups/{groupId}/wheel/history [get]
func (h *WheelHandler) History(c *gin.Context) {
	groupID, userID, ok := groupContext(c)
	if !ok {
		return
	}
	var query reqdto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.SpinHistory(c.Request.Context(), groupID, userID, query.Limit)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpinViews(views))
}
