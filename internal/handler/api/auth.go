package api

import (
	"net/http"

	"nuzlocke-tracker/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type MeResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// @Summary Get current user
// @Description Identity carried by the auth provider token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, MeResponse{UserID: userID.String(), Email: middleware.GetUserEmail(c)})
}
