package cookie

import (
	"github.com/gin-gonic/gin"
)

// Set by the web client after the auth provider's sign-in flow.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
