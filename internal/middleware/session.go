package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avelikov/finboard/internal/auth"
	"github.com/avelikov/finboard/internal/config"
)

const userIDKey = "session_user_id"

// RequireSession returns middleware that redirects requests without a valid
// session cookie to the login page. Dashboard routes sit behind it.
func RequireSession(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(config.SessionCookieName)
		if err != nil {
			c.Redirect(http.StatusSeeOther, config.LoginRoute)
			c.Abort()
			return
		}

		userID, err := auth.UserIDFromToken(token, secret)
		if err != nil {
			c.Redirect(http.StatusSeeOther, config.LoginRoute)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// SessionUserID returns the signed-in user id stored by RequireSession.
func SessionUserID(c *gin.Context) (string, bool) {
	userID, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}
