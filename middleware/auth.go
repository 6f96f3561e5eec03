package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

// SessionCookie is the cookie the frontend carries between requests.
const SessionCookie = "session"

// sessionUserKey is where RequireSession stores the authenticated user in
// the gin context.
const sessionUserKey = "sessionUser"

// RequireSession rejects requests without a valid session token. The token
// is read from the session cookie, or from a Bearer Authorization header for
// non-browser clients.
func RequireSession(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}

		user, err := auth.ParseSession(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}

		c.Set(sessionUserKey, user)
		c.Next()
	}
}

// SessionUser returns the authenticated user set by RequireSession.
func SessionUser(c *gin.Context) (services.SessionUser, bool) {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return services.SessionUser{}, false
	}
	user, ok := v.(services.SessionUser)
	return user, ok
}
