package handlers

import (
	"github.com/gin-gonic/gin"

	"tumy/services/session"
)

// SessionKey is the gin context key the session middleware stores the
// resolved session under.
const SessionKey = "session"

// currentSession returns the session attached by the middleware. The
// middleware always sets one, so a miss is a programming error surfaced via
// the panic-recovery middleware.
func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(SessionKey).(*session.Session)
}
