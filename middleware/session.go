package middleware

import (
	"github.com/gin-gonic/gin"

	"tumy/handlers"
	"tumy/services/session"
)

// SessionHeader carries the caller's session identifier. A missing or unknown
// id transparently starts a fresh session; the resolved id is echoed back so
// clients can persist it.
const SessionHeader = "X-Session-ID"

// SessionMiddleware resolves the request's session and attaches it to the
// gin context for handlers to pick up.
func SessionMiddleware(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := mgr.Resolve(c.GetHeader(SessionHeader))
		c.Set(handlers.SessionKey, sess)
		c.Header(SessionHeader, sess.ID)
		c.Next()
	}
}
