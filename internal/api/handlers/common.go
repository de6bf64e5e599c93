package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/personachat/backend/internal/api/middleware"
	"github.com/personachat/backend/internal/utils"
)

// writeError serializes an error as {"error": "<message>"}. The chat
// endpoint's wire contract predates the app and is preserved bit-exact, so
// this intentionally differs from a code/message envelope.
func writeError(c *gin.Context, err error) {
	c.JSON(utils.HTTPStatus(err), gin.H{"error": utils.Message(err)})
}

// requireSessionID fetches the session id set by the session middleware.
// It is absent only on wiring mistakes, which surface as a 500.
func requireSessionID(c *gin.Context) (string, bool) {
	if sid := middleware.SessionID(c); sid != "" {
		return sid, true
	}
	writeError(c, utils.E(utils.CodeInternal, "Session", "session not established", nil))
	return "", false
}
