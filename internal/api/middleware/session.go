package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// SessionCookieName holds the signed session token on the client.
	SessionCookieName = "personachat_session"

	sessionContextKey = "session_id"

	// "Permanent" session policy: the cookie outlives the browser session.
	cookieMaxAge = 365 * 24 * time.Hour
)

// Session guarantees a session id exists before any handler runs. The cookie
// value is an HS256 JWT whose subject is a random uuid; a missing or
// tampered cookie mints a fresh identity. Rotating the signing secret
// invalidates outstanding cookies, which silently starts new sessions.
func Session(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		sid := ""
		if raw, err := c.Cookie(SessionCookieName); err == nil && raw != "" {
			sid = verifySessionToken(raw, key)
		}

		if sid == "" {
			sid = uuid.NewString()
			token, err := signSessionToken(sid, key)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "failed to establish session",
				})
				return
			}
			c.SetCookie(SessionCookieName, token, int(cookieMaxAge.Seconds()), "/", "", false, true)
		}

		c.Set(sessionContextKey, sid)
		c.Next()
	}
}

// SessionID returns the session id set by the Session middleware, or ""
// when the middleware did not run.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(sessionContextKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func signSessionToken(sid string, key []byte) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  sid,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

func verifySessionToken(raw string, key []byte) string {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || tok == nil || !tok.Valid {
		return ""
	}
	return claims.Subject
}
