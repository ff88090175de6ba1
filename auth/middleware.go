package auth

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kusasa/backend/models"
	"github.com/kusasa/backend/session"
)

const (
	// SessionKey is the key used to store the resolved session in gin context
	SessionKey = "session"
	// ClaimsKey is the key used to store token claims in gin context
	ClaimsKey = "session_claims"
	// RefreshHeader carries a replacement token once the current one is half spent
	RefreshHeader = "X-Session-Token"
)

// SessionMiddleware resolves the bearer token to a live session
func SessionMiddleware(tokens *SessionTokens, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, "Authorization header required", "")
			return
		}

		// Check Bearer token format
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abort(c, "Invalid authorization header format", "")
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			abort(c, "Invalid or expired token", err.Error())
			return
		}

		sess, err := store.Get(claims.SessionID)
		if err != nil {
			abort(c, "Session expired", "create a new session")
			return
		}

		if tokens.NeedsRefresh(claims) {
			if token, _, err := tokens.Issue(sess.ID); err == nil {
				c.Header(RefreshHeader, token)
			} else {
				log.Printf("[Auth] Failed to refresh token: %v", err)
			}
		}

		c.Set(ClaimsKey, claims)
		c.Set(SessionKey, sess)
		c.Next()
	}
}

func abort(c *gin.Context, msg, details string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   msg,
		Code:    http.StatusUnauthorized,
		Details: details,
	})
}

// GetSession retrieves the resolved session from gin context
func GetSession(c *gin.Context) *session.Session {
	sess, exists := c.Get(SessionKey)
	if !exists {
		return nil
	}
	return sess.(*session.Session)
}

// GetClaims retrieves token claims from gin context
func GetClaims(c *gin.Context) *Claims {
	claims, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*Claims)
}
