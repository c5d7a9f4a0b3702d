package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/picklesmvr/mvr-v1/store"
)

// RequireSession resolves the raw Authorization header value (no Bearer
// scheme) to a stored session and loads its user into the context. Expired
// sessions are treated as absent; they are never deleted here.
func RequireSession(stores store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		session, err := stores.Sessions.FindByToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate session"})
			}
			c.Abort()
			return
		}

		if !session.Valid(time.Now().UTC()) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			c.Abort()
			return
		}

		user, err := stores.Users.FindByID(c.Request.Context(), session.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			}
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)

		c.Next()
	}
}
