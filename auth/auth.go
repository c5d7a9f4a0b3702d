package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/picklesmvr/mvr-v1/models"
	"github.com/picklesmvr/mvr-v1/store"
)

type LoginRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// POST /api/auth/login
//
// Exchanges the provider session id for the user's identity, provisions a
// local user on first login, and mints a fresh 7-day session. Existing
// users are reused as stored; older sessions stay valid.
func LoginHandler(stores store.Stores, provider *ProviderClient, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		data, err := provider.ExchangeSession(c.Request.Context(), req.SessionID)
		if err != nil {
			if errors.Is(err, ErrInvalidSession) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		user, err := stores.Users.FindByEmail(c.Request.Context(), data.Email)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			// First login for this email.
			user = &models.User{
				ID:        uuid.NewString(),
				Email:     data.Email,
				Name:      data.Name,
				Picture:   data.Picture,
				CreatedAt: time.Now().UTC(),
			}
			if err := stores.Users.Create(c.Request.Context(), user); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		session := &models.Session{
			Token:     newSessionToken(),
			UserID:    user.ID,
			ExpiresAt: time.Now().UTC().Add(sessionTTL),
			CreatedAt: time.Now().UTC(),
		}
		if err := stores.Sessions.Create(c.Request.Context(), session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":          user,
			"session_token": session.Token,
		})
	}
}

// GET /api/auth/profile
func ProfileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.JSON(http.StatusOK, userVal.(*models.User))
	}
}

// newSessionToken returns an opaque, unguessable token. Validation is a
// plain equality check against the stored session document.
func newSessionToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand failing is unrecoverable; fall back to a uuid rather
		// than hand out a predictable token.
		return uuid.NewString()
	}
	return hex.EncodeToString(bytes)
}
