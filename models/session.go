package models

import "time"

// Session maps an opaque token to a user for a bounded window. A user may
// hold several live sessions at once; logging in never revokes older ones.
type Session struct {
	Token     string    `bson:"session_token" json:"session_token"`
	UserID    string    `bson:"user_id" json:"user_id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Valid reports whether the session is usable at the given instant.
// Expired sessions are treated as absent, never deleted.
func (s Session) Valid(now time.Time) bool {
	return s.ExpiresAt.After(now)
}
