package models

import "time"

// User is provisioned on first login from the identity provider's session
// data. Repeated logins reuse the stored record as-is; name/picture changes
// upstream are not synced back.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Picture   string    `bson:"picture,omitempty" json:"picture,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
