// Package store persists users, sessions, carts and orders in a document
// datastore. Interfaces are defined here on the consumer side; the MongoDB
// implementation lives in mongo.go.
package store

import (
	"context"
	"errors"

	"github.com/picklesmvr/mvr-v1/models"
)

// ErrNotFound is returned when a looked-up document does not exist.
var ErrNotFound = errors.New("not found")

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	FindByToken(ctx context.Context, token string) (*models.Session, error)
}

type CartStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Cart, error)
	// Replace upserts the whole cart document keyed by user id. Concurrent
	// replaces for the same user are last-write-wins; there is no
	// optimistic-concurrency guard on cart mutation.
	Replace(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, userID string) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	// FindByUser returns the user's orders newest first, capped at limit.
	FindByUser(ctx context.Context, userID string, limit int64) ([]models.Order, error)
}

// Stores bundles the collection handles passed down to the HTTP layer.
type Stores struct {
	Users    UserStore
	Sessions SessionStore
	Carts    CartStore
	Orders   OrderStore
}
