// Package cache holds a read-through cache for cart documents. The
// datastore stays the source of truth; every cart mutation invalidates the
// cached copy.
package cache

import (
	"context"
	"errors"

	"github.com/picklesmvr/mvr-v1/models"
)

type CartCache interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Set(ctx context.Context, userID string, cart *models.Cart) error
	Delete(ctx context.Context, userID string) error
}

var ErrCacheMiss = errors.New("cache miss")

// Disabled is the no-op cache used when REDIS_ADDR is not configured.
// Every read misses and writes are discarded.
type Disabled struct{}

func (Disabled) Get(context.Context, string) (*models.Cart, error) {
	return nil, ErrCacheMiss
}

func (Disabled) Set(context.Context, string, *models.Cart) error { return nil }

func (Disabled) Delete(context.Context, string) error { return nil }
