package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecalculateTotal(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{MenuItemID: "chicken", Quantity: 2, Price: 800.0},
			{MenuItemID: "mutton", Quantity: 1, Price: 1500.0},
		},
	}
	cart.RecalculateTotal()
	assert.Equal(t, 3100.0, cart.TotalAmount)

	cart.Items = nil
	cart.RecalculateTotal()
	assert.Equal(t, 0.0, cart.TotalAmount)
}

func TestTotalQuantity(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{MenuItemID: "chicken", Quantity: 2, Price: 800.0},
			{MenuItemID: "prawns_small", Quantity: 1, Price: 1200.0},
		},
	}
	assert.Equal(t, 3, cart.TotalQuantity())
}

func TestSessionValid(t *testing.T) {
	now := time.Now().UTC()
	s := Session{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, s.Valid(now))

	// Expiry is a strict future check; a session expiring exactly now is
	// already invalid.
	s.ExpiresAt = now
	assert.False(t, s.Valid(now))

	s.ExpiresAt = now.Add(-time.Minute)
	assert.False(t, s.Valid(now))
}
