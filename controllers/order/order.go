package orderControllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/picklesmvr/mvr-v1/cache"
	"github.com/picklesmvr/mvr-v1/models"
	"github.com/picklesmvr/mvr-v1/pricing"
	"github.com/picklesmvr/mvr-v1/store"
)

// Page cap for the per-user order listing.
const maxOrdersPage = 100

type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	Pincode         string `json:"pincode" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	State           string `json:"state" binding:"required"`
}

// POST /api/orders
//
// Snapshots the cart into an immutable pending order, pricing the courier
// leg from the destination state and the summed item quantity (1 item =
// 1 KG), then removes the cart document.
func Checkout(stores store.Stores, cartCache cache.CartCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		user := userVal.(*models.User)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := stores.Carts.FindByUser(c.Request.Context(), user.ID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if err != nil || len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		totalWeight := cart.TotalQuantity()
		courierCharges := pricing.CourierRatePerKG(req.State) * float64(totalWeight)

		order := &models.Order{
			ID:              uuid.NewString(),
			UserID:          user.ID,
			Items:           cart.Items,
			Subtotal:        cart.TotalAmount,
			CourierCharges:  courierCharges,
			TotalAmount:     cart.TotalAmount + courierCharges,
			DeliveryAddress: req.DeliveryAddress,
			Pincode:         req.Pincode,
			Phone:           req.Phone,
			State:           req.State,
			Status:          models.OrderStatusPending,
			CreatedAt:       time.Now().UTC(),
		}

		if err := stores.Orders.Create(c.Request.Context(), order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// No compensating delete of the order if this fails; the caller
		// ends up with both the order and a non-empty cart.
		if err := stores.Carts.Delete(c.Request.Context(), user.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		invalidateCache(cartCache, user.ID)

		c.JSON(http.StatusOK, order)
	}
}

// GET /api/orders
func ListOrders(stores store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		user := userVal.(*models.User)

		orders, err := stores.Orders.FindByUser(c.Request.Context(), user.ID, maxOrdersPage)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/courier-charges/:state
//
// Public rate quote; no session required.
func CourierCharges() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := c.Param("state")
		c.JSON(http.StatusOK, gin.H{
			"state":          state,
			"charges_per_kg": pricing.CourierRatePerKG(state),
		})
	}
}

func invalidateCache(cartCache cache.CartCache, userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := cartCache.Delete(ctx, userID); err != nil {
		log.Printf("cart cache invalidate error: %v", err)
	}
}
