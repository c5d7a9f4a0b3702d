package cartControllers

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
	"github.com/picklesmvr/mvr-v1/store"
)

type AddToCartInput struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

// POST /api/cart/add
func AddToCart(stores store.Stores, cartCache cache.CartCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		user := userVal.(*models.User)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		menuItem, ok := models.MenuItemByID(input.MenuItemID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}

		now := time.Now().UTC()

		cart, err := stores.Carts.FindByUser(c.Request.Context(), user.ID)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
				return
			}
			// Lazily created on first add.
			cart = &models.Cart{
				ID:        uuid.NewString(),
				UserID:    user.ID,
				Items:     []models.CartItem{},
				CreatedAt: now,
			}
		}

		// Same item again increments quantity; the price stays as captured
		// when the item was first added.
		found := false
		for i := range cart.Items {
			if cart.Items[i].MenuItemID == input.MenuItemID {
				cart.Items[i].Quantity += input.Quantity
				found = true
				break
			}
		}
		if !found {
			cart.Items = append(cart.Items, models.CartItem{
				MenuItemID: input.MenuItemID,
				Quantity:   input.Quantity,
				Price:      menuItem.Price,
			})
		}

		cart.RecalculateTotal()
		cart.UpdatedAt = now

		if err := stores.Carts.Replace(c.Request.Context(), cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		invalidateCache(cartCache, user.ID)

		c.JSON(http.StatusOK, cart)
	}
}

// GET /api/cart
func GetCart(stores store.Stores, cartCache cache.CartCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		user := userVal.(*models.User)

		if cart, err := cartCache.Get(c.Request.Context(), user.ID); err == nil {
			c.JSON(http.StatusOK, cart)
			return
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cart cache get error: %v", err)
		}

		cart, err := stores.Carts.FindByUser(c.Request.Context(), user.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// No cart yet. The two-field shape is what the shipped
				// frontend consumes.
				c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "total_amount": 0.0})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if err := cartCache.Set(c.Request.Context(), user.ID, cart); err != nil {
			log.Printf("cart cache set error: %v", err)
		}

		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart/item/:menu_item_id
func RemoveCartItem(stores store.Stores, cartCache cache.CartCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		user := userVal.(*models.User)
		menuItemID := c.Param("menu_item_id")

		cart, err := stores.Carts.FindByUser(c.Request.Context(), user.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		// Removing an id that is not in the cart is a successful no-op.
		items := cart.Items[:0]
		for _, item := range cart.Items {
			if item.MenuItemID != menuItemID {
				items = append(items, item)
			}
		}
		cart.Items = items

		cart.RecalculateTotal()
		cart.UpdatedAt = time.Now().UTC()

		if err := stores.Carts.Replace(c.Request.Context(), cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		invalidateCache(cartCache, user.ID)

		c.JSON(http.StatusOK, cart)
	}
}

func invalidateCache(cartCache cache.CartCache, userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := cartCache.Delete(ctx, userID); err != nil {
		log.Printf("cart cache invalidate error: %v", err)
	}
}
