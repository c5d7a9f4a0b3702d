package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/picklesmvr/mvr-v1/auth"
	"github.com/picklesmvr/mvr-v1/cache"
	cartControllers "github.com/picklesmvr/mvr-v1/controllers/cart"
	menuControllers "github.com/picklesmvr/mvr-v1/controllers/menu"
	orderControllers "github.com/picklesmvr/mvr-v1/controllers/order"
	"github.com/picklesmvr/mvr-v1/middleware"
	"github.com/picklesmvr/mvr-v1/store"
)

// SetupRoutes is the single entry-point that wires every endpoint under
// the /api prefix.
func SetupRoutes(r *gin.Engine, stores store.Stores, provider *auth.ProviderClient, cartCache cache.CartCache, sessionTTL time.Duration) {
	api := r.Group("/api")

	setupAuthRoutes(api, stores, provider, sessionTTL)
	setupMenuRoutes(api)
	setupCartRoutes(api, stores, cartCache)
	setupOrderRoutes(api, stores, cartCache)
}

// setupAuthRoutes registers the "/auth/*" endpoints.
func setupAuthRoutes(api *gin.RouterGroup, stores store.Stores, provider *auth.ProviderClient, sessionTTL time.Duration) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(stores, provider, sessionTTL))
		authGroup.GET("/profile", middleware.RequireSession(stores), auth.ProfileHandler())
	}
}

// setupMenuRoutes registers the public catalog endpoint.
func setupMenuRoutes(api *gin.RouterGroup) {
	api.GET("/menu", menuControllers.GetMenu())
}

// setupCartRoutes registers the session-protected cart endpoints.
func setupCartRoutes(api *gin.RouterGroup, stores store.Stores, cartCache cache.CartCache) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.RequireSession(stores))
	{
		cartGroup.POST("/add", cartControllers.AddToCart(stores, cartCache))
		cartGroup.GET("", cartControllers.GetCart(stores, cartCache))
		cartGroup.DELETE("/item/:menu_item_id", cartControllers.RemoveCartItem(stores, cartCache))
	}
}

// setupOrderRoutes registers order placement/listing plus the public
// courier quote.
func setupOrderRoutes(api *gin.RouterGroup, stores store.Stores, cartCache cache.CartCache) {
	orderGroup := api.Group("/orders")
	orderGroup.Use(middleware.RequireSession(stores))
	{
		orderGroup.POST("", orderControllers.Checkout(stores, cartCache))
		orderGroup.GET("", orderControllers.ListOrders(stores))
	}

	api.GET("/courier-charges/:state", orderControllers.CourierCharges())
}
