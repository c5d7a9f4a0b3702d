package orderControllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picklesmvr/mvr-v1/cache"
	"github.com/picklesmvr/mvr-v1/models"
	"github.com/picklesmvr/mvr-v1/store"
)

func newTestRouter(stores store.Stores, user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if user != nil {
			c.Set("user", user)
		}
		c.Next()
	})
	cartCache := cache.Disabled{}
	r.POST("/api/orders", Checkout(stores, cartCache))
	r.GET("/api/orders", ListOrders(stores))
	r.GET("/api/courier-charges/:state", CourierCharges())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedCart(t *testing.T, stores store.Stores, userID string, items []models.CartItem) {
	t.Helper()
	cart := &models.Cart{
		ID:        "cart-" + userID,
		UserID:    userID,
		Items:     items,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	cart.RecalculateTotal()
	require.NoError(t, stores.Carts.Replace(context.Background(), cart))
}

const checkoutBody = `{"delivery_address":"12 Beach Rd","pincode":"530001","phone":"9000000000","state":"Telangana"}`

func TestCheckout(t *testing.T) {
	user := &models.User{ID: "u1"}
	stores := store.NewMemoryStores().Stores()
	r := newTestRouter(stores, user)

	seedCart(t, stores, "u1", []models.CartItem{
		{MenuItemID: "chicken", Quantity: 2, Price: 800.0},
		{MenuItemID: "prawns_small", Quantity: 1, Price: 1200.0},
	})

	w := doJSON(t, r, http.MethodPost, "/api/orders", checkoutBody)
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, 2800.0, order.Subtotal)
	// 3 KG to Telangana at 100/KG.
	assert.Equal(t, 300.0, order.CourierCharges)
	assert.Equal(t, 3100.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Telangana", order.State)
	assert.Len(t, order.Items, 2)
	assert.NotEmpty(t, order.ID)

	// The cart document is removed, not emptied.
	_, err := stores.Carts.FindByUser(context.Background(), "u1")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestCheckoutEmptyCart(t *testing.T) {
	user := &models.User{ID: "u1"}
	stores := store.NewMemoryStores().Stores()
	r := newTestRouter(stores, user)

	// No cart at all.
	w := doJSON(t, r, http.MethodPost, "/api/orders", checkoutBody)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")

	// A cart document with zero items behaves the same.
	seedCart(t, stores, "u1", []models.CartItem{})
	w = doJSON(t, r, http.MethodPost, "/api/orders", checkoutBody)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
}

func TestCheckoutMissingFields(t *testing.T) {
	user := &models.User{ID: "u1"}
	stores := store.NewMemoryStores().Stores()
	r := newTestRouter(stores, user)

	seedCart(t, stores, "u1", []models.CartItem{{MenuItemID: "chicken", Quantity: 1, Price: 800.0}})

	w := doJSON(t, r, http.MethodPost, "/api/orders", `{"state":"Telangana"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutUnauthenticated(t *testing.T) {
	r := newTestRouter(store.NewMemoryStores().Stores(), nil)

	w := doJSON(t, r, http.MethodPost, "/api/orders", checkoutBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutAndhraRate(t *testing.T) {
	user := &models.User{ID: "u1"}
	stores := store.NewMemoryStores().Stores()
	r := newTestRouter(stores, user)

	seedCart(t, stores, "u1", []models.CartItem{{MenuItemID: "mutton", Quantity: 2, Price: 1500.0}})

	body := `{"delivery_address":"5 Hill St","pincode":"520001","phone":"9111111111","state":"Andhra Pradesh"}`
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 160.0, order.CourierCharges)
	assert.Equal(t, 3160.0, order.TotalAmount)
}

func TestListOrdersNewestFirst(t *testing.T) {
	user := &models.User{ID: "u1"}
	memory := store.NewMemoryStores()
	stores := memory.Stores()
	r := newTestRouter(stores, user)

	base := time.Now().UTC()
	for i, state := range []string{"Telangana", "Kerala", "Andhra Pradesh"} {
		order := &models.Order{
			ID:        state,
			UserID:    "u1",
			Items:     []models.CartItem{{MenuItemID: "chicken", Quantity: 1, Price: 800.0}},
			State:     state,
			Status:    models.OrderStatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, stores.Orders.Create(context.Background(), order))
	}
	// Another user's order must not leak in.
	require.NoError(t, stores.Orders.Create(context.Background(), &models.Order{
		ID: "other", UserID: "u2", CreatedAt: base.Add(time.Hour),
	}))

	w := doJSON(t, r, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 3)
	assert.Equal(t, "Andhra Pradesh", orders[0].ID)
	assert.Equal(t, "Kerala", orders[1].ID)
	assert.Equal(t, "Telangana", orders[2].ID)
}

func TestListOrdersUnauthenticated(t *testing.T) {
	r := newTestRouter(store.NewMemoryStores().Stores(), nil)

	w := doJSON(t, r, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCourierChargesNoAuthRequired(t *testing.T) {
	// No user in context at all.
	r := newTestRouter(store.NewMemoryStores().Stores(), nil)

	w := doJSON(t, r, http.MethodGet, "/api/courier-charges/Telangana", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		State        string  `json:"state"`
		ChargesPerKG float64 `json:"charges_per_kg"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Telangana", body.State)
	assert.Equal(t, 100.0, body.ChargesPerKG)
}
