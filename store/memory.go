package store

import (
	"context"
	"sort"
	"sync"

	"github.com/picklesmvr/mvr-v1/models"
)

// MemoryStores implements every store interface with in-memory maps. It
// backs the handler tests and doubles as a datastore-free dev mode.
type MemoryStores struct {
	mu       sync.RWMutex
	users    map[string]models.User    // user id -> user
	sessions map[string]models.Session // token -> session
	carts    map[string]models.Cart    // user id -> cart
	orders   []models.Order
}

func NewMemoryStores() *MemoryStores {
	return &MemoryStores{
		users:    make(map[string]models.User),
		sessions: make(map[string]models.Session),
		carts:    make(map[string]models.Cart),
	}
}

// Stores bundles the memory implementation the same way NewMongoStores
// bundles the collection-backed one.
func (m *MemoryStores) Stores() Stores {
	return Stores{
		Users:    memoryUserStore{m},
		Sessions: memorySessionStore{m},
		Carts:    memoryCartStore{m},
		Orders:   memoryOrderStore{m},
	}
}

// -------- users --------

type memoryUserStore struct{ m *MemoryStores }

func (s memoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for _, user := range s.m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s memoryUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	if user, ok := s.m.users[id]; ok {
		u := user
		return &u, nil
	}
	return nil, ErrNotFound
}

func (s memoryUserStore) Create(_ context.Context, user *models.User) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.users[user.ID] = *user
	return nil
}

// -------- sessions --------

type memorySessionStore struct{ m *MemoryStores }

func (s memorySessionStore) Create(_ context.Context, session *models.Session) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.sessions[session.Token] = *session
	return nil
}

func (s memorySessionStore) FindByToken(_ context.Context, token string) (*models.Session, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	if session, ok := s.m.sessions[token]; ok {
		sess := session
		return &sess, nil
	}
	return nil, ErrNotFound
}

// -------- carts --------

type memoryCartStore struct{ m *MemoryStores }

func (s memoryCartStore) FindByUser(_ context.Context, userID string) (*models.Cart, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	if cart, ok := s.m.carts[userID]; ok {
		c := cart
		return &c, nil
	}
	return nil, ErrNotFound
}

func (s memoryCartStore) Replace(_ context.Context, cart *models.Cart) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.carts[cart.UserID] = *cart
	return nil
}

func (s memoryCartStore) Delete(_ context.Context, userID string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.carts[userID]; !ok {
		return ErrNotFound
	}
	delete(s.m.carts, userID)
	return nil
}

// -------- orders --------

type memoryOrderStore struct{ m *MemoryStores }

func (s memoryOrderStore) Create(_ context.Context, order *models.Order) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.orders = append(s.m.orders, *order)
	return nil
}

func (s memoryOrderStore) FindByUser(_ context.Context, userID string, limit int64) ([]models.Order, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	orders := []models.Order{}
	for _, order := range s.m.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if int64(len(orders)) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}
