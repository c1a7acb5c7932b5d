package store

import (
	"context"
	"strings"
	"sync"

	"github.com/bookverse/backend/models"
	"github.com/google/uuid"
)

// MemoryStore keeps everything in-process. Useful for development and tests;
// data does not survive a restart.
type MemoryStore struct {
	mu         sync.RWMutex
	users      map[string]models.User // key: user ID
	emails     map[string]string      // email -> user ID
	books      map[string]models.Book
	bookOrder  []string // insertion order of book IDs
	orders     map[string]models.Order
	orderOrder []string
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]models.User),
		emails: make(map[string]string),
		books:  make(map[string]models.Book),
		orders: make(map[string]models.Order),
	}
}

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.emails[user.Email]; exists {
		return ErrDuplicateEmail
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	m.users[user.ID] = *user
	m.emails[user.Email] = user.ID
	return nil
}

func (m *MemoryStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.emails[email]
	if !ok {
		return nil, ErrNotFound
	}
	u := m.users[id]
	return &u, nil
}

func (m *MemoryStore) UserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemoryStore) InsertBook(_ context.Context, book *models.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if _, exists := m.books[book.ID]; !exists {
		m.bookOrder = append(m.bookOrder, book.ID)
	}
	m.books[book.ID] = *book
	return nil
}

func (m *MemoryStore) ListBooks(_ context.Context, filter BookFilter) ([]models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	search := strings.ToLower(filter.Search)
	res := make([]models.Book, 0, len(m.bookOrder))
	for _, id := range m.bookOrder {
		b, ok := m.books[id]
		if !ok {
			continue
		}
		if filter.Category != "" && b.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Title), search) &&
			!strings.Contains(strings.ToLower(b.Author), search) {
			continue
		}
		res = append(res, b)
	}
	return res, nil
}

func (m *MemoryStore) BookByID(_ context.Context, id string) (*models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (m *MemoryStore) UpdateBook(_ context.Context, id string, patch *models.BookPatch) (*models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&b)
	m.books[id] = b
	return &b, nil
}

func (m *MemoryStore) SetBookCover(_ context.Context, id, coverKey, image string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[id]
	if !ok {
		return ErrNotFound
	}
	b.CoverKey = coverKey
	b.Image = image
	m.books[id] = b
	return nil
}

func (m *MemoryStore) DeleteBook(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.books[id]; !ok {
		return ErrNotFound
	}
	delete(m.books, id)
	filtered := m.bookOrder[:0]
	for _, item := range m.bookOrder {
		if item != id {
			filtered = append(filtered, item)
		}
	}
	m.bookOrder = filtered
	return nil
}

func (m *MemoryStore) CountBooks(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.books)), nil
}

func (m *MemoryStore) InsertOrder(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if _, exists := m.orders[order.ID]; !exists {
		m.orderOrder = append(m.orderOrder, order.ID)
	}
	m.orders[order.ID] = *order
	return nil
}

// OrdersByUser returns the caller's orders, newest first.
func (m *MemoryStore) OrdersByUser(_ context.Context, userID string) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var res []models.Order
	for i := len(m.orderOrder) - 1; i >= 0; i-- {
		if o, ok := m.orders[m.orderOrder[i]]; ok && o.UserID == userID {
			res = append(res, o)
		}
	}
	return res, nil
}

// AllOrders returns every order, newest first.
func (m *MemoryStore) AllOrders(_ context.Context) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]models.Order, 0, len(m.orderOrder))
	for i := len(m.orderOrder) - 1; i >= 0; i-- {
		if o, ok := m.orders[m.orderOrder[i]]; ok {
			res = append(res, o)
		}
	}
	return res, nil
}
