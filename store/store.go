package store

import (
	"context"
	"errors"

	"github.com/bookverse/backend/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// BookFilter narrows ListBooks. Zero value matches everything.
type BookFilter struct {
	Category string // exact match
	Search   string // case-insensitive substring of title or author
}

// Store defines persistence operations for users, books, and orders.
// Implementations must be safe for concurrent use by request handlers.
type Store interface {
	// users
	CreateUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)

	// books
	InsertBook(ctx context.Context, book *models.Book) error
	ListBooks(ctx context.Context, filter BookFilter) ([]models.Book, error)
	BookByID(ctx context.Context, id string) (*models.Book, error)
	UpdateBook(ctx context.Context, id string, patch *models.BookPatch) (*models.Book, error)
	SetBookCover(ctx context.Context, id, coverKey, image string) error
	DeleteBook(ctx context.Context, id string) error
	CountBooks(ctx context.Context) (int64, error)

	// orders
	InsertOrder(ctx context.Context, order *models.Order) error
	OrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	AllOrders(ctx context.Context) ([]models.Order, error)
}
