package store

import (
	"context"
	"testing"

	"github.com/bookverse/backend/models"
)

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	u := &models.User{Name: "A", Email: "a@x.com", Password: "hash"}
	if err := m.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected ID to be assigned")
	}

	dup := &models.User{Name: "B", Email: "a@x.com", Password: "hash2"}
	if err := m.CreateUser(ctx, dup); err != ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	got, err := m.UserByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("user by email: %v", err)
	}
	if got.Name != "A" {
		t.Fatalf("duplicate insert overwrote original user: %+v", got)
	}
	if _, err := m.UserByEmail(ctx, "nobody@x.com"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown email, got %v", err)
	}
}

func seedCatalog(t *testing.T, m *MemoryStore) {
	t.Helper()
	ctx := context.Background()
	books := []models.Book{
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Category: "Fiction", Price: 12.99},
		{Title: "Indian Polity", Author: "M. Laxmikanth", Category: "UPSC", Price: 650},
		{Title: "Word Power Made Easy", Author: "Norman Lewis", Category: "English", Price: 175},
		{Title: "1984", Author: "George Orwell", Category: "Science Fiction", Price: 13.99},
	}
	for i := range books {
		if err := m.InsertBook(ctx, &books[i]); err != nil {
			t.Fatalf("insert book: %v", err)
		}
	}
}

func TestListBooksFilters(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	seedCatalog(t, m)

	all, err := m.ListBooks(ctx, BookFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 books, got %d", len(all))
	}

	upsc, err := m.ListBooks(ctx, BookFilter{Category: "UPSC"})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(upsc) != 1 || upsc[0].Category != "UPSC" {
		t.Fatalf("category filter returned %+v", upsc)
	}

	// Search is a case-insensitive substring match against title or author.
	gatsby, err := m.ListBooks(ctx, BookFilter{Search: "GATSBY"})
	if err != nil {
		t.Fatalf("list by search: %v", err)
	}
	if len(gatsby) != 1 || gatsby[0].Title != "The Great Gatsby" {
		t.Fatalf("search filter returned %+v", gatsby)
	}

	byAuthor, err := m.ListBooks(ctx, BookFilter{Search: "orwell"})
	if err != nil {
		t.Fatalf("list by author search: %v", err)
	}
	if len(byAuthor) != 1 || byAuthor[0].Title != "1984" {
		t.Fatalf("author search returned %+v", byAuthor)
	}

	// Both filters compose with AND.
	none, err := m.ListBooks(ctx, BookFilter{Category: "UPSC", Search: "gatsby"})
	if err != nil {
		t.Fatalf("list combined: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no match for UPSC+gatsby, got %+v", none)
	}
}

func TestUpdateAndDeleteBook(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	book := &models.Book{Title: "T", Author: "Au", Category: "English", Price: 10, Stock: 5}
	if err := m.InsertBook(ctx, book); err != nil {
		t.Fatalf("insert: %v", err)
	}

	newPrice := 12.5
	updated, err := m.UpdateBook(ctx, book.ID, &models.BookPatch{Price: &newPrice})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 12.5 || updated.Title != "T" {
		t.Fatalf("patch should only change supplied fields, got %+v", updated)
	}

	if _, err := m.UpdateBook(ctx, "missing", &models.BookPatch{}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound updating missing book, got %v", err)
	}

	if err := m.DeleteBook(ctx, book.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := m.DeleteBook(ctx, book.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
	if _, err := m.BookByID(ctx, book.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestOrdersByUserAndAllOrders(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	mine := &models.Order{UserID: "u1", TotalAmount: 20}
	other := &models.Order{UserID: "u2", TotalAmount: 30}
	later := &models.Order{UserID: "u1", TotalAmount: 40}
	for _, o := range []*models.Order{mine, other, later} {
		if err := m.InsertOrder(ctx, o); err != nil {
			t.Fatalf("insert order: %v", err)
		}
	}

	got, err := m.OrdersByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("orders by user: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders for u1, got %d", len(got))
	}
	if got[0].ID != later.ID {
		t.Fatalf("expected newest order first, got %+v", got)
	}

	all, err := m.AllOrders(ctx)
	if err != nil {
		t.Fatalf("all orders: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(all))
	}
}
