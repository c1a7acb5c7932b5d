package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bookverse/backend/models"
	"github.com/bookverse/backend/store"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedAdminEmail    = "admin@bookstore.com"
	seedAdminPassword = "admin123"
)

type SeedHandler struct {
	Store store.Store
}

// Seed is idempotent: it ensures the admin account exists and, when the
// catalog is empty, inserts a small sample catalog.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := h.ensureAdmin(r.Context()); err != nil {
		respondFault(w, "Server error", err)
		return
	}
	count, err := h.Store.CountBooks(r.Context())
	if err != nil {
		respondFault(w, "Server error", err)
		return
	}
	if count == 0 {
		for _, b := range sampleBooks() {
			book := b
			if err := h.Store.InsertBook(r.Context(), &book); err != nil {
				respondFault(w, "Server error", err)
				return
			}
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Database seeded successfully"})
}

func (h *SeedHandler) ensureAdmin(ctx context.Context) error {
	_, err := h.Store.UserByEmail(ctx, seedAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		Name:      "Admin",
		Email:     seedAdminEmail,
		Password:  string(hash),
		IsAdmin:   true,
		CreatedAt: time.Now(),
	}
	err = h.Store.CreateUser(ctx, admin)
	if errors.Is(err, store.ErrDuplicateEmail) {
		// Lost a race with a concurrent seed call; the admin exists.
		return nil
	}
	return err
}

func sampleBooks() []models.Book {
	now := time.Now()
	return []models.Book{
		{
			Title:       "The Great Gatsby",
			Author:      "F. Scott Fitzgerald",
			Price:       12.99,
			Image:       "https://via.placeholder.com/300x400?text=The+Great+Gatsby",
			Description: "A classic American novel set in the Jazz Age.",
			Category:    "Fiction",
			Stock:       50,
			CreatedAt:   now,
		},
		{
			Title:       "1984",
			Author:      "George Orwell",
			Price:       13.99,
			Image:       "https://via.placeholder.com/300x400?text=1984",
			Description: "A dystopian social science fiction novel.",
			Category:    "Science Fiction",
			Stock:       25,
			CreatedAt:   now,
		},
		{
			Title:       "Atomic Habits",
			Author:      "James Clear",
			Price:       399,
			Image:       "https://via.placeholder.com/300x400?text=Atomic+Habits",
			Description: "An easy and proven way to build good habits and break bad ones.",
			Category:    "Motivational",
			Stock:       65,
			CreatedAt:   now,
		},
		{
			Title:       "You Can Win",
			Author:      "Shiv Khera",
			Price:       199,
			Image:       "https://via.placeholder.com/300x400?text=You+Can+Win",
			Description: "A step-by-step tool for top achievers.",
			Category:    "Motivational",
			Stock:       60,
			CreatedAt:   now,
		},
		{
			Title:       "Indian Polity",
			Author:      "M. Laxmikanth",
			Price:       650,
			Image:       "https://via.placeholder.com/300x400?text=Indian+Polity",
			Description: "The standard reference for civil services preparation.",
			Category:    "UPSC",
			Stock:       40,
			CreatedAt:   now,
		},
		{
			Title:       "Word Power Made Easy",
			Author:      "Norman Lewis",
			Price:       175,
			Image:       "https://via.placeholder.com/300x400?text=Word+Power+Made+Easy",
			Description: "The complete handbook for building a superior vocabulary.",
			Category:    "English",
			Stock:       80,
			CreatedAt:   now,
		},
	}
}
