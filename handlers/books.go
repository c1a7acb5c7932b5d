package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/bookverse/backend/models"
	"github.com/bookverse/backend/service"
	"github.com/bookverse/backend/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BooksHandler struct {
	Store store.Store
	S3    *service.S3Service // nil when cover storage is not configured
}

// List returns the catalog, optionally narrowed by ?category= (exact) and
// ?search= (case-insensitive substring of title or author). No pagination.
func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.BookFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}
	books, err := h.Store.ListBooks(r.Context(), filter)
	if err != nil {
		respondFault(w, "Server error", err)
		return
	}
	respondJSON(w, http.StatusOK, books)
}

func (h *BooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	book, err := h.Store.BookByID(r.Context(), id)
	if err != nil {
		storeError(w, err, "Book not found", "Server error")
		return
	}
	respondJSON(w, http.StatusOK, book)
}

type CreateBookRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

type BookResponse struct {
	Message string      `json:"message"`
	Book    models.Book `json:"book"`
}

func (h *BooksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "Invalid JSON body")
		return
	}
	if req.Title == "" || req.Author == "" || req.Category == "" {
		respondError(w, http.StatusBadRequest, codeValidation, "Title, author and category are required")
		return
	}
	if !models.ValidCategory(req.Category) {
		respondError(w, http.StatusBadRequest, codeValidation, "Unknown category")
		return
	}
	if req.Price < 0 {
		respondError(w, http.StatusBadRequest, codeValidation, "Price must not be negative")
		return
	}
	if req.Stock < 0 {
		respondError(w, http.StatusBadRequest, codeValidation, "Stock must not be negative")
		return
	}

	book := &models.Book{
		Title:       req.Title,
		Author:      req.Author,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Category:    req.Category,
		Stock:       req.Stock,
		CreatedAt:   time.Now(),
	}
	if err := h.Store.InsertBook(r.Context(), book); err != nil {
		respondFault(w, "Server error", err)
		return
	}
	respondJSON(w, http.StatusCreated, BookResponse{Message: "Book created successfully", Book: *book})
}

func (h *BooksHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch models.BookPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "Invalid JSON body")
		return
	}
	if patch.Category != nil && !models.ValidCategory(*patch.Category) {
		respondError(w, http.StatusBadRequest, codeValidation, "Unknown category")
		return
	}
	if patch.Price != nil && *patch.Price < 0 {
		respondError(w, http.StatusBadRequest, codeValidation, "Price must not be negative")
		return
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		respondError(w, http.StatusBadRequest, codeValidation, "Stock must not be negative")
		return
	}

	book, err := h.Store.UpdateBook(r.Context(), id, &patch)
	if err != nil {
		storeError(w, err, "Book not found", "Server error")
		return
	}
	respondJSON(w, http.StatusOK, BookResponse{Message: "Book updated successfully", Book: *book})
}

// Delete removes a book. Orders referencing it keep their line items as
// captured at purchase time; there is no referential check.
func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	book, err := h.Store.BookByID(r.Context(), id)
	if err != nil {
		storeError(w, err, "Book not found", "Server error")
		return
	}
	if err := h.Store.DeleteBook(r.Context(), id); err != nil {
		storeError(w, err, "Book not found", "Server error")
		return
	}
	if h.S3 != nil && book.CoverKey != "" {
		_ = h.S3.Delete(r.Context(), book.CoverKey)
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Book deleted successfully"})
}

const maxCoverBytes = 5 << 20

// UploadCover stores a cover image in S3 and points the book's image at the
// streaming route. Admin only.
func (h *BooksHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	if h.S3 == nil {
		respondError(w, http.StatusServiceUnavailable, codeInternal, "Cover storage not configured")
		return
	}
	id := chi.URLParam(r, "id")
	if _, err := h.Store.BookByID(r.Context(), id); err != nil {
		storeError(w, err, "Book not found", "Server error")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxCoverBytes)
	if err := r.ParseMultipartForm(maxCoverBytes); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "Invalid multipart body")
		return
	}
	file, header, err := r.FormFile("cover")
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "Missing cover file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	key := "covers/" + id + "/" + uuid.NewString()
	if err := h.S3.Put(r.Context(), key, file, contentType); err != nil {
		respondFault(w, "Failed to store cover", err)
		return
	}
	image := "/api/books/" + id + "/cover"
	if err := h.Store.SetBookCover(r.Context(), id, key, image); err != nil {
		storeError(w, err, "Book not found", "Server error")
		return
	}
	book, err := h.Store.BookByID(r.Context(), id)
	if err != nil {
		storeError(w, err, "Book not found", "Server error")
		return
	}
	respondJSON(w, http.StatusOK, BookResponse{Message: "Cover uploaded successfully", Book: *book})
}

// Cover streams the stored cover image. Public so <img src> works without a
// token.
func (h *BooksHandler) Cover(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	book, err := h.Store.BookByID(r.Context(), id)
	if err != nil {
		storeError(w, err, "Book not found", "Server error")
		return
	}
	if book.CoverKey == "" || h.S3 == nil {
		respondError(w, http.StatusNotFound, codeNotFound, "No cover")
		return
	}
	body, contentType, err := h.S3.Get(r.Context(), book.CoverKey)
	if err != nil {
		respondFault(w, "Failed to load cover", err)
		return
	}
	defer body.Close()
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	io.Copy(w, body)
}
