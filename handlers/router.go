package handlers

import (
	"net/http"

	"github.com/bookverse/backend/middleware"
	"github.com/bookverse/backend/service"
	"github.com/bookverse/backend/store"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the full route table. S3 and Mailer may be nil; the
// affected endpoints degrade instead of failing at startup.
func NewRouter(st store.Store, s3 *service.S3Service, mailer *service.Mailer, jwtSecret string) chi.Router {
	authHandler := &AuthHandler{Store: st, JWTSecret: jwtSecret}
	booksHandler := &BooksHandler{Store: st, S3: s3}
	ordersHandler := &OrdersHandler{Store: st, Mailer: mailer}
	seedHandler := &SeedHandler{Store: st}

	r := chi.NewRouter()
	r.Use(middleware.AllowAll())
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"welcome to the bookstore."}`))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Get("/books", booksHandler.List)
		r.Get("/books/{id}", booksHandler.Get)
		r.Get("/books/{id}/cover", booksHandler.Cover)

		r.Post("/seed", seedHandler.Seed)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(jwtSecret))
			r.Post("/orders", ordersHandler.Create)
			r.Get("/orders", ordersHandler.ListMine)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Auth(jwtSecret))
			r.Use(middleware.RequireAdmin)
			r.Post("/books", booksHandler.Create)
			r.Put("/books/{id}", booksHandler.Update)
			r.Delete("/books/{id}", booksHandler.Delete)
			r.Post("/books/{id}/cover", booksHandler.UploadCover)
			r.Get("/orders", ordersHandler.ListAll)
		})
	})
	return r
}
