package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/bookverse/backend/middleware"
	"github.com/bookverse/backend/models"
	"github.com/bookverse/backend/service"
	"github.com/bookverse/backend/store"
)

type OrdersHandler struct {
	Store  store.Store
	Mailer *service.Mailer // nil when confirmation mail is not configured
}

type CreateOrderRequest struct {
	Items           []models.OrderItem     `json:"items"`
	TotalAmount     float64                `json:"totalAmount"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
}

type OrderResponse struct {
	Message string       `json:"message"`
	Order   models.Order `json:"order"`
}

// Create places an order for the authenticated caller. The owner is taken
// from the token claims; any user field in the payload is ignored. Item book
// IDs are not checked against the catalog and stock is not decremented.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, codeUnauthenticated, "Access token required")
		return
	}
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "Invalid JSON body")
		return
	}
	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, codeValidation, "Order must contain at least one item")
		return
	}
	for _, item := range req.Items {
		if item.BookID == "" || item.Quantity <= 0 {
			respondError(w, http.StatusBadRequest, codeValidation, "Each item needs a book id and a positive quantity")
			return
		}
	}

	total := req.TotalAmount
	if total == 0 {
		for _, item := range req.Items {
			total += item.Price * float64(item.Quantity)
		}
	}
	order := &models.Order{
		UserID:          claims.UserID,
		Items:           req.Items,
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       time.Now(),
	}
	if err := h.Store.InsertOrder(r.Context(), order); err != nil {
		respondFault(w, "Server error", err)
		return
	}

	if h.Mailer != nil {
		// Best effort; a mail failure never fails the order.
		if err := h.Mailer.SendOrderConfirmation(claims.Email, order); err != nil {
			log.Println("order confirmation mail:", err)
		}
	}
	respondJSON(w, http.StatusCreated, OrderResponse{Message: "Order placed successfully", Order: *order})
}

// ListMine returns the caller's own orders, newest first.
func (h *OrdersHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, codeUnauthenticated, "Access token required")
		return
	}
	orders, err := h.Store.OrdersByUser(r.Context(), claims.UserID)
	if err != nil {
		respondFault(w, "Server error", err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

// ListAll returns every order annotated with user and book display fields.
// Admin only. Annotation is best effort: records deleted since purchase are
// simply absent from the annotation.
func (h *OrdersHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Store.AllOrders(r.Context())
	if err != nil {
		respondFault(w, "Server error", err)
		return
	}
	annotated := make([]models.AnnotatedOrder, 0, len(orders))
	for _, o := range orders {
		a := models.AnnotatedOrder{Order: o}
		if user, err := h.Store.UserByID(r.Context(), o.UserID); err == nil {
			a.User = &models.OrderUserView{Name: user.Name, Email: user.Email}
		}
		for _, item := range o.Items {
			book, err := h.Store.BookByID(r.Context(), item.BookID)
			if err != nil {
				continue
			}
			a.Books = append(a.Books, models.AnnotatedItemView{
				BookID:   item.BookID,
				Title:    book.Title,
				Author:   book.Author,
				Price:    book.Price,
				Quantity: item.Quantity,
			})
		}
		annotated = append(annotated, a)
	}
	respondJSON(w, http.StatusOK, annotated)
}
