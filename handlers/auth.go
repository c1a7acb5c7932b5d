package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bookverse/backend/middleware"
	"github.com/bookverse/backend/models"
	"github.com/bookverse/backend/store"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Tokens expire after a fixed window; there is no revocation before expiry.
const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	Store     store.Store
	JWTSecret string
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    models.PublicUser `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "Invalid JSON body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, codeValidation, "Name, email and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondFault(w, "Server error", err)
		return
	}
	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		IsAdmin:   false,
		CreatedAt: time.Now(),
	}
	if err := h.Store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			respondError(w, http.StatusBadRequest, codeConflict, "User already exists")
			return
		}
		respondFault(w, "Server error", err)
		return
	}

	token, err := h.createToken(user)
	if err != nil {
		respondFault(w, "Server error", err)
		return
	}
	respondJSON(w, http.StatusCreated, AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    user.Public(),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, codeValidation, "Email and password are required")
		return
	}

	// Identical response for unknown email and wrong password: a failed
	// login must not reveal which check failed.
	user, err := h.Store.UserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.invalidCredentials(w, req.Password)
			return
		}
		respondFault(w, "Server error", err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidCredentials, "Invalid credentials")
		return
	}

	token, err := h.createToken(user)
	if err != nil {
		respondFault(w, "Server error", err)
		return
	}
	respondJSON(w, http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}

// invalidCredentials burns a bcrypt comparison against a fixed hash before
// answering, so an unknown email costs about as much as a wrong password.
func (h *AuthHandler) invalidCredentials(w http.ResponseWriter, password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	respondError(w, http.StatusBadRequest, codeInvalidCredentials, "Invalid credentials")
}

// bcrypt hash of an unguessable throwaway value, used only for timing parity.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("bookverse-timing-pad"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

func (h *AuthHandler) createToken(user *models.User) (string, error) {
	claims := &middleware.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.JWTSecret))
}
