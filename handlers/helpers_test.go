package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookverse/backend/middleware"
	"github.com/bookverse/backend/store"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*httptest.Server, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	srv := httptest.NewServer(NewRouter(st, nil, nil, testSecret))
	t.Cleanup(srv.Close)
	return srv, st
}

// doJSON issues a request with an optional bearer token and JSON body, and
// decodes the JSON response into out (when out is non-nil).
func doJSON(t *testing.T, method, url, token string, body interface{}, out interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("decode %s %s (%d): %v\nbody: %s", method, url, resp.StatusCode, err, raw)
		}
	}
	return resp
}

func registerUser(t *testing.T, srv *httptest.Server, name, email, password string) AuthResponse {
	t.Helper()
	var out AuthResponse
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &out)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", email, resp.StatusCode)
	}
	return out
}

// adminToken seeds the store and logs in as the seeded admin.
func adminToken(t *testing.T, srv *httptest.Server) AuthResponse {
	t.Helper()
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/seed", "", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("seed: expected 200, got %d", resp.StatusCode)
	}
	var out AuthResponse
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", LoginRequest{
		Email:    "admin@bookstore.com",
		Password: "admin123",
	}, &out)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin login: expected 200, got %d", resp.StatusCode)
	}
	if !out.User.IsAdmin {
		t.Fatalf("seeded admin should have isAdmin set")
	}
	return out
}

// expiredTokenFor signs a token whose validity window has already elapsed.
func expiredTokenFor(t *testing.T, userID, email string, isAdmin bool) string {
	t.Helper()
	claims := &middleware.Claims{
		UserID:  userID,
		Email:   email,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}
	return token
}
