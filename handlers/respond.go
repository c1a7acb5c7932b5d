package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/bookverse/backend/store"
)

// Error codes carried alongside the human-readable message so clients can
// branch without parsing strings.
const (
	codeValidation         = "validation"
	codeConflict           = "conflict"
	codeInvalidCredentials = "invalid_credentials"
	codeUnauthenticated    = "unauthenticated"
	codeNotFound           = "not_found"
	codeInternal           = "internal"
)

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Error   string `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("respond:", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorBody{Message: message, Code: code})
}

// respondFault reports an unexpected server error; the underlying error text
// is included in the body, matching the {message, error} contract.
func respondFault(w http.ResponseWriter, message string, err error) {
	log.Println(message+":", err)
	respondJSON(w, http.StatusInternalServerError, errorBody{
		Message: message,
		Code:    codeInternal,
		Error:   err.Error(),
	})
}

// storeError maps store sentinels onto the right status; anything else is a
// server fault.
func storeError(w http.ResponseWriter, err error, notFoundMsg, faultMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, codeNotFound, notFoundMsg)
		return
	}
	respondFault(w, faultMsg, err)
}
