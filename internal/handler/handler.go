package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/service"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps the application error taxonomy onto HTTP statuses:
// NotFound 404, Conflict 409, Validation 400, Unauthorized 401,
// everything else 500.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var notFound *apperrors.NotFoundError
	var conflict *apperrors.ConflictError
	var validation *apperrors.ValidationError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &conflict):
		status = http.StatusConflict
	case errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	}

	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, apperrors.Validationf("invalid request body: %v", err))
		return false
	}
	return true
}
