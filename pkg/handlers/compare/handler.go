// Package compare exposes the comparison operations over HTTP. Handlers
// translate wire payloads into controller calls and map typed failures onto
// status codes; all comparison logic lives in the services layer.
package compare

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/amaranz/budget-atlas/pkg/apperrors"
	"github.com/amaranz/budget-atlas/pkg/models/api"
	"github.com/amaranz/budget-atlas/pkg/models/domain"
	"github.com/amaranz/budget-atlas/pkg/server/middleware"
	storevtex "github.com/amaranz/budget-atlas/pkg/store/vtex"
)

// Service is the comparison surface the handlers depend on.
type Service interface {
	Compare(ctx context.Context, orderFormID, budgetID, requestID string) (*domain.ComparisonResult, error)
	CompareBudgets(ctx context.Context, budget1ID, budget2ID, requestID string) (*domain.BudgetComparisonResult, error)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req api.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}
	if req.OrderFormURL == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "orderFormUrl is required")
		return
	}
	if req.IDBudget == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "idBudget is required")
		return
	}

	orderFormID, err := storevtex.ExtractOrderFormID(req.OrderFormURL)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.service.Compare(ctx, orderFormID, req.IDBudget, requestID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

func (h *Handler) CompareBudgets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req api.CompareBudgetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}
	if req.IDBudget1 == "" || req.IDBudget2 == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "idBudget1 and idBudget2 are required")
		return
	}

	result, err := h.service.CompareBudgets(ctx, req.IDBudget1, req.IDBudget2, requestID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case apperrors.IsValidation(err):
		writeError(w, r, http.StatusBadRequest, "invalid_request", err.Error())
	case apperrors.IsNotFound(err):
		writeError(w, r, http.StatusNotFound, "not_found", err.Error())
	default:
		logger := zerolog.Ctx(r.Context())
		logger.Error().Err(err).Msg("comparison failed")
		writeError(w, r, http.StatusInternalServerError, "internal_error", "comparison failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, r, status, api.Error{
		Error:     code,
		Message:   message,
		RequestID: middleware.GetRequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger := zerolog.Ctx(r.Context())
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
