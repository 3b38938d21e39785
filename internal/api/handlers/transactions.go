package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ecakir/webhook-processor/internal/api/httpx"
	"github.com/ecakir/webhook-processor/internal/api/validate"
	repo "github.com/ecakir/webhook-processor/internal/repository"
	"github.com/ecakir/webhook-processor/internal/services"
)

type TransactionHandler struct {
	Svc *services.TransactionService
}

func NewTransactionHandler(svc *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{Svc: svc}
}

// Receive handles the webhook POST. New and redelivered webhooks both get
// 202: acceptance is idempotent and settlement runs after the response.
func (h *TransactionHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var req services.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_body", "request body is not valid JSON", nil)
		return
	}

	_, err := h.Svc.Accept(r.Context(), req)
	if err != nil {
		var verrs validate.Errs
		if errors.As(err, &verrs) {
			httpx.WriteError(w, http.StatusBadRequest, "validation_failed", "invalid webhook payload", verrs)
			return
		}
		// Infrastructure failure: log the detail, never leak it to the caller.
		slog.Error("webhook intake failed", "transaction_id", req.TransactionID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to process webhook", nil)
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, map[string]string{"message": "Webhook received"})
}

// Status returns the full record for a transaction_id.
func (h *TransactionHandler) Status(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "transactionID")

	tx, err := h.Svc.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "transaction not found: "+id, nil)
		return
	}
	if err != nil {
		slog.Error("status query failed", "transaction_id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to retrieve transaction status", nil)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tx)
}

type healthResponse struct {
	Status      string `json:"status"`
	CurrentTime string `json:"current_time"`
}

// Health is used by external orchestration; it reports process liveness and
// the server clock, nothing about the store.
func Health(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, healthResponse{
		Status:      "HEALTHY",
		CurrentTime: time.Now().UTC().Format(time.RFC3339),
	})
}
