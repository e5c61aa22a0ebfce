package rules

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgerly/internal/rules"
	"github.com/MrJamesThe3rd/ledgerly/internal/transaction"
)

type Handler struct {
	svc *rules.Service
}

func NewHandler(svc *rules.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/apply", h.apply)
}

type ruleRequest struct {
	DescriptionMatch string           `json:"description_match"`
	CategoryID       uuid.UUID        `json:"category_id"`
	TransactionType  transaction.Type `json:"transaction_type"`
}

type ruleResponse struct {
	ID               uuid.UUID        `json:"id"`
	DescriptionMatch string           `json:"description_match"`
	CategoryID       uuid.UUID        `json:"category_id"`
	TransactionType  transaction.Type `json:"transaction_type"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(rule *rules.Rule) ruleResponse {
	return ruleResponse{
		ID:               rule.ID,
		DescriptionMatch: rule.DescriptionMatch,
		CategoryID:       rule.CategoryID,
		TransactionType:  rule.TransactionType,
		CreatedAt:        rule.CreatedAt,
		UpdatedAt:        rule.UpdatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]ruleResponse, len(list))
	for i, rule := range list {
		resp[i] = toResponse(rule)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req ruleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rule, err := h.svc.Create(r.Context(), rules.Params{
		DescriptionMatch: req.DescriptionMatch,
		CategoryID:       req.CategoryID,
		TransactionType:  req.TransactionType,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rule)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req ruleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rule, err := h.svc.Update(r.Context(), id, rules.Params{
		DescriptionMatch: req.DescriptionMatch,
		CategoryID:       req.CategoryID,
		TransactionType:  req.TransactionType,
	})
	if err != nil {
		if errors.Is(err, rules.ErrNotFound) {
			http.Error(w, "rule not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rule)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, rules.ErrNotFound) {
			http.Error(w, "rule not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type applyRequest struct {
	Bank      string `json:"bank"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Overwrite bool   `json:"overwrite"`
}

type applyResponse struct {
	Updated int64 `json:"updated"`
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Bank == "" {
		http.Error(w, "bank field is required", http.StatusBadRequest)
		return
	}

	if req.Year < 1900 || req.Year > 2100 {
		http.Error(w, "year must be between 1900 and 2100", http.StatusBadRequest)
		return
	}

	if req.Month < 1 || req.Month > 12 {
		http.Error(w, "month must be between 1 and 12", http.StatusBadRequest)
		return
	}

	updated, err := h.svc.Apply(r.Context(), rules.Scope{
		Bank:  req.Bank,
		Year:  req.Year,
		Month: req.Month,
	}, req.Overwrite)
	if err != nil {
		if errors.Is(err, rules.ErrNoRules) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(applyResponse{Updated: updated}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
