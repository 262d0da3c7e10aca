package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ovenfresh/storefront/internal/catalog"
	"github.com/ovenfresh/storefront/internal/service"
	"github.com/ovenfresh/storefront/internal/session"
)

// CartHandler handles cart mutations for a session
type CartHandler struct {
	service *service.StorefrontService
	log     *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *service.StorefrontService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// addItemRequest is the body of an add-to-cart request
type addItemRequest struct {
	ItemID int64 `json:"itemId"`
}

// setQuantityRequest is the body of a set-quantity request
type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AddItem handles POST /api/session/{sessionId}/cart/items
// Adds one unit of the item: a new line, or an increment of an existing one.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode add-item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	summary, err := h.service.AddToCart(r.Context(), sessionID, req.ItemID)
	if err != nil {
		h.writeCartError(w, err, sessionID)
		return
	}

	h.log.Info("item added to cart", "session_id", sessionID, "item_id", req.ItemID)
	WriteJSON(w, http.StatusOK, summary, h.log)
}

// SetQuantity handles PUT /api/session/{sessionId}/cart/items/{itemId}
// Quantity zero removes the line; negative quantities are rejected.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemId"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode set-quantity request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	summary, err := h.service.SetCartQuantity(r.Context(), sessionID, itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, session.ErrNegativeQuantity) {
			h.log.Warn("rejected negative quantity", "session_id", sessionID, "item_id", itemID, "quantity", req.Quantity)
			WriteError(w, http.StatusBadRequest, "Quantity must not be negative", h.log)
			return
		}
		h.writeCartError(w, err, sessionID)
		return
	}

	WriteJSON(w, http.StatusOK, summary, h.log)
}

// RemoveItem handles DELETE /api/session/{sessionId}/cart/items/{itemId}
// Removing an absent line succeeds with the unchanged cart.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemId"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	summary, err := h.service.RemoveFromCart(r.Context(), sessionID, itemID)
	if err != nil {
		h.writeCartError(w, err, sessionID)
		return
	}

	WriteJSON(w, http.StatusOK, summary, h.log)
}

// writeCartError maps cart service errors to HTTP responses
func (h *CartHandler) writeCartError(w http.ResponseWriter, err error, sessionID string) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		h.log.Info("session not found", "session_id", sessionID)
		WriteError(w, http.StatusNotFound, "Session not found", h.log)
	case errors.Is(err, catalog.ErrItemNotFound):
		WriteError(w, http.StatusNotFound, "Item not found", h.log)
	default:
		h.log.Error("cart operation failed", "session_id", sessionID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
