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

// SessionHandler handles session lifecycle, view selections and favorites
type SessionHandler struct {
	service *service.StorefrontService
	log     *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service *service.StorefrontService, log *slog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log,
	}
}

// CreateSession handles POST /api/session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := h.service.CreateSession(r.Context())
	h.log.Info("session created", "session_id", sessionID)

	WriteJSON(w, http.StatusCreated, map[string]string{"sessionId": sessionID}, h.log)
}

// GetSession handles GET /api/session/{sessionId}
// Returns the full derived snapshot: items per the current view selections,
// cart contents, totals, favorites and the selections themselves.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	snapshot, err := h.service.Snapshot(r.Context(), sessionID)
	if err != nil {
		h.writeServiceError(w, err, "failed to build session snapshot", sessionID)
		return
	}

	WriteJSON(w, http.StatusOK, snapshot, h.log)
}

// UpdateView handles PUT /api/session/{sessionId}/view
// Body fields are optional; only present fields are applied.
func (h *SessionHandler) UpdateView(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	var upd service.ViewUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.log.Error("failed to decode view update", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	snapshot, err := h.service.UpdateView(r.Context(), sessionID, upd)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			WriteError(w, http.StatusNotFound, "Session not found", h.log)
			return
		}
		h.log.Warn("rejected view update", "session_id", sessionID, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid sort key", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, snapshot, h.log)
}

// ToggleFavorite handles POST /api/session/{sessionId}/favorites/{itemId}
func (h *SessionHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemId"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	favorite, err := h.service.ToggleFavorite(r.Context(), sessionID, itemID)
	if err != nil {
		h.writeServiceError(w, err, "failed to toggle favorite", sessionID)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"itemId":   itemID,
		"favorite": favorite,
	}, h.log)
}

// writeServiceError maps service errors to HTTP responses
func (h *SessionHandler) writeServiceError(w http.ResponseWriter, err error, msg, sessionID string) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		h.log.Info("session not found", "session_id", sessionID)
		WriteError(w, http.StatusNotFound, "Session not found", h.log)
	case errors.Is(err, catalog.ErrItemNotFound):
		WriteError(w, http.StatusNotFound, "Item not found", h.log)
	default:
		h.log.Error(msg, "session_id", sessionID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
