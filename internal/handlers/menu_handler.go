package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ovenfresh/storefront/internal/catalog"
	"github.com/ovenfresh/storefront/internal/models"
	"github.com/ovenfresh/storefront/internal/service"
)

// MenuHandler handles catalog-related HTTP requests
type MenuHandler struct {
	service *service.StorefrontService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.StorefrontService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// ListMenu handles GET /api/menu
// Query parameters: category (default "all"), q (search text), sort.
func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.CategoryAll
	}
	search := r.URL.Query().Get("q")

	sortKey := models.SortPopular
	if raw := r.URL.Query().Get("sort"); raw != "" {
		key, err := models.ParseSortKey(raw)
		if err != nil {
			h.logger.Warn("invalid sort key", "sort", raw)
			h.writeError(w, http.StatusBadRequest, "Invalid sort key")
			return
		}
		sortKey = key
	}

	items, err := h.service.Menu(ctx, category, search, sortKey)
	if err != nil {
		h.logger.Error("failed to list menu", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, items)
}

// GetItem handles GET /api/menu/{itemId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Item not found
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rawID := chi.URLParam(r, "itemId")

	itemID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.logger.Warn("invalid item ID format", "itemId", rawID, "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	item, err := h.service.Item(ctx, itemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			h.logger.Info("menu item not found", "itemId", itemID)
			h.writeError(w, http.StatusNotFound, "Item not found")
			return
		}

		h.logger.Error("failed to get menu item", "itemId", itemID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, item)
}

// ListCategories handles GET /api/categories
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, categories)
}

// writeJSON writes a JSON response
func (h *MenuHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", "error", err)
	}
}

// writeError writes an error response
func (h *MenuHandler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode error response", "error", err)
	}
}
