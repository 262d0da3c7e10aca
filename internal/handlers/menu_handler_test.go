package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ovenfresh/storefront/internal/catalog"
	"github.com/ovenfresh/storefront/internal/models"
	"github.com/ovenfresh/storefront/internal/service"
	"github.com/ovenfresh/storefront/internal/session"
	"github.com/ovenfresh/storefront/pkg/logger"
)

func newTestMenuHandler() *MenuHandler {
	repo := catalog.NewInMemoryRepository()
	svc := service.NewStorefrontService(repo, session.NewStore())
	log := logger.New("error")
	return NewMenuHandler(svc, log)
}

func TestListMenu(t *testing.T) {
	handler := newTestMenuHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	w := httptest.NewRecorder()

	handler.ListMenu(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var items []models.MenuItem
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(items) != 12 {
		t.Errorf("expected 12 items, got %d", len(items))
	}
}

func TestListMenu_FilterAndSort(t *testing.T) {
	handler := newTestMenuHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/menu?category=pizza&sort=price-high", nil)
	w := httptest.NewRecorder()

	handler.ListMenu(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var items []models.MenuItem
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(items) == 0 {
		t.Fatal("expected pizza items")
	}
	for _, item := range items {
		if item.Category != "pizza" {
			t.Errorf("item %d has category %s", item.ID, item.Category)
		}
	}
	for i := 1; i < len(items); i++ {
		if items[i].Price > items[i-1].Price {
			t.Errorf("prices not descending at position %d", i)
		}
	}
}

func TestListMenu_Search(t *testing.T) {
	handler := newTestMenuHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/menu?q=PIZZA", nil)
	w := httptest.NewRecorder()

	handler.ListMenu(w, req)

	var items []models.MenuItem
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(items) == 0 {
		t.Fatal("expected case-insensitive matches for PIZZA")
	}
}

func TestListMenu_InvalidSort(t *testing.T) {
	handler := newTestMenuHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/menu?sort=cheapest", nil)
	w := httptest.NewRecorder()

	handler.ListMenu(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response["error"] != "Invalid sort key" {
		t.Errorf("expected error message 'Invalid sort key', got %s", response["error"])
	}
}

func TestGetItem_Success(t *testing.T) {
	handler := newTestMenuHandler()

	r := chi.NewRouter()
	r.Get("/api/menu/{itemId}", handler.GetItem)

	req := httptest.NewRequest(http.MethodGet, "/api/menu/1", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var item models.MenuItem
	if err := json.NewDecoder(w.Body).Decode(&item); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if item.ID != 1 {
		t.Errorf("expected item ID 1, got %d", item.ID)
	}
	if item.Name != "Margherita Pizza" {
		t.Errorf("expected item name 'Margherita Pizza', got %s", item.Name)
	}
}

func TestGetItem_NotFound(t *testing.T) {
	handler := newTestMenuHandler()

	r := chi.NewRouter()
	r.Get("/api/menu/{itemId}", handler.GetItem)

	req := httptest.NewRequest(http.MethodGet, "/api/menu/999", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestGetItem_InvalidID(t *testing.T) {
	handler := newTestMenuHandler()

	r := chi.NewRouter()
	r.Get("/api/menu/{itemId}", handler.GetItem)

	testCases := []struct {
		name string
		id   string
	}{
		{"letters", "invalid"},
		{"special chars", "abc@123"},
		{"float", "12.34"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/menu/"+tc.id, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400 for ID %s, got %d", tc.id, w.Code)
			}
		})
	}
}

func TestListCategories(t *testing.T) {
	handler := newTestMenuHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()

	handler.ListCategories(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var categories []models.Category
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(categories) != 5 {
		t.Errorf("expected 5 categories, got %d", len(categories))
	}
}
