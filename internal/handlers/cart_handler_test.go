package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ovenfresh/storefront/internal/service"
)

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	r := newTestRouter()
	sessionID := createSession(t, r)

	addItem := func() service.CartSummary {
		req := httptest.NewRequest(http.MethodPost, "/api/session/"+sessionID+"/cart/items", strings.NewReader(`{"itemId": 1}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}

		var summary service.CartSummary
		if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
			t.Fatalf("failed to decode cart summary: %v", err)
		}
		return summary
	}

	addItem()
	summary := addItem()

	if len(summary.Lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(summary.Lines))
	}
	if summary.Lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", summary.Lines[0].Quantity)
	}
	if summary.TotalItems != 2 {
		t.Errorf("expected 2 total items, got %d", summary.TotalItems)
	}
}

func TestCart_AddUnknownItem(t *testing.T) {
	r := newTestRouter()
	sessionID := createSession(t, r)

	req := httptest.NewRequest(http.MethodPost, "/api/session/"+sessionID+"/cart/items", strings.NewReader(`{"itemId": 999}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestCart_SetQuantity(t *testing.T) {
	r := newTestRouter()
	sessionID := createSession(t, r)

	req := httptest.NewRequest(http.MethodPut, "/api/session/"+sessionID+"/cart/items/1", strings.NewReader(`{"quantity": 4}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var summary service.CartSummary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("failed to decode cart summary: %v", err)
	}

	if len(summary.Lines) != 1 || summary.Lines[0].Quantity != 4 {
		t.Errorf("expected one line with quantity 4, got %+v", summary.Lines)
	}
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	r := newTestRouter()
	sessionID := createSession(t, r)

	req := httptest.NewRequest(http.MethodPost, "/api/session/"+sessionID+"/cart/items", strings.NewReader(`{"itemId": 1}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	req = httptest.NewRequest(http.MethodPut, "/api/session/"+sessionID+"/cart/items/1", strings.NewReader(`{"quantity": 0}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var summary service.CartSummary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("failed to decode cart summary: %v", err)
	}

	if len(summary.Lines) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(summary.Lines))
	}
}

func TestCart_NegativeQuantityRejected(t *testing.T) {
	r := newTestRouter()
	sessionID := createSession(t, r)

	req := httptest.NewRequest(http.MethodPost, "/api/session/"+sessionID+"/cart/items", strings.NewReader(`{"itemId": 1}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	req = httptest.NewRequest(http.MethodPut, "/api/session/"+sessionID+"/cart/items/1", strings.NewReader(`{"quantity": -1}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response["error"] != "Quantity must not be negative" {
		t.Errorf("expected negative-quantity error, got %s", response["error"])
	}

	// Cart unchanged after the rejected update
	req = httptest.NewRequest(http.MethodGet, "/api/session/"+sessionID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var snapshot service.Snapshot
	if err := json.NewDecoder(w.Body).Decode(&snapshot); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if len(snapshot.Cart.Lines) != 1 || snapshot.Cart.Lines[0].Quantity != 1 {
		t.Errorf("cart changed after rejected update: %+v", snapshot.Cart)
	}
}

func TestCart_RemoveAbsentLineIsNoop(t *testing.T) {
	r := newTestRouter()
	sessionID := createSession(t, r)

	req := httptest.NewRequest(http.MethodDelete, "/api/session/"+sessionID+"/cart/items/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 for absent line, got %d", w.Code)
	}

	var summary service.CartSummary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("failed to decode cart summary: %v", err)
	}
	if len(summary.Lines) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(summary.Lines))
	}
}
