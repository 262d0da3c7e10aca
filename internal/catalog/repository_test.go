package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestInMemoryRepository_Items(t *testing.T) {
	repo := NewInMemoryRepository()

	items, err := repo.Items(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 12 {
		t.Errorf("expected 12 seed items, got %d", len(items))
	}

	// Catalog order must be preserved: it is the stable-sort tie-break
	if items[0].ID != 1 {
		t.Errorf("expected first item to be 1, got %d", items[0].ID)
	}
	if items[len(items)-1].ID != 12 {
		t.Errorf("expected last item to be 12, got %d", items[len(items)-1].ID)
	}
}

func TestInMemoryRepository_ItemByID(t *testing.T) {
	repo := NewInMemoryRepository()

	item, err := repo.ItemByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.Name != "Margherita Pizza" {
		t.Errorf("expected 'Margherita Pizza', got %s", item.Name)
	}
	if item.Category != "pizza" {
		t.Errorf("expected category 'pizza', got %s", item.Category)
	}
}

func TestInMemoryRepository_ItemByID_NotFound(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.ItemByID(context.Background(), 999)

	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestInMemoryRepository_Categories(t *testing.T) {
	repo := NewInMemoryRepository()

	categories, err := repo.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(categories) != 5 {
		t.Errorf("expected 5 categories, got %d", len(categories))
	}

	for _, c := range categories {
		if c.ID == "" || c.Name == "" {
			t.Errorf("category with empty id or name: %+v", c)
		}
	}
}

func TestSeedCatalog_IsValid(t *testing.T) {
	if err := validateCatalog(defaultCatalog()); err != nil {
		t.Errorf("seed catalog failed validation: %v", err)
	}
}
