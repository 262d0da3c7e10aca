package catalog

import (
	"context"
	"errors"

	"github.com/ovenfresh/storefront/internal/models"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
)

// Repository defines read access to the static catalog.
type Repository interface {
	Items(ctx context.Context) ([]models.MenuItem, error)
	ItemByID(ctx context.Context, id int64) (*models.MenuItem, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// InMemoryRepository implements Repository over a catalog held in memory.
// The catalog is read-only after construction, so no locking is needed.
type InMemoryRepository struct {
	items      map[int64]models.MenuItem
	order      []int64
	categories []models.Category
}

// NewInMemoryRepository creates a repository seeded with the built-in menu.
func NewInMemoryRepository() *InMemoryRepository {
	return NewRepositoryFromCatalog(defaultCatalog())
}

// NewRepositoryFromCatalog creates a repository over an already-loaded catalog.
// Item order is preserved: it is the tie-break order for stable sorts.
func NewRepositoryFromCatalog(c *models.Catalog) *InMemoryRepository {
	items := make(map[int64]models.MenuItem, len(c.Items))
	order := make([]int64, 0, len(c.Items))
	for _, item := range c.Items {
		items[item.ID] = item
		order = append(order, item.ID)
	}

	return &InMemoryRepository{
		items:      items,
		order:      order,
		categories: c.Categories,
	}
}

// Items returns all menu items in catalog order.
func (r *InMemoryRepository) Items(ctx context.Context) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items, nil
}

// ItemByID returns a menu item by its ID.
func (r *InMemoryRepository) ItemByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, exists := r.items[id]
	if !exists {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

// Categories returns the static category list.
func (r *InMemoryRepository) Categories(ctx context.Context) ([]models.Category, error) {
	return r.categories, nil
}
