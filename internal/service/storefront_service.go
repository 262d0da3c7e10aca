package service

import (
	"context"

	"github.com/ovenfresh/storefront/internal/catalog"
	"github.com/ovenfresh/storefront/internal/models"
	"github.com/ovenfresh/storefront/internal/session"
	"github.com/ovenfresh/storefront/internal/view"
)

// StorefrontService ties the static catalog to per-session state and
// derives the displayed view from the two.
type StorefrontService struct {
	catalog  catalog.Repository
	sessions *session.Store
}

// NewStorefrontService creates a new storefront service.
func NewStorefrontService(repo catalog.Repository, sessions *session.Store) *StorefrontService {
	return &StorefrontService{
		catalog:  repo,
		sessions: sessions,
	}
}

// CartSummary is the cart as returned after every cart mutation.
type CartSummary struct {
	Lines      []models.CartLine `json:"lines"`
	TotalPrice float64           `json:"totalPrice"`
	TotalItems int               `json:"totalItems"`
}

// Snapshot is the full session view pushed to the client on every read:
// the derived item list plus cart, totals, favorites and view selections.
type Snapshot struct {
	Items     []models.MenuItem `json:"items"`
	Cart      CartSummary       `json:"cart"`
	Favorites []int64           `json:"favorites"`
	View      models.ViewState  `json:"view"`
}

// ViewUpdate carries the view selections to change; nil fields are left
// untouched so each input event can update just its own selection.
type ViewUpdate struct {
	Category *string `json:"category"`
	Search   *string `json:"search"`
	Sort     *string `json:"sort"`
	CartOpen *bool   `json:"cartOpen"`
}

// Menu returns the catalog filtered and sorted by the given selections.
func (s *StorefrontService) Menu(ctx context.Context, category, search string, key models.SortKey) ([]models.MenuItem, error) {
	items, err := s.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}
	return view.Sort(view.Filter(items, category, search), key), nil
}

// Item returns a single menu item.
func (s *StorefrontService) Item(ctx context.Context, id int64) (*models.MenuItem, error) {
	return s.catalog.ItemByID(ctx, id)
}

// Categories returns the static category list.
func (s *StorefrontService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.catalog.Categories(ctx)
}

// CreateSession registers a new session and returns its id.
func (s *StorefrontService) CreateSession(ctx context.Context) string {
	return s.sessions.Create()
}

// Snapshot derives the full view for a session from its current selections.
func (s *StorefrontService) Snapshot(ctx context.Context, sessionID string) (*Snapshot, error) {
	state, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	vs := state.View()
	items, err := s.Menu(ctx, vs.Category, vs.Search, vs.Sort)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Items:     items,
		Cart:      cartSummary(state),
		Favorites: state.Favorites(),
		View:      vs,
	}, nil
}

// UpdateView applies the given selection changes and returns the derived
// snapshot. An invalid sort key is rejected before anything is changed.
func (s *StorefrontService) UpdateView(ctx context.Context, sessionID string, upd ViewUpdate) (*Snapshot, error) {
	state, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var sortKey models.SortKey
	if upd.Sort != nil {
		sortKey, err = models.ParseSortKey(*upd.Sort)
		if err != nil {
			return nil, err
		}
	}

	if upd.Category != nil {
		state.SetCategory(*upd.Category)
	}
	if upd.Search != nil {
		state.SetSearch(*upd.Search)
	}
	if upd.Sort != nil {
		state.SetSort(sortKey)
	}
	if upd.CartOpen != nil {
		state.SetCartOpen(*upd.CartOpen)
	}

	return s.Snapshot(ctx, sessionID)
}

// AddToCart resolves the item against the catalog and adds one unit of it
// to the session's cart.
func (s *StorefrontService) AddToCart(ctx context.Context, sessionID string, itemID int64) (*CartSummary, error) {
	state, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	item, err := s.catalog.ItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	state.AddItem(*item)
	summary := cartSummary(state)
	return &summary, nil
}

// SetCartQuantity sets the quantity of a cart line; zero removes the line.
func (s *StorefrontService) SetCartQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) (*CartSummary, error) {
	state, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	item, err := s.catalog.ItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := state.SetQuantity(*item, quantity); err != nil {
		return nil, err
	}

	summary := cartSummary(state)
	return &summary, nil
}

// RemoveFromCart deletes a cart line; absent lines are a no-op.
func (s *StorefrontService) RemoveFromCart(ctx context.Context, sessionID string, itemID int64) (*CartSummary, error) {
	state, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	state.RemoveItem(itemID)
	summary := cartSummary(state)
	return &summary, nil
}

// ToggleFavorite flips an item's favorite marker and reports the result.
func (s *StorefrontService) ToggleFavorite(ctx context.Context, sessionID string, itemID int64) (bool, error) {
	state, err := s.sessions.Get(sessionID)
	if err != nil {
		return false, err
	}
	return state.ToggleFavorite(itemID), nil
}

func cartSummary(state *session.State) CartSummary {
	return CartSummary{
		Lines:      state.Lines(),
		TotalPrice: state.TotalPrice(),
		TotalItems: state.TotalItemCount(),
	}
}
