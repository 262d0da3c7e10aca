// Package session holds the per-session storefront state: the cart, the
// favorites set and the view selections. Every mutation runs to completion
// before the next is observed; the lock only guards against concurrent
// HTTP requests hitting the same session.
package session

import (
	"errors"
	"sort"
	"sync"

	"github.com/ovenfresh/storefront/internal/models"
)

var (
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// State is the mutable state owned by one storefront session.
type State struct {
	mu sync.RWMutex

	lines     map[int64]*models.CartLine
	lineOrder []int64
	favorites map[int64]struct{}
	view      models.ViewState
}

// NewState creates an empty session state with default view selections.
func NewState() *State {
	return &State{
		lines:     make(map[int64]*models.CartLine),
		favorites: make(map[int64]struct{}),
		view:      models.DefaultViewState(),
	}
}

// AddItem puts one unit of the item in the cart: a new line with quantity 1,
// or an increment when a line for the item already exists.
func (s *State) AddItem(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line, exists := s.lines[item.ID]; exists {
		line.Quantity++
		return
	}

	s.lines[item.ID] = &models.CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: 1,
	}
	s.lineOrder = append(s.lineOrder, item.ID)
}

// RemoveItem deletes the line for the item. Removing an absent item is a
// no-op, not an error: repeated taps on a remove button must be harmless.
func (s *State) RemoveItem(itemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLine(itemID)
}

// SetQuantity sets the line quantity for the item. Zero removes the line
// entirely; a positive quantity updates the existing line or creates one.
// Negative quantities are rejected, never clamped.
func (s *State) SetQuantity(item models.MenuItem, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity == 0 {
		s.removeLine(item.ID)
		return nil
	}

	if line, exists := s.lines[item.ID]; exists {
		line.Quantity = quantity
		return nil
	}

	s.lines[item.ID] = &models.CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: quantity,
	}
	s.lineOrder = append(s.lineOrder, item.ID)
	return nil
}

// removeLine deletes a line and its order entry. Caller holds the lock.
func (s *State) removeLine(itemID int64) {
	if _, exists := s.lines[itemID]; !exists {
		return
	}
	delete(s.lines, itemID)
	for i, id := range s.lineOrder {
		if id == itemID {
			s.lineOrder = append(s.lineOrder[:i], s.lineOrder[i+1:]...)
			break
		}
	}
}

// Lines returns the cart lines in insertion order.
func (s *State) Lines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]models.CartLine, 0, len(s.lineOrder))
	for _, id := range s.lineOrder {
		lines = append(lines, *s.lines[id])
	}
	return lines
}

// TotalPrice sums price times quantity over all lines. Empty cart: 0.
func (s *State) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, line := range s.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// TotalItemCount sums quantities over all lines. Empty cart: 0.
func (s *State) TotalItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// ToggleFavorite flips the item's membership in the favorites set and
// reports the new membership. Two successive calls restore the set.
func (s *State) ToggleFavorite(itemID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.favorites[itemID]; exists {
		delete(s.favorites, itemID)
		return false
	}
	s.favorites[itemID] = struct{}{}
	return true
}

// Favorites returns the favorite item ids. The set itself is unordered;
// the slice is sorted so responses are deterministic.
func (s *State) Favorites() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// View returns the current view selections.
func (s *State) View() models.ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SetCategory selects the category filter.
func (s *State) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Category = category
}

// SetSearch sets the search text.
func (s *State) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Search = search
}

// SetSort selects the sort key.
func (s *State) SetSort(key models.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Sort = key
}

// SetCartOpen sets the cart-panel flag.
func (s *State) SetCartOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.CartOpen = open
}
