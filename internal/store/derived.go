package store

import (
	"strings"

	"modernstore/internal/domain"
)

// Derived views. Each is a pure function of the current state, computed on
// demand. The category filter is the only one worth memoizing: the catalog
// is immutable, so the result is cached per category key and never needs
// invalidation.

// FilteredProducts returns the catalog, narrowed to the active category
// when one is selected. Comparison is case-insensitive and the catalog
// order is preserved.
func (s *Store) FilteredProducts() []domain.Product {
	s.mu.RLock()
	category := s.category
	s.mu.RUnlock()

	if category == domain.CategoryAll {
		return s.Products()
	}

	wanted := strings.ToLower(category)
	key := "products:filtered:" + wanted

	if s.deps.Views != nil {
		if cached, found := s.deps.Views.Get(key); found {
			return copyProducts(cached.([]domain.Product))
		}
	}

	filtered := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if strings.ToLower(p.Category) == wanted {
			filtered = append(filtered, p)
		}
	}

	if s.deps.Views != nil {
		s.deps.Views.Set(key, filtered, 0)
	}
	return copyProducts(filtered)
}

// WishlistCount returns the number of saved products.
func (s *Store) WishlistCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.wishlistItems)
}

// CartCount returns the total units staged for purchase, not the number of
// distinct entries.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.cartItems {
		count += item.Quantity
	}
	return count
}

// SelectedProduct returns the catalog entry matching the selected product
// id, or nil when there is no selection or the id matches nothing.
func (s *Store) SelectedProduct() *domain.Product {
	s.mu.RLock()
	id := s.selectedProductID
	s.mu.RUnlock()

	if id == "" {
		return nil
	}
	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product
		}
	}
	return nil
}

// --- Read accessors; all return copies ---

// Products returns the full seeded catalog.
func (s *Store) Products() []domain.Product {
	return copyProducts(s.products)
}

// Category returns the active category filter.
func (s *Store) Category() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category
}

// WishlistItems returns the saved products.
func (s *Store) WishlistItems() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProducts(s.wishlistItems)
}

// CartItems returns the staged cart entries.
func (s *Store) CartItems() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.CartItem, len(s.cartItems))
	copy(items, s.cartItems)
	return items
}

// User returns the signed-in user, or nil.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// SessionToken returns the token minted for the current session, or "".
func (s *Store) SessionToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionToken
}

// Loading reports whether a mock order submission is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func copyProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}
