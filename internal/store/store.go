package store

import (
	"context"
	"sync"
	"time"

	"modernstore/internal/domain"
	"modernstore/pkg/cache"
	"modernstore/pkg/logger"
	"modernstore/pkg/session"
	"modernstore/pkg/utils"
)

// Config holds the store's runtime knobs.
type Config struct {
	// StorageKey is the opaque slot the state snapshot is persisted under.
	StorageKey string
	// CheckoutLatency is the simulated payment round-trip in PlaceOrder.
	CheckoutLatency time.Duration
}

// Deps are the collaborators the store calls but does not own.
type Deps struct {
	Notifier  domain.Notifier
	Dialogs   domain.DialogHost
	Navigator domain.Navigator
	Sink      domain.SyncSink
	Views     cache.CacheService
	Sessions  *session.Minter
}

// Store owns all storefront state: the seeded catalog, the category
// filter, wishlist, cart, the mock session and the checkout flow. All
// mutations replace whole state slices under one lock, so concurrent
// readers always observe a consistent snapshot. Collaborators never write
// state directly; they call the operations below with validated inputs.
type Store struct {
	cfg  Config
	deps Deps

	mu                sync.RWMutex
	products          []domain.Product
	category          string
	wishlistItems     []domain.Product
	cartItems         []domain.CartItem
	user              *domain.User
	sessionToken      string
	loading           bool
	selectedProductID string
}

// New constructs a Store over the given catalog. The catalog is fixed for
// the store's lifetime; nothing ever mutates it.
func New(cfg Config, products []domain.Product, deps Deps) *Store {
	return &Store{
		cfg:      cfg,
		deps:     deps,
		products: products,
		category: domain.CategoryAll,
	}
}

// Hydrate overlays a previously persisted snapshot on the seeded state.
// Call it once, before the first read. A snapshot that fails to load or
// decode is dropped: the seeded state wins and the error is only logged.
func (s *Store) Hydrate(ctx context.Context) {
	snap, err := s.deps.Sink.Load(ctx, s.cfg.StorageKey)
	if err != nil {
		logger.Warn().Err(err).Str("key", s.cfg.StorageKey).Msg("Ignoring unreadable snapshot")
		return
	}
	if snap == nil {
		return
	}

	s.mu.Lock()
	if snap.WishlistItems != nil {
		s.wishlistItems = snap.WishlistItems
	}
	if snap.CartItems != nil {
		s.cartItems = snap.CartItems
	}
	if snap.User != nil {
		user := *snap.User
		s.user = &user
	}
	s.mu.Unlock()

	logger.Info().
		Int("wishlist_items", len(snap.WishlistItems)).
		Int("cart_items", len(snap.CartItems)).
		Bool("user", snap.User != nil).
		Msg("State hydrated from snapshot")
}

// --- Catalog & selection ---

// SetCategory replaces the active category filter.
func (s *Store) SetCategory(category string) {
	s.mu.Lock()
	s.category = category
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// SetProductID replaces the selected product id. The derived selected
// product degrades to nil when the id matches nothing.
func (s *Store) SetProductID(productID string) {
	s.mu.Lock()
	s.selectedProductID = productID
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// --- Wishlist ---

// AddToWishlist appends the product unless it is already saved.
func (s *Store) AddToWishlist(product domain.Product) {
	logger.Mutation("add_to_wishlist", product.ID)

	s.mu.Lock()
	if !containsProduct(s.wishlistItems, product.ID) {
		updated := make([]domain.Product, len(s.wishlistItems), len(s.wishlistItems)+1)
		copy(updated, s.wishlistItems)
		s.wishlistItems = append(updated, product)
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	s.deps.Notifier.Success("Product added to wishlist")
}

// RemoveFromWishlist removes the product by id; unknown ids are a no-op.
func (s *Store) RemoveFromWishlist(product domain.Product) {
	logger.Mutation("remove_from_wishlist", product.ID)

	s.mu.Lock()
	s.wishlistItems = removeProduct(s.wishlistItems, product.ID)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	s.deps.Notifier.Success("Product removed from wishlist")
}

// ClearWishlist empties the wishlist.
func (s *Store) ClearWishlist() {
	s.mu.Lock()
	s.wishlistItems = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// --- Cart ---

// AddToCart stages the product for purchase. A product already in the cart
// accumulates quantity on its existing entry.
func (s *Store) AddToCart(product domain.Product, quantity int) {
	logger.Mutation("add_to_cart", product.ID)
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	updated := make([]domain.CartItem, len(s.cartItems), len(s.cartItems)+1)
	copy(updated, s.cartItems)

	existing := false
	for i := range updated {
		if updated[i].Product.ID == product.ID {
			updated[i].Quantity += quantity
			existing = true
			break
		}
	}
	if !existing {
		updated = append(updated, domain.CartItem{Product: product, Quantity: quantity})
	}
	s.cartItems = updated
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	if existing {
		s.deps.Notifier.Success("Product added again")
	} else {
		s.deps.Notifier.Success("Product added to the cart")
	}
}

// SetItemQuantity sets the quantity of a cart entry directly. A quantity
// of zero or less removes the entry, keeping the quantity >= 1 invariant.
// Unknown product ids are a no-op.
func (s *Store) SetItemQuantity(productID string, quantity int) {
	logger.Mutation("set_item_quantity", productID)

	s.mu.Lock()
	if quantity <= 0 {
		s.cartItems = removeCartItem(s.cartItems, productID)
	} else {
		updated := make([]domain.CartItem, len(s.cartItems))
		copy(updated, s.cartItems)
		for i := range updated {
			if updated[i].Product.ID == productID {
				updated[i].Quantity = quantity
				break
			}
		}
		s.cartItems = updated
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// AddAllWishlistToCart appends every wishlist item missing from the cart
// with quantity 1. Items already in the cart keep their quantity. The
// wishlist is emptied unconditionally afterwards.
func (s *Store) AddAllWishlistToCart() {
	s.mu.Lock()
	updated := make([]domain.CartItem, len(s.cartItems), len(s.cartItems)+len(s.wishlistItems))
	copy(updated, s.cartItems)
	for _, p := range s.wishlistItems {
		if !containsCartItem(updated, p.ID) {
			updated = append(updated, domain.CartItem{Product: p, Quantity: 1})
		}
	}
	s.cartItems = updated
	s.wishlistItems = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// MoveToWishlist removes the product from the cart and saves it to the
// wishlist, deduplicated by id.
func (s *Store) MoveToWishlist(product domain.Product) {
	logger.Mutation("move_to_wishlist", product.ID)

	s.mu.Lock()
	s.cartItems = removeCartItem(s.cartItems, product.ID)
	if !containsProduct(s.wishlistItems, product.ID) {
		updated := make([]domain.Product, len(s.wishlistItems), len(s.wishlistItems)+1)
		copy(updated, s.wishlistItems)
		s.wishlistItems = append(updated, product)
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// RemoveFromCart removes the product by id; unknown ids are a no-op.
func (s *Store) RemoveFromCart(product domain.Product) {
	logger.Mutation("remove_from_cart", product.ID)

	s.mu.Lock()
	s.cartItems = removeCartItem(s.cartItems, product.ID)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// --- Checkout ---

// ProceedToCheckout routes to the checkout screen, or opens the sign-in
// dialog with checkout intent when nobody is signed in.
func (s *Store) ProceedToCheckout() {
	s.mu.RLock()
	signedIn := s.user != nil
	s.mu.RUnlock()

	if !signedIn {
		s.deps.Dialogs.Open(domain.FormSignIn, domain.DialogData{Checkout: true})
		return
	}
	s.deps.Navigator.NavigateTo(domain.RouteCheckout)
}

// PlaceOrder runs the mock order submission. The order is built from a
// snapshot of the cart taken at submission time; cart edits made while the
// simulated payment is in flight do not change it. On success the cart is
// emptied and the user is routed to the confirmation screen. Without a
// signed-in user the operation aborts with a single error notification and
// leaves the cart untouched. The returned order is ephemeral; the store
// keeps no order history. Cancellation is not supported: once started, the
// simulated latency always runs out.
func (s *Store) PlaceOrder(ctx context.Context) *domain.Order {
	s.mu.Lock()
	s.loading = true

	if s.user == nil {
		s.loading = false
		s.mu.Unlock()
		s.deps.Notifier.Error("Please login before placing order")
		return nil
	}

	var total float64
	for _, item := range s.cartItems {
		total += float64(item.Quantity) * item.Product.Price
	}
	items := make([]domain.CartItem, len(s.cartItems))
	copy(items, s.cartItems)

	order := &domain.Order{
		ID:            utils.GenerateUUID(),
		UserID:        s.user.ID,
		Total:         utils.RoundTotal(total),
		Items:         items,
		PaymentStatus: domain.PaymentStatusSuccess,
	}
	s.mu.Unlock()

	logger.Info().
		Str("order_id", order.ID).
		Float64("total", order.Total).
		Int("items", len(order.Items)).
		Msg("Order submitted")

	// Simulated payment round-trip. The lock is released, so reads and
	// other mutations interleave freely while the order is in flight.
	time.Sleep(s.cfg.CheckoutLatency)

	s.mu.Lock()
	s.cartItems = nil
	s.loading = false
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)

	logger.Info().Str("order_id", order.ID).Str("payment_status", order.PaymentStatus).Msg("Order completed")
	s.deps.Navigator.NavigateTo(domain.RouteOrderSuccess)
	return order
}

// --- Mock auth ---

// SignIn replaces the session with the fixed identity derived from the
// email. Any credentials succeed. The dialog identified by DialogID is
// closed, and with checkout intent set the user is routed to checkout.
func (s *Store) SignIn(params domain.SignInParams) {
	s.startSession(params.Email, params.Checkout, params.DialogID)
}

// SignUp has the same unconditional-success semantics as SignIn. The form
// pre-validates the fields, including password confirmation.
func (s *Store) SignUp(params domain.SignUpParams) {
	s.startSession(params.Email, params.Checkout, params.DialogID)
}

// SignOut clears the user and the session token.
func (s *Store) SignOut() {
	s.mu.Lock()
	s.user = nil
	s.sessionToken = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)

	logger.Info().Msg("Signed out")
}

func (s *Store) startSession(email string, checkout bool, dialogID string) {
	user := &domain.User{
		ID:       "1",
		Email:    email,
		Name:     "John Doe",
		ImageURL: "https://randomuser.me/api/portraits/men/1.jpg",
	}

	token := ""
	if s.deps.Sessions != nil {
		var err error
		token, err = s.deps.Sessions.Mint(user.ID, user.Email)
		if err != nil {
			// The session remains usable without a token.
			logger.Error().Err(err).Msg("Failed to mint session token")
		}
	}

	s.mu.Lock()
	s.user = user
	s.sessionToken = token
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)

	logger.Info().Str("email", email).Bool("checkout_intent", checkout).Msg("Signed in")

	if dialogID != "" {
		s.deps.Dialogs.CloseByID(dialogID)
	}
	if checkout {
		s.deps.Navigator.NavigateTo(domain.RouteCheckout)
	}
}

// --- Persistence ---

func (s *Store) snapshotLocked() domain.Snapshot {
	snap := domain.Snapshot{
		WishlistItems: make([]domain.Product, len(s.wishlistItems)),
		CartItems:     make([]domain.CartItem, len(s.cartItems)),
	}
	copy(snap.WishlistItems, s.wishlistItems)
	copy(snap.CartItems, s.cartItems)
	if s.user != nil {
		user := *s.user
		snap.User = &user
	}
	return snap
}

func (s *Store) persist(snap domain.Snapshot) {
	if err := s.deps.Sink.Persist(context.Background(), s.cfg.StorageKey, snap); err != nil {
		logger.Warn().Err(err).Str("key", s.cfg.StorageKey).Msg("Snapshot persist failed")
	}
}

// --- Slice helpers ---

func containsProduct(products []domain.Product, id string) bool {
	for _, p := range products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func containsCartItem(items []domain.CartItem, productID string) bool {
	for _, item := range items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

func removeProduct(products []domain.Product, id string) []domain.Product {
	updated := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			updated = append(updated, p)
		}
	}
	return updated
}

func removeCartItem(items []domain.CartItem, productID string) []domain.CartItem {
	updated := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			updated = append(updated, item)
		}
	}
	return updated
}
