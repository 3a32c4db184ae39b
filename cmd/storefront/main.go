package main

import (
	"context"
	"time"

	"modernstore/config"
	"modernstore/internal/catalog"
	"modernstore/internal/delivery/console"
	"modernstore/internal/domain"
	memcache "modernstore/internal/infrastructure/cache"
	"modernstore/internal/infrastructure/storage"
	"modernstore/internal/store"
	"modernstore/pkg/logger"
	"modernstore/pkg/session"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()
	logger.AppStart("storefront", "1.0.0")

	ctx := context.Background()

	// Local snapshot storage
	sink, err := storage.NewFileSink(ctx, cfg.StorageDir, cfg.SyncWritesPerSec, cfg.SyncBurst, cfg.SyncFlushPeriod)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize snapshot storage")
	}
	defer func() {
		if err := sink.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to flush snapshot storage")
		}
		logger.AppStop("storefront")
	}()

	// Derived-view memo cache. Default expiration 30m, cleanup every 60m.
	views := memcache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	// Collaborators
	notifier := console.NewNotifier()
	dialogs := console.NewDialogHost()
	navigator := console.NewNavigator()
	sessions := session.NewMinter(cfg.SessionSecret, cfg.SessionTokenExpiry)

	products := catalog.Seed()
	st := store.New(
		store.Config{
			StorageKey:      cfg.StorageKey,
			CheckoutLatency: cfg.CheckoutLatency,
		},
		products,
		store.Deps{
			Notifier:  notifier,
			Dialogs:   dialogs,
			Navigator: navigator,
			Sink:      sink,
			Views:     views,
			Sessions:  sessions,
		},
	)
	st.Hydrate(ctx)

	log.Info().
		Int("products", len(products)).
		Strs("categories", catalog.Categories(products)).
		Msg("Catalog ready")

	runWalkthrough(ctx, st, dialogs)
}

// runWalkthrough drives the storefront flows end to end: browse and
// filter, save to wishlist, fill the cart, hit the checkout gate, sign in
// and place the order.
func runWalkthrough(ctx context.Context, st *store.Store, dialogs *console.DialogHost) {
	log := logger.Get()

	// Browse electronics
	st.SetCategory("electronics")
	electronics := st.FilteredProducts()
	log.Info().Int("count", len(electronics)).Msg("Filtered catalog")
	if len(electronics) == 0 {
		return
	}

	// Inspect one product
	st.SetProductID(electronics[0].ID)
	if selected := st.SelectedProduct(); selected != nil {
		log.Info().Str("product", selected.Name).Float64("price", selected.Price).Msg("Viewing product")
	}

	// Save a couple of items, then move the wishlist into the cart
	st.AddToWishlist(electronics[0])
	if len(electronics) > 1 {
		st.AddToWishlist(electronics[1])
	}
	st.AddAllWishlistToCart()

	// Stage more units
	st.AddToCart(electronics[0], 2)
	log.Info().Int("cart_count", st.CartCount()).Int("wishlist_count", st.WishlistCount()).Msg("Cart staged")

	// Checkout while signed out: the sign-in dialog opens instead
	st.ProceedToCheckout()
	log.Info().Int("open_dialogs", dialogs.OpenCount()).Msg("Checkout gated on sign-in")

	// The form validates and submits; any credentials succeed
	dialog := dialogs.LastOpened()
	st.SignIn(domain.SignInParams{
		Email:    "johnd@test.com",
		Password: "test123",
		Checkout: dialog.Data.Checkout,
		DialogID: dialog.ID,
	})

	// Second attempt goes straight through
	st.ProceedToCheckout()

	order := st.PlaceOrder(ctx)
	if order == nil {
		log.Error().Msg("Order was not placed")
		return
	}
	log.Info().
		Str("order_id", order.ID).
		Float64("total", order.Total).
		Str("payment_status", order.PaymentStatus).
		Int("cart_count", st.CartCount()).
		Msg("Walkthrough complete")

	st.SignOut()
}
