package domain

import "context"

// Notifier delivers fire-and-forget user-visible messages. No delivery
// guarantee is required and no result is reported back.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// DialogData is opaque payload threaded from the opener through to the
// form's store calls.
type DialogData struct {
	Checkout bool `json:"checkout"`
}

// DialogRef identifies an open dialog so it can be closed later.
type DialogRef struct {
	ID   string
	Form string
}

// DialogHost opens and closes modal forms keyed by form identifier. Forms
// invoke store operations directly with validated field values plus the
// dialog's own id.
type DialogHost interface {
	Open(form string, data DialogData) DialogRef
	CloseByID(id string)
}

// Navigator routes the user to a named screen. The store never waits on
// the outcome.
type Navigator interface {
	NavigateTo(path string)
}

// Snapshot is the persisted subset of store state: wishlist, cart and the
// signed-in user. It overlays the seeded state on startup.
type Snapshot struct {
	WishlistItems []Product  `json:"wishlistItems"`
	CartItems     []CartItem `json:"cartItems"`
	User          *User      `json:"user,omitempty"`
}

// SyncSink persists snapshots under a fixed opaque key. There is no schema
// versioning; a snapshot that no longer decodes is dropped by the loader.
type SyncSink interface {
	Persist(ctx context.Context, key string, snap Snapshot) error
	Load(ctx context.Context, key string) (*Snapshot, error)
	Close() error
}
