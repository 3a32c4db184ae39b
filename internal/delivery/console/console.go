// Package console provides terminal-backed implementations of the store's
// collaborators for the demo binary. Tests use their own mocks.
package console

import (
	"sync"

	"modernstore/internal/domain"
	"modernstore/pkg/logger"
	"modernstore/pkg/utils"
)

// Notifier renders toast messages as log lines.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Success(message string) {
	logger.Info().Str("toast", "success").Msg(message)
}

func (n *Notifier) Error(message string) {
	logger.Error().Str("toast", "error").Msg(message)
}

// OpenDialog is a dialog the host is currently showing, with the opaque
// data threaded through from the opener.
type OpenDialog struct {
	ID   string
	Form string
	Data domain.DialogData
}

// DialogHost tracks open dialogs by generated id.
type DialogHost struct {
	mu   sync.Mutex
	open map[string]OpenDialog
	last OpenDialog
}

func NewDialogHost() *DialogHost {
	return &DialogHost{
		open: make(map[string]OpenDialog),
	}
}

func (h *DialogHost) Open(form string, data domain.DialogData) domain.DialogRef {
	ref := domain.DialogRef{
		ID:   utils.GenerateUUID(),
		Form: form,
	}

	h.mu.Lock()
	h.open[ref.ID] = OpenDialog{ID: ref.ID, Form: form, Data: data}
	h.last = h.open[ref.ID]
	h.mu.Unlock()

	logger.Info().
		Str("dialog_id", ref.ID).
		Str("form", form).
		Bool("checkout_intent", data.Checkout).
		Msg("Dialog opened")
	return ref
}

func (h *DialogHost) CloseByID(id string) {
	h.mu.Lock()
	ref, found := h.open[id]
	if found {
		delete(h.open, id)
	}
	h.mu.Unlock()

	if !found {
		// Closing an unknown dialog is harmless.
		return
	}
	logger.Info().Str("dialog_id", id).Str("form", ref.Form).Msg("Dialog closed")
}

// OpenCount reports how many dialogs are currently open.
func (h *DialogHost) OpenCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.open)
}

// LastOpened returns the most recently opened dialog.
func (h *DialogHost) LastOpened() OpenDialog {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// Navigator logs route changes and remembers the current screen.
type Navigator struct {
	mu      sync.Mutex
	current string
}

func NewNavigator() *Navigator {
	return &Navigator{current: "/"}
}

func (n *Navigator) NavigateTo(path string) {
	n.mu.Lock()
	n.current = path
	n.mu.Unlock()
	logger.Info().Str("route", path).Msg("Navigated")
}

// Current returns the last navigated route.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
