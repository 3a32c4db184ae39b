package console

import (
	"testing"

	"modernstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogHostLifecycle(t *testing.T) {
	host := NewDialogHost()

	ref := host.Open(domain.FormSignIn, domain.DialogData{Checkout: true})
	require.NotEmpty(t, ref.ID)
	assert.Equal(t, domain.FormSignIn, ref.Form)
	assert.Equal(t, 1, host.OpenCount())

	last := host.LastOpened()
	assert.Equal(t, ref.ID, last.ID)
	assert.True(t, last.Data.Checkout)

	host.CloseByID(ref.ID)
	assert.Equal(t, 0, host.OpenCount())

	// Closing an unknown dialog is harmless.
	host.CloseByID("missing")
	assert.Equal(t, 0, host.OpenCount())
}

func TestDialogHostAssignsDistinctIDs(t *testing.T) {
	host := NewDialogHost()

	a := host.Open(domain.FormSignIn, domain.DialogData{})
	b := host.Open(domain.FormSignUp, domain.DialogData{})

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, host.OpenCount())
}

func TestNavigatorTracksCurrentRoute(t *testing.T) {
	nav := NewNavigator()
	assert.Equal(t, "/", nav.Current())

	nav.NavigateTo(domain.RouteCheckout)
	assert.Equal(t, domain.RouteCheckout, nav.Current())

	nav.NavigateTo(domain.RouteOrderSuccess)
	assert.Equal(t, domain.RouteOrderSuccess, nav.Current())
}
