package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"modernstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSink(t *testing.T, writesPerSec float64, burst int) (*FileSink, string) {
	t.Helper()
	dir := t.TempDir()
	sink, err := NewFileSink(context.Background(), dir, writesPerSec, burst, 50*time.Millisecond)
	require.NoError(t, err)
	return sink, dir
}

func sampleSnapshot(cartQty int) domain.Snapshot {
	return domain.Snapshot{
		WishlistItems: []domain.Product{{ID: "1", Name: "Table Lamp", Price: 54.99, Category: "home"}},
		CartItems:     []domain.CartItem{{Product: domain.Product{ID: "2", Name: "Tablet", Price: 399.99}, Quantity: cartQty}},
		User:          &domain.User{ID: "1", Email: "johnd@test.com", Name: "John Doe"},
	}
}

func TestFileSinkRoundTrip(t *testing.T) {
	sink, _ := newSink(t, 100, 10)
	defer sink.Close()

	ctx := context.Background()
	require.NoError(t, sink.Persist(ctx, "modern-store", sampleSnapshot(4)))

	loaded, err := sink.Load(ctx, "modern-store")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.CartItems, 1)
	assert.Equal(t, 4, loaded.CartItems[0].Quantity)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "johnd@test.com", loaded.User.Email)
}

func TestFileSinkMissingKey(t *testing.T) {
	sink, _ := newSink(t, 100, 10)
	defer sink.Close()

	loaded, err := sink.Load(context.Background(), "never-written")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileSinkBrokenSlotIsAnError(t *testing.T) {
	sink, dir := newSink(t, 100, 10)
	defer sink.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "modern-store.json"), []byte("{not json"), 0o644))

	loaded, err := sink.Load(context.Background(), "modern-store")
	assert.Error(t, err)
	assert.Nil(t, loaded)
}

func TestFileSinkCoalescesThrottledWrites(t *testing.T) {
	// burst 1: the first write lands immediately, the rest stay pending
	// until a flush.
	sink, _ := newSink(t, 0.001, 1)

	ctx := context.Background()
	for qty := 1; qty <= 5; qty++ {
		require.NoError(t, sink.Persist(ctx, "modern-store", sampleSnapshot(qty)))
	}

	// Close must flush the latest pending snapshot.
	require.NoError(t, sink.Close())

	loaded, err := sink.Load(ctx, "modern-store")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 5, loaded.CartItems[0].Quantity)
}

func TestFileSinkFlushLoopDrainsPending(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(context.Background(), dir, 0.001, 1, 20*time.Millisecond)
	require.NoError(t, err)
	defer sink.Close()

	ctx := context.Background()
	require.NoError(t, sink.Persist(ctx, "modern-store", sampleSnapshot(1)))
	require.NoError(t, sink.Persist(ctx, "modern-store", sampleSnapshot(2))) // throttled, pending

	require.Eventually(t, func() bool {
		loaded, err := sink.Load(ctx, "modern-store")
		return err == nil && loaded != nil && loaded.CartItems[0].Quantity == 2
	}, time.Second, 10*time.Millisecond)
}
