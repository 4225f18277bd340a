package wishlist

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warungberkah/storefront/lib/mykeyvalue"
	"github.com/warungberkah/storefront/services/catalog"
)

var (
	chitato = catalog.Product{
		ID:       "10",
		Name:     "Chitato Sapi Panggang",
		Price:    10500,
		Category: "Makanan",
		Stock:    40,
	}
	kopi = catalog.Product{
		ID:       "8",
		Name:     "Kopi Kapal Api",
		Price:    2000,
		Category: "Minuman",
		Stock:    80,
	}
)

func newTestStore(t *testing.T) (context.Context, *Store, mykeyvalue.Store) {
	t.Helper()

	c := context.TODO()
	storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
	assert.NoError(t, err)

	store := NewStore(storage, "wishlist/test")
	store.Hydrate(c)

	return c, store, storage
}

func TestWishlistStore(t *testing.T) {

	t.Run("Starts empty", func(t *testing.T) {
		_, store, _ := newTestStore(t)

		assert.Empty(t, store.Products())
		assert.Equal(t, 0, store.Size())
		assert.False(t, store.Contains("10"))
	})

	t.Run("Add keeps insertion order", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, chitato)
		store.Add(c, kopi)

		products := store.Products()
		assert.Len(t, products, 2)
		assert.Equal(t, "10", products[0].ID)
		assert.Equal(t, "8", products[1].ID)
		assert.True(t, store.Contains("10"))
		assert.True(t, store.Contains("8"))
	})

	t.Run("Adding a duplicate is ignored", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, chitato)
		store.Add(c, chitato)

		assert.Equal(t, 1, store.Size())
	})

	t.Run("Remove deletes the product", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, chitato)
		store.Add(c, kopi)
		store.Remove(c, "10")

		assert.Equal(t, 1, store.Size())
		assert.False(t, store.Contains("10"))
		assert.True(t, store.Contains("8"))
	})

	t.Run("Remove of an unknown product is a no-op", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, chitato)
		store.Remove(c, "unknown")

		assert.Equal(t, 1, store.Size())
	})

	t.Run("Products returns a copy", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, chitato)

		products := store.Products()
		products[0].ID = "tampered"

		assert.True(t, store.Contains("10"))
	})
}

func TestWishlistStorePersistence(t *testing.T) {
	c := context.TODO()

	t.Run("State round-trips through storage", func(t *testing.T) {
		storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
		assert.NoError(t, err)

		store := NewStore(storage, "wishlist/abc")
		store.Hydrate(c)
		store.Add(c, chitato)
		store.Add(c, kopi)

		fresh := NewStore(storage, "wishlist/abc")
		fresh.Hydrate(c)

		assert.Equal(t, store.Products(), fresh.Products())
		assert.Equal(t, 2, fresh.Size())
	})

	t.Run("Mutations before hydration do not clobber the snapshot", func(t *testing.T) {
		storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
		assert.NoError(t, err)

		persisted, err := json.Marshal(snapshot{Version: snapshotVersion, Products: []catalog.Product{kopi}})
		assert.NoError(t, err)
		assert.NoError(t, storage.Set(c, "wishlist/abc", string(persisted)))

		store := NewStore(storage, "wishlist/abc")
		store.Add(c, chitato)

		value, _, err := storage.Get(c, "wishlist/abc")
		assert.NoError(t, err)
		assert.Equal(t, string(persisted), value)

		store.Hydrate(c)
		products := store.Products()
		assert.Len(t, products, 1)
		assert.Equal(t, "8", products[0].ID)
	})

	t.Run("Malformed snapshot falls back to an empty wishlist", func(t *testing.T) {
		storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
		assert.NoError(t, err)
		assert.NoError(t, storage.Set(c, "wishlist/abc", "{not json"))

		store := NewStore(storage, "wishlist/abc")
		store.Hydrate(c)

		assert.Empty(t, store.Products())
	})

	t.Run("Duplicate ids in a snapshot are dropped", func(t *testing.T) {
		storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
		assert.NoError(t, err)

		bad, err := json.Marshal(snapshot{Version: snapshotVersion, Products: []catalog.Product{chitato, chitato, {}}})
		assert.NoError(t, err)
		assert.NoError(t, storage.Set(c, "wishlist/abc", string(bad)))

		store := NewStore(storage, "wishlist/abc")
		store.Hydrate(c)

		assert.Equal(t, 1, store.Size())
	})
}

func TestWishlistStoreSubscription(t *testing.T) {
	c := context.TODO()

	t.Run("Listeners fire after mutations, not after a duplicate add", func(t *testing.T) {
		_, store, _ := newTestStore(t)

		notifications := 0
		store.Subscribe(func() {
			notifications++
		})

		store.Add(c, chitato)
		assert.Equal(t, 1, notifications)

		store.Add(c, chitato)
		assert.Equal(t, 1, notifications)

		store.Remove(c, "10")
		assert.Equal(t, 2, notifications)
	})

	t.Run("Unsubscribe stops notifications", func(t *testing.T) {
		_, store, _ := newTestStore(t)

		notifications := 0
		unsubscribe := store.Subscribe(func() {
			notifications++
		})

		store.Add(c, chitato)
		unsubscribe()
		store.Add(c, kopi)

		assert.Equal(t, 1, notifications)
	})
}

func TestWishlistContext(t *testing.T) {

	t.Run("FromContext without a store panics", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrNoStore, func() {
			FromContext(context.TODO())
		})
	})

	t.Run("FromContext returns the attached store", func(t *testing.T) {
		_, store, _ := newTestStore(t)

		c := ContextWithStore(context.TODO(), store)
		assert.Same(t, store, FromContext(c))
	})
}
