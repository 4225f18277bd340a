package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/warungberkah/storefront/lib/mykeyvalue"
	"github.com/warungberkah/storefront/services/catalog"
)

var (
	indomie = catalog.Product{
		ID:          "1",
		Name:        "Indomie Goreng",
		Description: "Mie goreng instan rasa original",
		Price:       3500,
		Category:    "Makanan",
		Stock:       100,
	}
	tehBotol = catalog.Product{
		ID:          "2",
		Name:        "Teh Botol Sosro",
		Description: "Teh manis dalam kemasan botol 450ml",
		Price:       5000,
		Category:    "Minuman",
		Stock:       50,
	}
)

func newTestStore(t *testing.T) (context.Context, *Store, mykeyvalue.Store) {
	t.Helper()

	c := context.TODO()
	storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
	assert.NoError(t, err)

	store := NewStore(storage, "cart/test")
	store.Hydrate(c)

	return c, store, storage
}

func TestCartStore(t *testing.T) {

	t.Run("Starts empty", func(t *testing.T) {
		_, store, _ := newTestStore(t)

		assert.Empty(t, store.Items())
		assert.Equal(t, 0, store.TotalItems())
		assert.Equal(t, 0, store.TotalPrice())
	})

	t.Run("Add creates a line with quantity 1", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, indomie)

		items := store.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, "1", items[0].Product.ID)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, 1, store.TotalItems())
		assert.Equal(t, 3500, store.TotalPrice())
	})

	t.Run("Adding the same product increments its line", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, indomie)
		store.Add(c, indomie)

		items := store.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, 2, store.TotalItems())
		assert.Equal(t, 7000, store.TotalPrice())
	})

	t.Run("Different products get separate lines in insertion order", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, indomie)
		store.Add(c, tehBotol)

		items := store.Items()
		assert.Len(t, items, 2)
		assert.Equal(t, "1", items[0].Product.ID)
		assert.Equal(t, "2", items[1].Product.ID)
		assert.Equal(t, 2, store.TotalItems())
		assert.Equal(t, 8500, store.TotalPrice())
	})

	t.Run("Two Indomie plus one Teh Botol", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, indomie)
		store.Add(c, indomie)
		store.Add(c, tehBotol)

		assert.Equal(t, 3, store.TotalItems())
		assert.Equal(t, 12000, store.TotalPrice())
	})

	t.Run("SetQuantity is an absolute set", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, indomie)
		store.SetQuantity(c, "1", 5)

		items := store.Items()
		assert.Equal(t, 5, items[0].Quantity)
		assert.Equal(t, 5, store.TotalItems())
		assert.Equal(t, 5*3500, store.TotalPrice())

		// Independent of the prior quantity
		store.SetQuantity(c, "1", 2)
		assert.Equal(t, 2, store.TotalItems())
		assert.Equal(t, 7000, store.TotalPrice())
	})

	t.Run("SetQuantity to zero removes the line", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, indomie)
		store.SetQuantity(c, "1", 0)

		assert.Empty(t, store.Items())
		assert.Equal(t, 0, store.TotalItems())
	})

	t.Run("SetQuantity to a negative value removes the line", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, indomie)
		store.SetQuantity(c, "1", -1)

		assert.Empty(t, store.Items())
	})

	t.Run("SetQuantity on an unknown product is a no-op", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, indomie)
		store.SetQuantity(c, "unknown", 5)

		assert.Equal(t, 1, store.TotalItems())
		assert.Equal(t, 3500, store.TotalPrice())
	})

	t.Run("Remove deletes the line", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, indomie)
		store.Add(c, tehBotol)
		store.Remove(c, "1")

		items := store.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, "2", items[0].Product.ID)
		assert.Equal(t, 5000, store.TotalPrice())
	})

	t.Run("Remove on an unknown product is a no-op", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, indomie)
		store.Remove(c, "unknown")

		assert.Equal(t, 1, store.TotalItems())
	})

	t.Run("Clear empties everything", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, indomie)
		store.Add(c, tehBotol)
		store.Clear(c)

		assert.Empty(t, store.Items())
		assert.Equal(t, 0, store.TotalItems())
		assert.Equal(t, 0, store.TotalPrice())
	})

	t.Run("Items returns a copy", func(t *testing.T) {
		c, store, _ := newTestStore(t)

		store.Add(c, indomie)

		items := store.Items()
		items[0].Quantity = 99

		assert.Equal(t, 1, store.TotalItems())
	})
}

func TestCartStorePersistence(t *testing.T) {
	c := context.TODO()

	t.Run("State round-trips through storage", func(t *testing.T) {
		storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
		assert.NoError(t, err)

		store := NewStore(storage, "cart/abc")
		store.Hydrate(c)
		store.Add(c, indomie)
		store.Add(c, indomie)
		store.Add(c, tehBotol)

		// A fresh store instance reading the same key, as after a reload
		fresh := NewStore(storage, "cart/abc")
		fresh.Hydrate(c)

		assert.Equal(t, store.Items(), fresh.Items())
		assert.Equal(t, 3, fresh.TotalItems())
		assert.Equal(t, 12000, fresh.TotalPrice())
	})

	t.Run("Cleared cart round-trips as empty", func(t *testing.T) {
		storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
		assert.NoError(t, err)

		store := NewStore(storage, "cart/abc")
		store.Hydrate(c)
		store.Add(c, indomie)
		store.Clear(c)

		// The key is still there, holding an empty collection
		value, found, err := storage.Get(c, "cart/abc")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"version":1,"items":[]}`, value)

		fresh := NewStore(storage, "cart/abc")
		fresh.Hydrate(c)
		assert.Empty(t, fresh.Items())
	})

	t.Run("Mutations before hydration do not clobber the snapshot", func(t *testing.T) {
		storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
		assert.NoError(t, err)

		persisted, err := encodeSnapshot([]Line{{Product: tehBotol, Quantity: 2}})
		assert.NoError(t, err)
		assert.NoError(t, storage.Set(c, "cart/abc", persisted))

		store := NewStore(storage, "cart/abc")
		store.Add(c, indomie) // before Hydrate: memory only, write suppressed

		value, _, err := storage.Get(c, "cart/abc")
		assert.NoError(t, err)
		assert.Equal(t, persisted, value)

		// Hydration replaces the in-memory state with the snapshot
		store.Hydrate(c)
		items := store.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, "2", items[0].Product.ID)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("Malformed snapshot falls back to an empty cart", func(t *testing.T) {
		storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
		assert.NoError(t, err)
		assert.NoError(t, storage.Set(c, "cart/abc", "{not json"))

		store := NewStore(storage, "cart/abc")
		store.Hydrate(c)

		assert.Empty(t, store.Items())
	})

	t.Run("Snapshot with an unknown version is discarded", func(t *testing.T) {
		storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
		assert.NoError(t, err)

		old, err := json.Marshal(snapshot{Version: 99, Items: []Line{{Product: indomie, Quantity: 1}}})
		assert.NoError(t, err)
		assert.NoError(t, storage.Set(c, "cart/abc", string(old)))

		store := NewStore(storage, "cart/abc")
		store.Hydrate(c)

		assert.Empty(t, store.Items())
	})

	t.Run("Storage failures never break the in-memory cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mykeyvalue.NewMockStore(ctrl)
		storage.EXPECT().Get(gomock.Any(), "cart/abc").Return("", false, assert.AnError)
		storage.EXPECT().Set(gomock.Any(), "cart/abc", gomock.Any()).Return(assert.AnError).AnyTimes()

		store := NewStore(storage, "cart/abc")
		store.Hydrate(c)
		store.Add(c, indomie)

		assert.Equal(t, 1, store.TotalItems())
	})

	t.Run("Invalid lines in a snapshot are dropped", func(t *testing.T) {
		storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
		assert.NoError(t, err)

		bad, err := json.Marshal(snapshot{Version: snapshotVersion, Items: []Line{
			{Product: indomie, Quantity: 1},
			{Product: catalog.Product{}, Quantity: 3},  // no product id
			{Product: tehBotol, Quantity: 0},           // dead line
			{Product: indomie, Quantity: 7},            // duplicate key
		}})
		assert.NoError(t, err)
		assert.NoError(t, storage.Set(c, "cart/abc", string(bad)))

		store := NewStore(storage, "cart/abc")
		store.Hydrate(c)

		items := store.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, "1", items[0].Product.ID)
		assert.Equal(t, 1, items[0].Quantity)
	})
}

func TestCartStoreSubscription(t *testing.T) {
	c := context.TODO()

	t.Run("Listeners fire after hydration and after each mutation", func(t *testing.T) {
		storage, _, err := mykeyvalue.NewInMemoryKeyValueStore(c)
		assert.NoError(t, err)

		store := NewStore(storage, "cart/abc")

		notifications := 0
		observedItems := -1
		store.Subscribe(func() {
			notifications++
			observedItems = store.TotalItems()
		})

		store.Hydrate(c)
		assert.Equal(t, 1, notifications)

		store.Add(c, indomie)
		assert.Equal(t, 2, notifications)
		assert.Equal(t, 1, observedItems)

		store.SetQuantity(c, "1", 4)
		assert.Equal(t, 3, notifications)
		assert.Equal(t, 4, observedItems)

		store.Clear(c)
		assert.Equal(t, 4, notifications)
		assert.Equal(t, 0, observedItems)
	})

	t.Run("Unsubscribe stops notifications", func(t *testing.T) {
		_, store, _ := newTestStore(t)
		c := context.TODO()

		notifications := 0
		unsubscribe := store.Subscribe(func() {
			notifications++
		})

		store.Add(c, indomie)
		assert.Equal(t, 1, notifications)

		unsubscribe()
		store.Add(c, indomie)
		assert.Equal(t, 1, notifications)
	})
}

func TestCartContext(t *testing.T) {

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
