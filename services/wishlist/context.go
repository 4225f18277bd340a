package wishlist

import "context"

type ctxStoreKey struct{}

// ErrNoStore is the panic message raised when the wishlist surface is used
// without an enclosing store.
const ErrNoStore = "wishlist store used outside an active wishlist context"

func ContextWithStore(c context.Context, store *Store) context.Context {
	return context.WithValue(c, ctxStoreKey{}, store)
}

// FromContext returns the session's wishlist store. It panics when the
// context does not carry one.
func FromContext(c context.Context) *Store {
	store, ok := c.Value(ctxStoreKey{}).(*Store)
	if !ok || store == nil {
		panic(ErrNoStore)
	}

	return store
}
