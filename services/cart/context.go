package cart

import "context"

type ctxStoreKey struct{}

// ErrNoStore is the panic message raised when the cart surface is used
// without an enclosing store. That situation is a wiring defect, not a
// runtime data problem, so it fails loudly instead of degrading silently.
const ErrNoStore = "cart store used outside an active cart context"

func ContextWithStore(c context.Context, store *Store) context.Context {
	return context.WithValue(c, ctxStoreKey{}, store)
}

// FromContext returns the session's cart store. It panics when the context
// does not carry one.
func FromContext(c context.Context) *Store {
	store, ok := c.Value(ctxStoreKey{}).(*Store)
	if !ok || store == nil {
		panic(ErrNoStore)
	}

	return store
}
