package wishlist

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/warungberkah/storefront/lib/mykeyvalue"
	"github.com/warungberkah/storefront/lib/mylog"
	"github.com/warungberkah/storefront/services/catalog"
)

const snapshotVersion = 1

type snapshot struct {
	Version  int               `json:"version"`
	Products []catalog.Product `json:"products"`
}

// Store owns the wishlist for one shopping session: a set of products keyed
// by id, in insertion order. It follows the same hydrate-then-persist
// discipline as the cart store, minus quantities.
type Store struct {
	mutex      sync.Mutex
	products   []catalog.Product
	hydrated   bool
	storage    mykeyvalue.Store
	key        string
	logger     mylog.Logger
	listeners  map[int]func()
	listenerID int
}

func NewStore(storage mykeyvalue.Store, key string) *Store {
	return &Store{
		storage:   storage,
		key:       key,
		logger:    mylog.New("wishlist"),
		listeners: map[int]func(){},
	}
}

// Hydrate restores a previously persisted snapshot, once. A missing or
// malformed snapshot leaves the wishlist empty.
func (s *Store) Hydrate(c context.Context) {
	s.mutex.Lock()

	if s.hydrated {
		s.mutex.Unlock()
		return
	}
	s.hydrated = true

	value, found, err := s.storage.Get(c, s.key)
	if err != nil {
		s.logger.Log(c, s.key, mylog.SeverityWarn, "Error reading snapshot %s, starting empty: %s", s.key, err)
	} else if found {
		if products, ok := decodeSnapshot(value); ok {
			s.products = products
		} else {
			s.logger.Log(c, s.key, mylog.SeverityWarn, "Discarding malformed snapshot %s", s.key)
		}
	}

	s.mutex.Unlock()
	s.notify()
}

// Add appends the product unless it is already present; a duplicate add is
// ignored rather than an error.
func (s *Store) Add(c context.Context, product catalog.Product) {
	s.mutex.Lock()

	for _, p := range s.products {
		if p.ID == product.ID {
			s.mutex.Unlock()
			return
		}
	}
	s.products = append(s.products, product)

	s.persistLocked(c)
	s.mutex.Unlock()
	s.notify()
}

// Remove deletes the product with the given id; an absent id is a no-op.
func (s *Store) Remove(c context.Context, productID string) {
	s.mutex.Lock()

	for i, p := range s.products {
		if p.ID == productID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}

	s.persistLocked(c)
	s.mutex.Unlock()
	s.notify()
}

func (s *Store) Contains(productID string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, p := range s.products {
		if p.ID == productID {
			return true
		}
	}

	return false
}

func (s *Store) Size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.products)
}

// Products returns the wishlist in insertion order, as a copy.
func (s *Store) Products() []catalog.Product {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	products := make([]catalog.Product, len(s.products))
	copy(products, s.products)

	return products
}

// Subscribe registers a listener invoked synchronously after every mutation
// and after hydration. The returned function removes the listener.
func (s *Store) Subscribe(listener func()) func() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := s.listenerID
	s.listenerID++
	s.listeners[id] = listener

	return func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		delete(s.listeners, id)
	}
}

func (s *Store) persistLocked(c context.Context) {
	if !s.hydrated {
		return
	}

	data, err := json.Marshal(snapshot{
		Version:  snapshotVersion,
		Products: s.products,
	})
	if err != nil {
		s.logger.Log(c, s.key, mylog.SeverityError, "Error encoding snapshot %s: %s", s.key, err)
		return
	}

	err = s.storage.Set(c, s.key, string(data))
	if err != nil {
		s.logger.Log(c, s.key, mylog.SeverityError, "Error writing snapshot %s: %s", s.key, err)
	}
}

func (s *Store) notify() {
	s.mutex.Lock()
	listeners := make([]func(), 0, len(s.listeners))
	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	s.mutex.Unlock()

	for _, listener := range listeners {
		listener()
	}
}

func decodeSnapshot(value string) ([]catalog.Product, bool) {
	snap := snapshot{}
	err := json.Unmarshal([]byte(value), &snap)
	if err != nil {
		return nil, false
	}
	if snap.Version != snapshotVersion {
		return nil, false
	}

	products := make([]catalog.Product, 0, len(snap.Products))
	seen := map[string]bool{}
	for _, p := range snap.Products {
		if p.ID == "" || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		products = append(products, p)
	}

	return products, true
}
