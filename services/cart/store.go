package cart

import (
	"context"
	"sync"

	"github.com/warungberkah/storefront/lib/mykeyvalue"
	"github.com/warungberkah/storefront/lib/mylog"
	"github.com/warungberkah/storefront/services/catalog"
)

// Store owns the cart state for one shopping session: an ordered collection
// of lines, at most one per product id. Every mutation is written through to
// the key-value storage under the store's key, and registered listeners are
// notified synchronously afterwards.
//
// Aggregates (TotalItems, TotalPrice) are recomputed from the lines on every
// read; they are never cached.
type Store struct {
	mutex      sync.Mutex
	lines      []Line
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
		logger:    mylog.New("cart"),
		listeners: map[int]func(){},
	}
}

// Hydrate restores a previously persisted snapshot. It runs once; until it
// has run, mutations update memory but skip the write-through so that an
// early write cannot clobber the not-yet-loaded snapshot. A missing or
// malformed snapshot leaves the store empty, it is never an error.
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
		if lines, ok := decodeSnapshot(value); ok {
			s.lines = lines
		} else {
			s.logger.Log(c, s.key, mylog.SeverityWarn, "Discarding malformed snapshot %s", s.key)
		}
	}

	s.mutex.Unlock()
	s.notify()
}

// Add increments the quantity of the product's line, or appends a new line
// with quantity 1. There is deliberately no stock check.
func (s *Store) Add(c context.Context, product catalog.Product) {
	s.mutex.Lock()

	exists := false
	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity++
			exists = true
			break
		}
	}
	if !exists {
		s.lines = append(s.lines, Line{Product: product, Quantity: 1})
	}

	s.persistLocked(c)
	s.mutex.Unlock()
	s.notify()
}

// Remove deletes the line for the given product id. An absent id is a no-op:
// it is reachable through ordinary double-clicks and must not disrupt anyone.
func (s *Store) Remove(c context.Context, productID string) {
	s.mutex.Lock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}

	s.persistLocked(c)
	s.mutex.Unlock()
	s.notify()
}

// SetQuantity sets the line's quantity to exactly quantity. A quantity of
// zero or less removes the line instead. An unknown product id is a no-op.
func (s *Store) SetQuantity(c context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(c, productID)
		return
	}

	s.mutex.Lock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			break
		}
	}

	s.persistLocked(c)
	s.mutex.Unlock()
	s.notify()
}

// Clear empties the cart. The persisted key is kept: a cleared cart
// round-trips through storage as an empty collection.
func (s *Store) Clear(c context.Context) {
	s.mutex.Lock()

	s.lines = []Line{}

	s.persistLocked(c)
	s.mutex.Unlock()
	s.notify()
}

// Items returns the lines in insertion order. The slice is a copy, callers
// must not be able to mutate the store through it.
func (s *Store) Items() []Line {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	items := make([]Line, len(s.lines))
	copy(items, s.lines)

	return items
}

func (s *Store) TotalItems() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}

	return total
}

func (s *Store) TotalPrice() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Product.Price * line.Quantity
	}

	return total
}

// Subscribe registers a listener that is invoked synchronously after every
// successful mutation and after hydration. The returned function removes
// the listener again.
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

	value, err := encodeSnapshot(s.lines)
	if err != nil {
		s.logger.Log(c, s.key, mylog.SeverityError, "Error encoding snapshot %s: %s", s.key, err)
		return
	}

	err = s.storage.Set(c, s.key, value)
	if err != nil {
		s.logger.Log(c, s.key, mylog.SeverityError, "Error writing snapshot %s: %s", s.key, err)
	}
}

// notify must be called without the mutex held: listeners typically read
// back from the store.
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
