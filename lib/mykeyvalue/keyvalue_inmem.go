package mykeyvalue

import (
	"context"
	"sync"
)

type InMemoryKeyValueStore struct {
	sync.Mutex
	values map[string]string
}

func NewInMemoryKeyValueStore(c context.Context) (*InMemoryKeyValueStore, func(), error) {
	return &InMemoryKeyValueStore{
		values: make(map[string]string),
	}, func() {}, nil
}

func (s *InMemoryKeyValueStore) Get(c context.Context, key string) (string, bool, error) {
	s.Lock()
	defer s.Unlock()

	value, exists := s.values[key]

	return value, exists, nil
}

func (s *InMemoryKeyValueStore) Set(c context.Context, key string, value string) error {
	s.Lock()
	defer s.Unlock()

	s.values[key] = value

	return nil
}
