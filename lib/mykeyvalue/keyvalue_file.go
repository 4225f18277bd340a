package mykeyvalue

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const storageFilename = "keyvalue.json"

// fileKeyValueStore keeps all key-value pairs in a single JSON document on
// local disk so they survive a process restart.
type fileKeyValueStore struct {
	sync.Mutex
	path string
}

func NewFileKeyValueStore(c context.Context) (Store, func(), error) {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "."
	}

	return &fileKeyValueStore{
		path: filepath.Join(dir, storageFilename),
	}, func() {}, nil
}

func (s *fileKeyValueStore) Get(c context.Context, key string) (string, bool, error) {
	s.Lock()
	defer s.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}

	value, exists := values[key]

	return value, exists, nil
}

func (s *fileKeyValueStore) Set(c context.Context, key string, value string) error {
	s.Lock()
	defer s.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}

	values[key] = value

	return s.save(values)
}

func (s *fileKeyValueStore) load() (map[string]string, error) {
	values := map[string]string{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, fmt.Errorf("error reading %s: %s", s.path, err)
	}

	err = json.Unmarshal(data, &values)
	if err != nil {
		// A corrupt storage file is treated as empty storage
		return map[string]string{}, nil
	}

	return values, nil
}

func (s *fileKeyValueStore) save(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("error marshalling key-values: %s", err)
	}

	err = os.WriteFile(s.path, data, 0o644)
	if err != nil {
		return fmt.Errorf("error writing %s: %s", s.path, err)
	}

	return nil
}
