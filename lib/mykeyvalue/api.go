package mykeyvalue

import (
	"context"
	"os"
)

// Store is simple string key-value storage that survives process restarts.
// It backs the cart and wishlist snapshots.
//
//go:generate mockgen -source=api.go -package mykeyvalue -destination keyvalue_mock.go Store
type Store interface {
	Get(c context.Context, key string) (string, bool, error)
	Set(c context.Context, key string, value string) error
}

// New returns a datastore-backed store when running on Google Cloud and a
// file-backed store otherwise.
func New(c context.Context) (Store, func(), error) {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		return newGcloudKeyValueStore(c)
	}

	return NewFileKeyValueStore(c)
}
