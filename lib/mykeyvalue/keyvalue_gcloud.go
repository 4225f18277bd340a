package mykeyvalue

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/datastore"
)

const kind = "KeyValue"

type keyValueEntity struct {
	Value string `datastore:",noindex"`
}

type gcloudKeyValueStore struct {
	client *datastore.Client
}

func newGcloudKeyValueStore(c context.Context) (Store, func(), error) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	client, err := datastore.NewClient(c, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating datastore-client: %s", err)
	}

	return &gcloudKeyValueStore{
			client: client,
		}, func() {
			client.Close()
		}, nil
}

func (s *gcloudKeyValueStore) Get(c context.Context, key string) (string, bool, error) {
	entity := keyValueEntity{}

	err := s.client.Get(c, datastore.NameKey(kind, key, nil), &entity)
	if err != nil {
		if err == datastore.ErrNoSuchEntity {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error fetching %s with key %s: %s", kind, key, err)
	}

	return entity.Value, true, nil
}

func (s *gcloudKeyValueStore) Set(c context.Context, key string, value string) error {
	_, err := s.client.Put(c, datastore.NameKey(kind, key, nil), &keyValueEntity{Value: value})
	if err != nil {
		return fmt.Errorf("error storing %s with key %s: %s", kind, key, err)
	}

	return nil
}
