package catalog

import (
	"context"

	"github.com/warungberkah/storefront/lib/mylog"
	"github.com/warungberkah/storefront/lib/mystore"
)

type service struct {
	productStore mystore.Store[Product]
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(store mystore.Store[Product], logger mylog.Logger) *service {
	return &service{
		productStore: store,
		logger:       logger,
	}
}

func (s *service) seed(c context.Context) error {
	for _, p := range seedProducts {
		err := s.productStore.Put(c, p.ID, p)
		if err != nil {
			return err
		}
	}
	return nil
}
