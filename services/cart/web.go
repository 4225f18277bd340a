package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/warungberkah/storefront/lib/mycontext"
	"github.com/warungberkah/storefront/lib/myerrors"
	"github.com/warungberkah/storefront/lib/myhttp"
	"github.com/warungberkah/storefront/lib/mykeyvalue"
	"github.com/warungberkah/storefront/lib/mylog"
	"github.com/warungberkah/storefront/lib/mysession"
	"github.com/warungberkah/storefront/lib/myuuid"
	"github.com/warungberkah/storefront/services/catalog"
)

// ProductGetter is the part of the catalog the cart needs: price and
// identity lookup at the moment a line is created.
type ProductGetter interface {
	GetProduct(c context.Context, productID string) (catalog.Product, error)
}

type webService struct {
	storage mykeyvalue.Store
	catalog ProductGetter
	uuider  myuuid.UUIDer
	logger  mylog.Logger

	mutex  sync.Mutex
	stores map[string]*Store
}

func NewService(storage mykeyvalue.Store, productGetter ProductGetter, uuider myuuid.UUIDer) *webService {
	return &webService{
		storage: storage,
		catalog: productGetter,
		uuider:  uuider,
		logger:  mylog.New("cart"),
		stores:  map[string]*Store{},
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/cart", s.getCartPage()).Methods("GET")
	router.HandleFunc("/api/cart", s.clearCartPage()).Methods("DELETE")
	router.HandleFunc("/api/cart/items", s.addItemPage()).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", s.updateQuantityPage()).Methods("PUT")
	router.HandleFunc("/api/cart/items/{id}", s.removeItemPage()).Methods("DELETE")

	return nil
}

// ContextForRequest resolves the caller's session, lazily creates and
// hydrates that session's store, and returns a context carrying it. The
// store hydrates on first touch, so the very first request of a session may
// briefly observe an empty cart before the snapshot is applied.
func (s *webService) ContextForRequest(w http.ResponseWriter, r *http.Request) context.Context {
	c := mycontext.ContextFromHTTPRequest(r)
	sessionUID := mysession.UID(w, r, s.uuider)

	s.mutex.Lock()
	store, found := s.stores[sessionUID]
	if !found {
		store = NewStore(s.storage, "cart/"+sessionUID)
		s.stores[sessionUID] = store
	}
	s.mutex.Unlock()

	store.Hydrate(c)

	return ContextWithStore(c, store)
}

func (s *webService) getCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := s.ContextForRequest(w, r)

		writeCart(c, w, s.logger)
	}
}

func (s *webService) addItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := s.ContextForRequest(w, r)
		responseWriter := myhttp.NewWriter(s.logger)

		request := addItemRequest{}
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}
		if request.ProductID == "" {
			responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("missing productId"))
			return
		}

		product, err := s.catalog.GetProduct(c, request.ProductID)
		if err != nil {
			responseWriter.WriteError(c, w, 3, err)
			return
		}

		FromContext(c).Add(c, product)

		writeCart(c, w, s.logger)
	}
}

func (s *webService) updateQuantityPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := s.ContextForRequest(w, r)
		responseWriter := myhttp.NewWriter(s.logger)

		productID := mux.Vars(r)["id"]

		request := updateQuantityRequest{}
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing body: %s", err)))
			return
		}

		FromContext(c).SetQuantity(c, productID, request.Quantity)

		writeCart(c, w, s.logger)
	}
}

func (s *webService) removeItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := s.ContextForRequest(w, r)

		productID := mux.Vars(r)["id"]

		FromContext(c).Remove(c, productID)

		writeCart(c, w, s.logger)
	}
}

func (s *webService) clearCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := s.ContextForRequest(w, r)

		FromContext(c).Clear(c)

		writeCart(c, w, s.logger)
	}
}

func writeCart(c context.Context, w http.ResponseWriter, logger mylog.Logger) {
	store := FromContext(c)

	myhttp.NewWriter(logger).Write(c, w, http.StatusOK, cartResponse{
		Success:    true,
		Items:      store.Items(),
		TotalItems: store.TotalItems(),
		TotalPrice: store.TotalPrice(),
	})
}
