package wishlist

import (
	"context"
	"encoding/json"
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

type ProductGetter interface {
	GetProduct(c context.Context, productID string) (catalog.Product, error)
}

type wishlistResponse struct {
	Success  bool              `json:"success"`
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
}

type addProductRequest struct {
	ProductID string `json:"productId"`
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
		logger:  mylog.New("wishlist"),
		stores:  map[string]*Store{},
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/wishlist", s.getWishlistPage()).Methods("GET")
	router.HandleFunc("/api/wishlist", s.addProductPage()).Methods("POST")
	router.HandleFunc("/api/wishlist/{id}", s.removeProductPage()).Methods("DELETE")

	return nil
}

func (s *webService) contextForRequest(w http.ResponseWriter, r *http.Request) context.Context {
	c := mycontext.ContextFromHTTPRequest(r)
	sessionUID := mysession.UID(w, r, s.uuider)

	s.mutex.Lock()
	store, found := s.stores[sessionUID]
	if !found {
		store = NewStore(s.storage, "wishlist/"+sessionUID)
		s.stores[sessionUID] = store
	}
	s.mutex.Unlock()

	store.Hydrate(c)

	return ContextWithStore(c, store)
}

func (s *webService) getWishlistPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := s.contextForRequest(w, r)

		s.writeWishlist(c, w)
	}
}

func (s *webService) addProductPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := s.contextForRequest(w, r)
		responseWriter := myhttp.NewWriter(s.logger)

		request := addProductRequest{}
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

		s.writeWishlist(c, w)
	}
}

func (s *webService) removeProductPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := s.contextForRequest(w, r)

		FromContext(c).Remove(c, mux.Vars(r)["id"])

		s.writeWishlist(c, w)
	}
}

func (s *webService) writeWishlist(c context.Context, w http.ResponseWriter) {
	store := FromContext(c)

	myhttp.NewWriter(s.logger).Write(c, w, http.StatusOK, wishlistResponse{
		Success:  true,
		Products: store.Products(),
		Total:    store.Size(),
	})
}
