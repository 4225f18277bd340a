package catalog

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/warungberkah/storefront/lib/mycontext"
	"github.com/warungberkah/storefront/lib/myhttp"
	"github.com/warungberkah/storefront/lib/mylog"
	"github.com/warungberkah/storefront/lib/mystore"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

func NewService(store mystore.Store[Product]) *webService {
	logger := mylog.New("catalog")
	return &webService{
		service: newService(store, logger),
		logger:  logger,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/products", s.listProductsPage()).Methods("GET")
	router.HandleFunc("/api/products/{id}", s.getProductPage()).Methods("GET")
	router.HandleFunc("/api/categories", s.listCategoriesPage()).Methods("GET")

	return s.service.seed(c)
}

// GetProduct is the lookup surface used by the cart and wishlist services.
func (s *webService) GetProduct(c context.Context, productID string) (Product, error) {
	return s.service.getProduct(c, productID)
}

func (s *webService) listProductsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		query := ProductQuery{
			Category: r.URL.Query().Get("category"),
			Search:   r.URL.Query().Get("search"),
			Sort:     r.URL.Query().Get("sort"),
		}

		products, err := s.service.listProducts(c, query)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, productListResponse{
			Success: true,
			Data:    products,
			Total:   len(products),
		})
	}
}

func (s *webService) getProductPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productID := mux.Vars(r)["id"]

		product, err := s.service.getProduct(c, productID)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, productResponse{
			Success: true,
			Data:    product,
		})
	}
}

func (s *webService) listCategoriesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		categories, err := s.service.listCategories(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, categoryListResponse{
			Success: true,
			Data:    categories,
		})
	}
}
