package shopinfo

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/warungberkah/storefront/lib/mycontext"
	"github.com/warungberkah/storefront/lib/myhttp"
	"github.com/warungberkah/storefront/lib/mylog"
)

type StoreInfo struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	WhatsApp    string `json:"whatsapp"`
	Email       string `json:"email"`
	OpenHours   string `json:"openHours"`
	Description string `json:"description"`
}

// Current returns the identity of the warung. The WhatsApp number is the
// recipient of checkout handoffs.
func Current() StoreInfo {
	return StoreInfo{
		Name:        "Warung Madura Berkah",
		Address:     "Jl. Kebon Jeruk No. 123, Jakarta Barat",
		Phone:       "021-12345678",
		WhatsApp:    "6281234567890",
		Email:       "warungmaduraberkah@gmail.com",
		OpenHours:   "Buka 24 Jam",
		Description: "Warung Madura Berkah menyediakan berbagai kebutuhan sehari-hari dengan harga terjangkau. Buka 24 jam untuk melayani Anda kapan saja.",
	}
}

type storeInfoResponse struct {
	Success bool      `json:"success"`
	Data    StoreInfo `json:"data"`
}

type webService struct {
	logger mylog.Logger
}

func NewService() *webService {
	return &webService{
		logger: mylog.New("shopinfo"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/store", s.getStoreInfoPage()).Methods("GET")

	return nil
}

func (s *webService) getStoreInfoPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		myhttp.NewWriter(s.logger).Write(c, w, http.StatusOK, storeInfoResponse{
			Success: true,
			Data:    Current(),
		})
	}
}
