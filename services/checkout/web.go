package checkout

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/warungberkah/storefront/lib/mycontext"
	"github.com/warungberkah/storefront/lib/myerrors"
	"github.com/warungberkah/storefront/lib/myevents"
	"github.com/warungberkah/storefront/lib/myhttp"
	"github.com/warungberkah/storefront/lib/mylog"
	"github.com/warungberkah/storefront/lib/mypublisher"
	"github.com/warungberkah/storefront/lib/mypubsub"
	"github.com/warungberkah/storefront/lib/myuuid"
	"github.com/warungberkah/storefront/services/cart"
	"github.com/warungberkah/storefront/services/checkout/checkoutevents"
	"github.com/warungberkah/storefront/services/shopinfo"
)

// CartAccess resolves the caller's session-scoped cart store; the checkout
// reads and clears the same cart the shopper has been filling.
type CartAccess interface {
	ContextForRequest(w http.ResponseWriter, r *http.Request) context.Context
}

type webService struct {
	carts      CartAccess
	publisher  mypublisher.Publisher
	subscriber mypubsub.PubSub
	uuider     myuuid.UUIDer
	logger     mylog.Logger
}

func NewService(carts CartAccess, publisher mypublisher.Publisher, subscriber mypubsub.PubSub, uuider myuuid.UUIDer) *webService {
	return &webService{
		carts:      carts,
		publisher:  publisher,
		subscriber: subscriber,
		uuider:     uuider,
		logger:     mylog.New("checkout"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/checkout", s.checkoutPage()).Methods("POST")
	router.HandleFunc("/api/checkout/events", s.eventPage()).Methods("POST")

	err := s.publisher.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return err
	}

	return s.subscriber.Subscribe(c, checkoutevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/checkout/events")
}

// eventPage receives the push subscription on the checkout topic. Orders
// are not persisted anywhere, the handoff is followed for bookkeeping only.
func (s *webService) eventPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		envelope, err := myevents.ParseEventEnvelope(r.Body)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		if envelope.EventTypeName == checkoutevents.OrderPlacedName {
			event := checkoutevents.OrderPlaced{}
			err = json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(err))
				return
			}

			s.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Order %s placed by %s: %d items, total %d, payment %s",
				event.OrderUID, event.CustomerName, event.TotalItems, event.TotalPrice, event.PaymentMethod)
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed event",
		})
	}
}

func (s *webService) checkoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := s.carts.ContextForRequest(w, r)
		responseWriter := myhttp.NewWriter(s.logger)

		order, err := NewOrderFromRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		err = order.Validate()
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		store := cart.FromContext(c)

		lines := store.Items()
		if len(lines) == 0 {
			responseWriter.WriteError(c, w, 3, myerrors.NewInvalidInputErrorf("cart is empty"))
			return
		}

		orderUID := s.uuider.Create()
		totalItems := store.TotalItems()
		totalPrice := store.TotalPrice()
		shop := shopinfo.Current()

		s.logger.Log(c, orderUID, mylog.SeverityInfo, "Handing off order %s (%d items, total %d) to WhatsApp", orderUID, totalItems, totalPrice)

		message := BuildMessage(order, lines, totalPrice, shop.Name)
		whatsAppURL := WhatsAppURL(shop.WhatsApp, message)

		err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.OrderPlaced{
			OrderUID:      orderUID,
			CustomerName:  order.Name,
			CustomerPhone: order.Phone,
			PaymentMethod: order.PaymentMethod,
			TotalItems:    totalItems,
			TotalPrice:    totalPrice,
		})
		if err != nil {
			responseWriter.WriteError(c, w, 4, myerrors.NewInternalError(err))
			return
		}

		// The order now lives in the WhatsApp conversation, the cart is done
		store.Clear(c)

		responseWriter.Write(c, w, http.StatusOK, checkoutResponse{
			Success:     true,
			OrderUID:    orderUID,
			WhatsAppURL: whatsAppURL,
		})
	}
}
