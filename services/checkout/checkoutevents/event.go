package checkoutevents

const (
	TopicName       = "checkout"
	OrderPlacedName = TopicName + ".orderplaced"
)

// OrderPlaced is published when a shopper hands an order off to WhatsApp.
// There is no order system behind it; the event exists so downstream
// consumers (bookkeeping, analytics) can follow along.
type OrderPlaced struct {
	OrderUID      string
	CustomerName  string
	CustomerPhone string
	PaymentMethod string
	TotalItems    int
	TotalPrice    int
}

func (e OrderPlaced) GetEventTypeName() string {
	return OrderPlacedName
}

func (e OrderPlaced) GetAggregateName() string {
	return e.OrderUID
}
