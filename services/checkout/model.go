package checkout

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	formcodec "github.com/go-playground/form/v4"

	"github.com/warungberkah/storefront/lib/myerrors"
)

const (
	PaymentMethodCOD      = "cod"
	PaymentMethodTransfer = "transfer"
)

// Order is the checkout form as the shopper submits it.
type Order struct {
	Name          string `form:"name"`
	Phone         string `form:"phone"`
	Address       string `form:"address"`
	Notes         string `form:"notes"`
	PaymentMethod string `form:"payment"`
}

func NewOrderFromRequest(r *http.Request) (Order, error) {
	err := r.ParseForm()
	if err != nil {
		return Order{}, myerrors.NewInvalidInputError(err)
	}
	return NewOrderFromValues(r.Form)
}

func NewOrderFromValues(values url.Values) (Order, error) {
	order := Order{}
	err := formcodec.NewDecoder().Decode(&order, values)
	if err != nil {
		return order, myerrors.NewInvalidInputErrorf("error decoding form: %s", err)
	}

	if order.PaymentMethod == "" {
		order.PaymentMethod = PaymentMethodCOD
	}

	return order, nil
}

var nonDigits = regexp.MustCompile(`\D`)
var phonePattern = regexp.MustCompile(`^[0-9]{10,13}$`)

// Validate applies the same rules the storefront form does: name and
// address are required, the phone number must be 10 to 13 digits.
func (o Order) Validate() error {
	problems := []string{}

	if strings.TrimSpace(o.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(o.Phone) == "" {
		problems = append(problems, "phone is required")
	} else if !phonePattern.MatchString(nonDigits.ReplaceAllString(o.Phone, "")) {
		problems = append(problems, "phone is invalid")
	}
	if strings.TrimSpace(o.Address) == "" {
		problems = append(problems, "address is required")
	}
	if o.PaymentMethod != PaymentMethodCOD && o.PaymentMethod != PaymentMethodTransfer {
		problems = append(problems, "payment method is invalid")
	}

	if len(problems) > 0 {
		return myerrors.NewInvalidInputErrorf("invalid order: %s", strings.Join(problems, ", "))
	}

	return nil
}

func (o Order) PaymentMethodDescription() string {
	if o.PaymentMethod == PaymentMethodTransfer {
		return "Transfer Bank"
	}
	return "Bayar di Tempat (COD)"
}

type checkoutResponse struct {
	Success     bool   `json:"success"`
	OrderUID    string `json:"orderUid"`
	WhatsAppURL string `json:"whatsappUrl"`
}
