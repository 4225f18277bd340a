package cart

import "github.com/warungberkah/storefront/services/catalog"

// Line pairs a product with a quantity. A line only exists while its
// quantity is at least 1.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

func (l Line) Subtotal() int {
	return l.Product.Price * l.Quantity
}

type cartResponse struct {
	Success    bool   `json:"success"`
	Items      []Line `json:"items"`
	TotalItems int    `json:"totalItems"`
	TotalPrice int    `json:"totalPrice"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
