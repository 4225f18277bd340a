package catalog

// Product is the read-only reference data the rest of the shop works with.
// The cart only copies identity and price at the moment a line is created.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
}

// AllCategories is the pseudo-category that matches every product.
const AllCategories = "Semua"

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

type ProductQuery struct {
	Category string
	Search   string
	Sort     string
}

type productListResponse struct {
	Success bool      `json:"success"`
	Data    []Product `json:"data"`
	Total   int       `json:"total"`
}

type productResponse struct {
	Success bool    `json:"success"`
	Data    Product `json:"data"`
}

type categoryListResponse struct {
	Success bool     `json:"success"`
	Data    []string `json:"data"`
}
