package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/warungberkah/storefront/lib/myerrors"
	"github.com/warungberkah/storefront/lib/mylog"
)

func (s *service) listProducts(c context.Context, query ProductQuery) ([]Product, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch products (category:%q, search:%q, sort:%q)", query.Category, query.Search, query.Sort)

	products, err := s.productStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if query.Category != "" && query.Category != AllCategories && p.Category != query.Category {
			continue
		}
		if query.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(query.Search)) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, query.Sort)

	return filtered, nil
}

func (s *service) getProduct(c context.Context, productID string) (Product, error) {
	s.logger.Log(c, productID, mylog.SeverityInfo, "Fetch product with id %s", productID)

	product, found, err := s.productStore.Get(c, productID)
	if err != nil {
		return Product{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Product{}, myerrors.NewNotFoundError(fmt.Errorf("product with id %s not found", productID))
	}

	return product, nil
}

func (s *service) listCategories(c context.Context) ([]string, error) {
	products, err := s.productStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	seen := map[string]bool{}
	categories := []string{}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)

	return append([]string{AllCategories}, categories...), nil
}

// sortProducts orders by name unless the caller asked for something else,
// so that listings are stable regardless of store iteration order.
func sortProducts(products []Product, sortKey string) {
	switch sortKey {
	case SortPriceAsc:
		sort.Slice(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.Slice(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortNameDesc:
		sort.Slice(products, func(i, j int) bool { return products[i].Name > products[j].Name })
	default:
		sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	}
}
