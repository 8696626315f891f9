package workflow

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/diyasingla2299/storefront/internal/api"
	"github.com/diyasingla2299/storefront/internal/model"
)

// Catalog serves the product detail and search suggestion screens. Products
// are read-only here; only the seller workflow mutates them.
type Catalog struct {
	api     *api.Client
	session *model.Session
}

func NewCatalog(client *api.Client, session *model.Session) *Catalog {
	return &Catalog{api: client, session: session}
}

func (c *Catalog) Detail(ctx context.Context, productID int64) (model.Product, error) {
	payload, err := c.api.Get(ctx, fmt.Sprintf("/api/products/%d", productID), nil)
	if err != nil {
		return model.Product{}, fmt.Errorf("load product details: %w", err)
	}
	return api.Product(payload), nil
}

// Suggest returns search-dropdown suggestions for a query. A blank query
// short-circuits to no results without a request.
func (c *Catalog) Suggest(ctx context.Context, query string) ([]model.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	payload, err := c.api.Get(ctx, "/api/products/search", url.Values{"query": {query}})
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return api.Products(payload), nil
}

// AddToCart puts the product in the user's cart at the chosen quantity,
// creating the cart first when there is none.
func (c *Catalog) AddToCart(ctx context.Context, product model.Product, quantity int) error {
	if !c.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	cartID, err := ensureCart(ctx, c.api, c.session.UserID)
	if err != nil {
		return err
	}
	_, err = addCartItem(ctx, c.api, cartID, product.ID, quantity)
	return err
}
