// Package workflow orchestrates the storefront's customer- and seller-facing
// operations against the remote API: cart and wishlist mutation, checkout,
// order history, the product catalog, and the seller dashboard.
//
// Every operation takes a context so an invocation dies with the view that
// started it; dependent steps run strictly sequentially, independent reads
// are issued concurrently. After a successful mutation the affected list is
// always re-fetched from the server rather than edited locally.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/diyasingla2299/storefront/internal/api"
)

var (
	ErrNotLoggedIn = errors.New("user not found, please login again")
	ErrNotBuyer    = errors.New("only buyers have a cart")
	ErrNotSeller   = errors.New("only sellers can access the seller dashboard")
)

// ensureCart resolves the user's cart id, lazily creating the cart when the
// backend reports none. Only a 404 means "no cart"; any other failure is
// surfaced rather than triggering a create.
func ensureCart(ctx context.Context, client *api.Client, userID int64) (int64, error) {
	payload, err := client.Get(ctx, fmt.Sprintf("/api/carts/user/%d", userID), nil)
	if err != nil {
		var apiErr *api.Error
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
			return 0, fmt.Errorf("get cart: %w", err)
		}
	} else if id := api.CartID(payload); id != 0 {
		return id, nil
	}

	payload, err = client.Post(ctx, fmt.Sprintf("/api/carts/%d", userID), nil, nil)
	if err != nil {
		return 0, fmt.Errorf("create cart: %w", err)
	}
	if id := api.CartID(payload); id != 0 {
		return id, nil
	}

	// Some backend versions return an empty body on create; read it back.
	payload, err = client.Get(ctx, fmt.Sprintf("/api/carts/user/%d", userID), nil)
	if err != nil {
		return 0, fmt.Errorf("get created cart: %w", err)
	}
	if id := api.CartID(payload); id != 0 {
		return id, nil
	}
	return 0, errors.New("cart id not available from server")
}

// ensureWishlist resolves the user's wishlist id, creating the wishlist on
// demand. The wishlist endpoints key off the bearer token, not the user id.
func ensureWishlist(ctx context.Context, client *api.Client) (int64, error) {
	payload, err := client.Get(ctx, "/api/wishlist/exists", nil)
	if err != nil {
		return 0, fmt.Errorf("check wishlist existence: %w", err)
	}
	exists, ok := api.Exists(payload)
	if !ok {
		return 0, errors.New("check wishlist existence: unexpected response shape")
	}

	if exists {
		payload, err = client.Get(ctx, "/api/wishlist/my", nil)
		if err != nil {
			return 0, fmt.Errorf("get wishlist: %w", err)
		}
	} else {
		payload, err = client.Post(ctx, "/api/wishlist", nil, map[string]any{})
		if err != nil {
			return 0, fmt.Errorf("create wishlist: %w", err)
		}
	}

	if id := api.WishlistID(payload); id != 0 {
		return id, nil
	}
	return 0, errors.New("wishlist id not available from server")
}

func addCartItem(ctx context.Context, client *api.Client, cartID, productID int64, quantity int) (string, error) {
	payload, err := client.Post(ctx, "/api/cart-items", nil, map[string]any{
		"cartId":    cartID,
		"productId": productID,
		"quantity":  quantity,
	})
	if err != nil {
		return "", fmt.Errorf("add cart item: %w", err)
	}
	return api.CartItemID(payload), nil
}

func addWishlistItem(ctx context.Context, client *api.Client, wishlistID, productID int64) (string, error) {
	payload, err := client.Post(ctx, "/api/wishlist-items", nil, map[string]any{
		"wishlistId": wishlistID,
		"productId":  productID,
	})
	if err != nil {
		return "", fmt.Errorf("add wishlist item: %w", err)
	}
	return api.WishlistItemID(payload), nil
}
