package workflow

import (
	"context"
	"fmt"

	"github.com/diyasingla2299/storefront/internal/api"
	"github.com/diyasingla2299/storefront/internal/model"
	"github.com/diyasingla2299/storefront/internal/saga"
)

type Cart struct {
	api     *api.Client
	session *model.Session
	sagas   *saga.Coordinator
}

func NewCart(client *api.Client, session *model.Session, sagas *saga.Coordinator) *Cart {
	return &Cart{api: client, session: session, sagas: sagas}
}

func (c *Cart) guard() error {
	if !c.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	if c.session.Role != model.RoleBuyer {
		return ErrNotBuyer
	}
	return nil
}

// Exists accepts both the bare-boolean and the {exists} response shape. A
// request or parse failure is an error, never "no cart".
func (c *Cart) Exists(ctx context.Context) (bool, error) {
	if err := c.guard(); err != nil {
		return false, err
	}
	payload, err := c.api.Get(ctx, fmt.Sprintf("/api/carts/exists/%d", c.session.UserID), nil)
	if err != nil {
		return false, fmt.Errorf("check cart existence: %w", err)
	}
	exists, ok := api.Exists(payload)
	if !ok {
		return false, fmt.Errorf("check cart existence: unexpected response shape")
	}
	return exists, nil
}

// Create is idempotent from the caller's perspective and always hands back a
// fresh fetch of the items.
func (c *Cart) Create(ctx context.Context) ([]model.CartItem, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if _, err := c.api.Post(ctx, fmt.Sprintf("/api/carts/%d", c.session.UserID), nil, nil); err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}
	return c.Items(ctx)
}

func (c *Cart) Items(ctx context.Context) ([]model.CartItem, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	payload, err := c.api.Get(ctx, fmt.Sprintf("/api/carts/userCart/%d", c.session.UserID), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch cart items: %w", err)
	}
	return api.CartItems(payload), nil
}

// EnsureID resolves the cart id, creating the cart on demand.
func (c *Cart) EnsureID(ctx context.Context) (int64, error) {
	if err := c.guard(); err != nil {
		return 0, err
	}
	return ensureCart(ctx, c.api, c.session.UserID)
}

func (c *Cart) Add(ctx context.Context, productID int64, quantity int) ([]model.CartItem, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	cartID, err := ensureCart(ctx, c.api, c.session.UserID)
	if err != nil {
		return nil, err
	}
	if _, err := addCartItem(ctx, c.api, cartID, productID, quantity); err != nil {
		return nil, err
	}
	return c.Items(ctx)
}

// ChangeQuantity updates a line's quantity and re-fetches the cart. A target
// below 1 is silently ignored: no request is issued and nil items are
// returned, leaving the caller's current list untouched.
func (c *Cart) ChangeQuantity(ctx context.Context, cartItemID string, quantity int) ([]model.CartItem, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, nil
	}
	path := fmt.Sprintf("/api/cart-items/%s/quantity/%d", cartItemID, quantity)
	if _, err := c.api.Put(ctx, path, nil, nil); err != nil {
		return nil, fmt.Errorf("update quantity: %w", err)
	}
	return c.Items(ctx)
}

func (c *Cart) Remove(ctx context.Context, cartItemID string) ([]model.CartItem, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if _, err := c.api.Delete(ctx, "/api/cart-items/"+cartItemID); err != nil {
		return nil, fmt.Errorf("delete cart item: %w", err)
	}
	return c.Items(ctx)
}

// MoveToWishlist runs the compound resolve-wishlist → add-wishlist-item →
// remove-cart-item sequence as a saga: if removing the cart item fails, the
// freshly added wishlist item is deleted again so the product does not end
// up in both lists.
func (c *Cart) MoveToWishlist(ctx context.Context, item model.CartItem) ([]model.CartItem, *saga.Execution, error) {
	if err := c.guard(); err != nil {
		return nil, nil, err
	}
	if item.ProductID == 0 {
		return nil, nil, fmt.Errorf("product id missing for this cart item")
	}

	var wishlistID int64
	var wishlistItemID string

	execution, err := c.sagas.Execute(ctx, "move-to-wishlist", []saga.Step{
		{
			Name: "ensure_wishlist",
			Run: func(ctx context.Context) error {
				id, err := ensureWishlist(ctx, c.api)
				wishlistID = id
				return err
			},
		},
		{
			Name: "add_wishlist_item",
			Run: func(ctx context.Context) error {
				id, err := addWishlistItem(ctx, c.api, wishlistID, item.ProductID)
				wishlistItemID = id
				return err
			},
			Compensate: func(ctx context.Context) error {
				if wishlistItemID == "" {
					return nil
				}
				_, err := c.api.Delete(ctx, "/api/wishlist-items/"+wishlistItemID)
				return err
			},
		},
		{
			Name: "remove_cart_item",
			Run: func(ctx context.Context) error {
				_, err := c.api.Delete(ctx, "/api/cart-items/"+item.ID)
				return err
			},
		},
	})
	if err != nil {
		return nil, execution, err
	}

	items, err := c.Items(ctx)
	return items, execution, err
}

func (c *Cart) Total(items []model.CartItem) float64 {
	return model.CartTotal(items)
}
