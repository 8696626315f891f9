package workflow

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/diyasingla2299/storefront/internal/api"
	"github.com/diyasingla2299/storefront/internal/model"
	"github.com/diyasingla2299/storefront/internal/saga"
)

type Wishlist struct {
	api     *api.Client
	session *model.Session
	sagas   *saga.Coordinator
}

func NewWishlist(client *api.Client, session *model.Session, sagas *saga.Coordinator) *Wishlist {
	return &Wishlist{api: client, session: session, sagas: sagas}
}

func (w *Wishlist) guard() error {
	if !w.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	if w.session.Role != model.RoleBuyer {
		return ErrNotBuyer
	}
	return nil
}

// Items fetches the wishlist stubs and hydrates each one with its product
// detail concurrently. Hydration is all-or-nothing: a single failed product
// fetch fails the whole batch, no partial list is returned.
func (w *Wishlist) Items(ctx context.Context) ([]model.WishlistEntry, error) {
	if err := w.guard(); err != nil {
		return nil, err
	}
	payload, err := w.api.Get(ctx, "/api/wishlist/items", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch wishlist: %w", err)
	}
	stubs := api.WishlistItems(payload)

	entries := make([]model.WishlistEntry, len(stubs))
	group, ctx := errgroup.WithContext(ctx)
	for i, stub := range stubs {
		i, stub := i, stub
		group.Go(func() error {
			detail, err := w.api.Get(ctx, fmt.Sprintf("/api/products/%d", stub.ProductID), nil)
			if err != nil {
				return fmt.Errorf("fetch product %d: %w", stub.ProductID, err)
			}
			product := api.Product(detail)
			entries[i] = model.WishlistEntry{
				WishlistItem: stub,
				ProductName:  product.Name,
				ProductPrice: product.Price,
				ImageURL:     product.ImageURL,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Remove deletes the wishlist item and re-fetches the list, the same
// reconcile-by-refetch policy the cart uses.
func (w *Wishlist) Remove(ctx context.Context, wishlistItemID string) ([]model.WishlistEntry, error) {
	if err := w.guard(); err != nil {
		return nil, err
	}
	if _, err := w.api.Delete(ctx, "/api/wishlist-items/"+wishlistItemID); err != nil {
		return nil, fmt.Errorf("remove wishlist item: %w", err)
	}
	return w.Items(ctx)
}

// MoveToCart runs resolve-cart → add-cart-item → remove-wishlist-item as a
// saga; a failed wishlist removal deletes the cart item added in step two.
func (w *Wishlist) MoveToCart(ctx context.Context, wishlistItemID string, productID int64) ([]model.WishlistEntry, *saga.Execution, error) {
	if err := w.guard(); err != nil {
		return nil, nil, err
	}

	var cartID int64
	var cartItemID string

	execution, err := w.sagas.Execute(ctx, "move-to-cart", []saga.Step{
		{
			Name: "ensure_cart",
			Run: func(ctx context.Context) error {
				id, err := ensureCart(ctx, w.api, w.session.UserID)
				cartID = id
				return err
			},
		},
		{
			Name: "add_cart_item",
			Run: func(ctx context.Context) error {
				id, err := addCartItem(ctx, w.api, cartID, productID, 1)
				cartItemID = id
				return err
			},
			Compensate: func(ctx context.Context) error {
				if cartItemID == "" {
					return nil
				}
				_, err := w.api.Delete(ctx, "/api/cart-items/"+cartItemID)
				return err
			},
		},
		{
			Name: "remove_wishlist_item",
			Run: func(ctx context.Context) error {
				_, err := w.api.Delete(ctx, "/api/wishlist-items/"+wishlistItemID)
				return err
			},
		},
	})
	if err != nil {
		return nil, execution, err
	}

	entries, err := w.Items(ctx)
	return entries, execution, err
}
