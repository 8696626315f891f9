package workflow

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/diyasingla2299/storefront/internal/api"
	"github.com/diyasingla2299/storefront/internal/model"
)

type Orders struct {
	api     *api.Client
	session *model.Session
}

func NewOrders(client *api.Client, session *model.Session) *Orders {
	return &Orders{api: client, session: session}
}

// History returns the user's orders, newest first. A 404 means the user has
// no orders yet, not an error.
func (o *Orders) History(ctx context.Context) ([]model.Order, error) {
	if !o.session.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	payload, err := o.api.Get(ctx, fmt.Sprintf("/api/orders/user/%d", o.session.UserID), nil)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("load orders: %w", err)
	}

	orders := api.Orders(payload)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].PlacedAt.After(orders[j].PlacedAt)
	})
	return orders, nil
}

// Cancel moves a PENDING order to CANCELLED and re-fetches the history. The
// transition itself is server-authoritative; the client only refuses to ask
// for transitions the buyer is never allowed to make.
func (o *Orders) Cancel(ctx context.Context, order model.Order) ([]model.Order, error) {
	if !o.session.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	if order.Status != model.OrderStatusPending {
		return nil, fmt.Errorf("only pending orders can be cancelled")
	}
	if _, err := o.api.Post(ctx, fmt.Sprintf("/api/orders/%d/cancel", order.ID), nil, nil); err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	return o.History(ctx)
}
