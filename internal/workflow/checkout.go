package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/diyasingla2299/storefront/internal/api"
	"github.com/diyasingla2299/storefront/internal/model"
)

// NextStep tells the caller which view to route to after a placed order.
type NextStep string

const (
	NextOrderSuccess NextStep = "order-success"
	NextUPIPayment   NextStep = "upi-payment"
)

type Confirmation struct {
	OrderID       int64
	PaymentMethod model.PaymentMethod
	TotalAmount   float64
	Next          NextStep
}

type Checkout struct {
	api     *api.Client
	session *model.Session
	cart    *Cart
}

func NewCheckout(client *api.Client, session *model.Session, cart *Cart) *Checkout {
	return &Checkout{api: client, session: session, cart: cart}
}

// CartLines is the cart-mode entry: a fresh snapshot of the server-side cart.
func (c *Checkout) CartLines(ctx context.Context) ([]model.CartItem, error) {
	return c.cart.Items(ctx)
}

// BuyNowLines is the buy-now entry: one synthesized line built from a single
// product, never touching the cart.
func BuyNowLines(product model.Product, quantity int) []model.CartItem {
	if quantity < 1 {
		quantity = 1
	}
	return []model.CartItem{{
		ID:           "buynow-" + uuid.New().String(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		Quantity:     quantity,
		ImageURL:     product.ImageURL,
	}}
}

// PlaceOrder validates the shipping details and submits the order. All
// validation is blocking and happens before any network call; the computed
// total goes out with the payload and the initial status is always PENDING.
// COD routes to the success view, UPI to the payment view for the new order.
// On failure the caller may resubmit; there is no automatic retry.
func (c *Checkout) PlaceOrder(ctx context.Context, lines []model.CartItem, address model.ShippingAddress, method model.PaymentMethod) (*Confirmation, error) {
	if !c.session.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	if len(lines) == 0 {
		return nil, errors.New("your cart is empty")
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	total := model.CartTotal(lines)
	payload := map[string]any{
		"userId":          c.session.UserID,
		"totalAmount":     total,
		"shippingAddress": address.Compact(),
		"orderStatus":     string(model.OrderStatusPending),
		"paymentMethod":   string(method),
		"razorpayOrderId": nil,
	}

	response, err := c.api.Post(ctx, "/api/orders", nil, payload)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	orderID := api.OrderID(response)
	if orderID == 0 {
		return nil, errors.New("order id missing from response")
	}

	next := NextOrderSuccess
	if method == model.PaymentUPI {
		next = NextUPIPayment
	}
	return &Confirmation{
		OrderID:       orderID,
		PaymentMethod: method,
		TotalAmount:   total,
		Next:          next,
	}, nil
}
