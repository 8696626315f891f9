package workflow

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/diyasingla2299/storefront/internal/api"
	"github.com/diyasingla2299/storefront/internal/model"
)

// Dashboard is one consistent snapshot of the seller's view. Sections load
// independently: a failed section is recorded in SectionErrs while the
// others still render.
type Dashboard struct {
	Stats          model.SellerStats
	Notifications  []model.Notification
	LowStockAlerts []model.LowStockAlert
	Products       []model.Product
	RecentOrders   []model.SellerOrder
	SectionErrs    map[string]error
}

type Seller struct {
	api     *api.Client
	session *model.Session
}

func NewSeller(client *api.Client, session *model.Session) *Seller {
	return &Seller{api: client, session: session}
}

func (s *Seller) guard() error {
	if !s.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	if !s.session.CanSell() {
		return ErrNotSeller
	}
	return nil
}

func (s *Seller) query() url.Values {
	return url.Values{"userId": {strconv.FormatInt(s.session.UserID, 10)}}
}

// Refresh loads the summary, product list, and recent orders concurrently.
// An error is returned only when every section failed.
func (s *Seller) Refresh(ctx context.Context) (*Dashboard, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	dashboard := &Dashboard{SectionErrs: make(map[string]error)}
	var mu sync.Mutex

	section := func(name string, load func() error) func() error {
		return func() error {
			if err := load(); err != nil {
				mu.Lock()
				dashboard.SectionErrs[name] = err
				mu.Unlock()
			}
			return nil
		}
	}

	var group errgroup.Group
	group.Go(section("summary", func() error {
		payload, err := s.api.Get(ctx, "/api/seller/dashboard", s.query())
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.Stats, dashboard.Notifications, dashboard.LowStockAlerts = api.DashboardSummary(payload)
		mu.Unlock()
		return nil
	}))
	group.Go(section("products", func() error {
		payload, err := s.api.Get(ctx, "/api/seller/products", s.query())
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.Products = api.Products(payload)
		mu.Unlock()
		return nil
	}))
	group.Go(section("orders", func() error {
		payload, err := s.api.Get(ctx, "/api/seller/orders/recent", s.query())
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.RecentOrders = api.SellerOrders(payload)
		mu.Unlock()
		return nil
	}))
	_ = group.Wait()

	if len(dashboard.SectionErrs) == 3 {
		return dashboard, fmt.Errorf("failed to load seller dashboard: %v", dashboard.SectionErrs["summary"])
	}
	return dashboard, nil
}

func validateProduct(product model.Product) error {
	if product.MRP > 0 && product.Price > product.MRP {
		return fmt.Errorf("price cannot be greater than MRP")
	}
	return nil
}

func (s *Seller) productPayload(product model.Product) map[string]any {
	return map[string]any{
		"productName":        product.Name,
		"productDescription": product.Description,
		"productMrp":         product.MRP,
		"productPrice":       product.Price,
		"productQuantity":    product.Quantity,
		"brand":              product.Brand,
		"categoryId":         product.CategoryID,
		"userId":             s.session.UserID,
	}
}

// CreateProduct validates price against MRP locally, creates the product,
// and re-fetches the whole dashboard so derived stats and low-stock alerts
// stay consistent.
func (s *Seller) CreateProduct(ctx context.Context, product model.Product) (*Dashboard, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if _, err := s.api.Post(ctx, "/api/seller/products", s.query(), s.productPayload(product)); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return s.Refresh(ctx)
}

func (s *Seller) UpdateProduct(ctx context.Context, product model.Product) (*Dashboard, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	if product.ID == 0 {
		return nil, fmt.Errorf("product id is required for update")
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/api/seller/products/%d", product.ID)
	if _, err := s.api.Put(ctx, path, s.query(), s.productPayload(product)); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return s.Refresh(ctx)
}

func (s *Seller) DeleteProduct(ctx context.Context, productID int64) (*Dashboard, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	if _, err := s.api.Delete(ctx, fmt.Sprintf("/api/seller/products/%d", productID)); err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return s.Refresh(ctx)
}

// UpdateOrderStatus asks the backend to move an order to SHIPPED or
// DELIVERED, the only targets a seller may set. On failure the dashboard is
// re-fetched so the view falls back to server truth, and the failure is
// still surfaced.
func (s *Seller) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*Dashboard, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	if status != model.OrderStatusShipped && status != model.OrderStatusDelivered {
		return nil, fmt.Errorf("order status can only be set to SHIPPED or DELIVERED")
	}

	path := fmt.Sprintf("/api/seller/orders/%d/status", orderID)
	body := map[string]any{"status": string(status), "userId": s.session.UserID}
	if _, err := s.api.Put(ctx, path, nil, body); err != nil {
		if dashboard, refreshErr := s.Refresh(ctx); refreshErr == nil {
			return dashboard, fmt.Errorf("update order status: %w", err)
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return s.Refresh(ctx)
}
