package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/diyasingla2299/storefront/internal/model"
	"github.com/diyasingla2299/storefront/internal/storetest"
)

func newSeller(t *testing.T) (*storetest.Backend, *Seller) {
	t.Helper()
	backend, client, session := newEnv(t, model.RoleSeller)
	return backend, NewSeller(client, session)
}

func TestSellerGuards(t *testing.T) {
	_, client, _ := newEnv(t, model.RoleSeller)

	buyer := NewSeller(client, &model.Session{UserID: 1, Token: "x", Role: model.RoleBuyer})
	if _, err := buyer.Refresh(context.Background()); !errors.Is(err, ErrNotSeller) {
		t.Errorf("expected ErrNotSeller for buyer, got %v", err)
	}

	merchant := NewSeller(client, &model.Session{UserID: 1, Token: "x", Role: model.RoleMerchant})
	if _, err := merchant.Refresh(context.Background()); errors.Is(err, ErrNotSeller) {
		t.Error("merchant role should be allowed to sell")
	}
}

func TestSellerRefreshLoadsAllSections(t *testing.T) {
	backend, seller := newSeller(t)
	backend.SeedProduct(storetest.ProductRow{ID: 5, Name: "Desk Lamp", Price: 750, MRP: 1000, Quantity: 2, SellerID: 1})
	backend.SeedSellerOrder(storetest.SellerOrderRow{ID: 1, Date: "2024-02-01", ProductName: "Desk Lamp", Total: 750, Status: "PENDING", PaymentStatus: "PAID"})
	backend.AddNotification("New order received")
	backend.SetStats(750, 600)

	dashboard, err := seller.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(dashboard.SectionErrs) != 0 {
		t.Errorf("unexpected section errors: %v", dashboard.SectionErrs)
	}
	if dashboard.Stats.TodaySales != 750 || dashboard.Stats.PendingPayout != 600 || dashboard.Stats.ActiveProducts != 1 {
		t.Errorf("unexpected stats: %+v", dashboard.Stats)
	}
	if len(dashboard.Products) != 1 || dashboard.Products[0].Name != "Desk Lamp" {
		t.Errorf("unexpected products: %+v", dashboard.Products)
	}
	if len(dashboard.RecentOrders) != 1 || dashboard.RecentOrders[0].Status != model.OrderStatusPending {
		t.Errorf("unexpected recent orders: %+v", dashboard.RecentOrders)
	}
	if len(dashboard.Notifications) != 1 {
		t.Errorf("unexpected notifications: %+v", dashboard.Notifications)
	}
	if len(dashboard.LowStockAlerts) != 1 || dashboard.LowStockAlerts[0].CurrentStock != 2 {
		t.Errorf("low stock product missing from alerts: %+v", dashboard.LowStockAlerts)
	}
}

func TestSellerRefreshPartialFailure(t *testing.T) {
	backend, seller := newSeller(t)
	backend.SeedProduct(storetest.ProductRow{ID: 5, Name: "Desk Lamp", Price: 750, Quantity: 10, SellerID: 1})
	backend.FailOrdersSection = true

	dashboard, err := seller.Refresh(context.Background())
	if err != nil {
		t.Fatalf("one failed section must not fail the refresh: %v", err)
	}
	if dashboard.SectionErrs["orders"] == nil {
		t.Error("failed section not recorded")
	}
	if len(dashboard.Products) != 1 {
		t.Error("healthy sections should still load")
	}
}

func TestSellerRefreshAllSectionsFailed(t *testing.T) {
	backend, seller := newSeller(t)
	backend.FailDashboardSection = true
	backend.FailProductsSection = true
	backend.FailOrdersSection = true

	if _, err := seller.Refresh(context.Background()); err == nil {
		t.Fatal("expected error when every section fails")
	}
}

func TestCreateProductValidatesPrice(t *testing.T) {
	backend, seller := newSeller(t)

	_, err := seller.CreateProduct(context.Background(), model.Product{Name: "Desk Lamp", Price: 1200, MRP: 1000})
	if err == nil || !strings.Contains(err.Error(), "MRP") {
		t.Fatalf("expected price/MRP validation error, got %v", err)
	}
	if backend.Requests("/api/seller/products") != 0 {
		t.Error("validation failure should not hit the network")
	}
}

func TestCreateProductRefreshesDashboard(t *testing.T) {
	_, seller := newSeller(t)

	dashboard, err := seller.CreateProduct(context.Background(), model.Product{
		Name: "Desk Lamp", Description: "Warm light", Price: 750, MRP: 1000, Quantity: 10, Brand: "Glow",
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if len(dashboard.Products) != 1 || dashboard.Products[0].Name != "Desk Lamp" {
		t.Errorf("new product missing from refreshed dashboard: %+v", dashboard.Products)
	}
	if dashboard.Stats.ActiveProducts != 1 {
		t.Errorf("stats not refreshed: %+v", dashboard.Stats)
	}
}

func TestUpdateProductRequiresID(t *testing.T) {
	_, seller := newSeller(t)

	if _, err := seller.UpdateProduct(context.Background(), model.Product{Name: "Desk Lamp", Price: 750}); err == nil {
		t.Fatal("update without product id accepted")
	}
}

func TestDeleteProductRefreshesDashboard(t *testing.T) {
	backend, seller := newSeller(t)
	backend.SeedProduct(storetest.ProductRow{ID: 5, Name: "Desk Lamp", Price: 750, Quantity: 10, SellerID: 1})

	dashboard, err := seller.DeleteProduct(context.Background(), 5)
	if err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if len(dashboard.Products) != 0 {
		t.Errorf("deleted product still in dashboard: %+v", dashboard.Products)
	}
}

func TestUpdateOrderStatusRestrictedTargets(t *testing.T) {
	backend, seller := newSeller(t)

	for _, status := range []model.OrderStatus{model.OrderStatusPending, model.OrderStatusCancelled} {
		if _, err := seller.UpdateOrderStatus(context.Background(), 1, status); err == nil {
			t.Errorf("status %s accepted", status)
		}
	}
	if backend.Requests("/status") != 0 {
		t.Error("rejected transitions should not hit the network")
	}
}

func TestUpdateOrderStatusSuccess(t *testing.T) {
	backend, seller := newSeller(t)
	backend.SeedSellerOrder(storetest.SellerOrderRow{ID: 1, Date: "2024-02-01", ProductName: "Desk Lamp", Total: 750, Status: "PENDING"})

	dashboard, err := seller.UpdateOrderStatus(context.Background(), 1, model.OrderStatusShipped)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if len(dashboard.RecentOrders) != 1 || dashboard.RecentOrders[0].Status != model.OrderStatusShipped {
		t.Errorf("refreshed dashboard does not show the new status: %+v", dashboard.RecentOrders)
	}
}

func TestUpdateOrderStatusFailureFallsBackToServerTruth(t *testing.T) {
	backend, seller := newSeller(t)
	backend.SeedSellerOrder(storetest.SellerOrderRow{ID: 1, Status: "PENDING"})
	backend.FailOrderStatus = true

	dashboard, err := seller.UpdateOrderStatus(context.Background(), 1, model.OrderStatusShipped)
	if err == nil {
		t.Fatal("expected error from rejected status update")
	}
	if dashboard == nil {
		t.Fatal("expected the refetched dashboard alongside the error")
	}
	if dashboard.RecentOrders[0].Status != model.OrderStatusPending {
		t.Errorf("dashboard should show server truth, got %+v", dashboard.RecentOrders)
	}
}
