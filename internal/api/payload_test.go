package api

import (
	"encoding/json"
	"testing"
)

func parse(t *testing.T, raw string) Payload {
	t.Helper()
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return Payload{value: value}
}

func TestExistsShapes(t *testing.T) {
	cases := []struct {
		raw    string
		exists bool
		found  bool
	}{
		{`true`, true, true},
		{`false`, false, true},
		{`{"exists":true}`, true, true},
		{`{"exists":false}`, false, true},
		{`{"cartId":11}`, false, false},
		{`"yes"`, false, false},
	}
	for _, tc := range cases {
		exists, found := Exists(parse(t, tc.raw))
		if exists != tc.exists || found != tc.found {
			t.Errorf("Exists(%s) = %v,%v want %v,%v", tc.raw, exists, found, tc.exists, tc.found)
		}
	}
}

func TestCartItemsBareArray(t *testing.T) {
	p := parse(t, `[{"cartItemsId":3,"productId":12,"productName":"Mug","productPrice":199.5,"quantity":2}]`)
	items := CartItems(p)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item.ID != "3" {
		t.Errorf("numeric id should become string %q", item.ID)
	}
	if item.ProductID != 12 || item.ProductName != "Mug" || item.ProductPrice != 199.5 || item.Quantity != 2 {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestCartItemsWrappedSnakeCase(t *testing.T) {
	p := parse(t, `{"cartItems":[{"cart_items_id":"7","product_id":5,"product_name":"Pen","product_price":30,"quantity":1}]}`)
	items := CartItems(p)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ID != "7" || items[0].ProductID != 5 || items[0].ProductName != "Pen" {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestCartItemsDefaults(t *testing.T) {
	p := parse(t, `[{"cartItemsId":1,"productId":2}]`)
	items := CartItems(p)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ProductPrice != 0 {
		t.Errorf("missing price should default to 0, got %v", items[0].ProductPrice)
	}
	if items[0].Quantity != 1 {
		t.Errorf("missing quantity should default to 1, got %d", items[0].Quantity)
	}
}

func TestIDCoalescing(t *testing.T) {
	if got := CartID(parse(t, `{"cart_id":11}`)); got != 11 {
		t.Errorf("snake cart id: got %d", got)
	}
	if got := CartID(parse(t, `{"id":"11"}`)); got != 11 {
		t.Errorf("string cart id: got %d", got)
	}
	if got := OrderID(parse(t, `{"orderId":104}`)); got != 104 {
		t.Errorf("order id: got %d", got)
	}
	if got := WishlistItemID(parse(t, `{"wishlistItemsId":42}`)); got != "42" {
		t.Errorf("wishlist item id: got %q", got)
	}
	if got := CartItemID(parse(t, `{"cartItemId":"abc"}`)); got != "abc" {
		t.Errorf("cart item id variant: got %q", got)
	}
}

func TestProductDecoding(t *testing.T) {
	p := parse(t, `{"productId":9,"productName":"Lamp","productPrice":750,"productMrp":1000,"productQuantity":3,"brand":"Glow","userId":5}`)
	product := Product(p)
	if product.ID != 9 || product.Name != "Lamp" || product.Price != 750 || product.MRP != 1000 {
		t.Errorf("unexpected product: %+v", product)
	}
	if product.SellerID != 5 {
		t.Errorf("seller id not coalesced from userId: %d", product.SellerID)
	}
	if product.DiscountPercent() != 25 {
		t.Errorf("expected 25%% discount, got %d", product.DiscountPercent())
	}
}

func TestOrdersDecoding(t *testing.T) {
	p := parse(t, `[
		{"order_id":2,"total_amount":500,"order_status":"SHIPPED","placed_at":"2024-01-02T10:00:00Z"},
		{"orderId":3,"totalAmount":750,"placedAt":"2024-01-03"},
		{"total_amount":99}
	]`)
	orders := Orders(p)
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders (id-less row skipped), got %d", len(orders))
	}
	if orders[0].Status != "SHIPPED" {
		t.Errorf("unexpected status: %s", orders[0].Status)
	}
	if orders[1].Status != "PENDING" {
		t.Errorf("missing status should default to PENDING, got %s", orders[1].Status)
	}
	if orders[1].PlacedAt.IsZero() {
		t.Error("date-only placed_at should parse")
	}
}

func TestDashboardSummaryDecoding(t *testing.T) {
	p := parse(t, `{
		"stats":{"todaySales":1200.5,"totalOrders":8,"activeProducts":3,"pendingPayout":400},
		"notifications":[{"id":1,"message":"New order received","time":"just now"}],
		"lowStockAlerts":[{"productId":4,"productName":"Lamp","currentStock":2}]
	}`)
	stats, notifications, alerts := DashboardSummary(p)
	if stats.TodaySales != 1200.5 || stats.TotalOrders != 8 || stats.ActiveProducts != 3 || stats.PendingPayout != 400 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if len(notifications) != 1 || notifications[0].Message != "New order received" {
		t.Errorf("unexpected notifications: %+v", notifications)
	}
	if len(alerts) != 1 || alerts[0].CurrentStock != 2 {
		t.Errorf("unexpected alerts: %+v", alerts)
	}
}

func TestRecordNumberFormatting(t *testing.T) {
	r := Record{"a": float64(42), "b": 42.5}
	if got := r.String("a"); got != "42" {
		t.Errorf("integral float: got %q", got)
	}
	if got := r.String("b"); got != "42.5" {
		t.Errorf("fractional float: got %q", got)
	}
}

func TestRecordNullIsMissing(t *testing.T) {
	p := parse(t, `{"productPrice":null,"quantity":null}`)
	r := p.Map()
	if got := r.FloatDefault(0, "productPrice"); got != 0 {
		t.Errorf("null price: got %v", got)
	}
	if got := r.IntDefault(1, "quantity"); got != 1 {
		t.Errorf("null quantity: got %v", got)
	}
}
