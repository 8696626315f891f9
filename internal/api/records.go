package api

import (
	"time"

	"github.com/diyasingla2299/storefront/internal/model"
)

// Canonical decoders mapping every known backend response variant onto the
// internal record types. Missing price defaults to 0 and missing quantity to
// 1; these defaults mirror what the backend's own storefront always assumed
// and can mask server omissions.

func Exists(p Payload) (bool, bool) {
	return p.Bool("exists")
}

func CartID(p Payload) int64 {
	return p.Map().Int("cartId", "cart_id", "id")
}

func WishlistID(p Payload) int64 {
	return p.Map().Int("wishlistId", "wishlist_id", "id")
}

func OrderID(p Payload) int64 {
	return p.Map().Int("orderId", "order_id", "id")
}

func CartItemID(p Payload) string {
	return p.Map().String("cartItemsId", "cart_items_id", "cartItemId", "cart_item_id", "id")
}

func WishlistItemID(p Payload) string {
	return p.Map().String("wishlistItemsId", "wishlist_items_id", "wishlistItemId", "wishlist_item_id", "id")
}

func CartItems(p Payload) []model.CartItem {
	records := p.List("cartItems", "cart_items", "items")
	items := make([]model.CartItem, 0, len(records))
	for _, r := range records {
		items = append(items, model.CartItem{
			ID:           r.String("cartItemsId", "cart_items_id", "cartItemId", "cart_item_id", "id"),
			ProductID:    r.Int("productId", "product_id"),
			ProductName:  r.String("productName", "product_name", "name"),
			ProductPrice: r.Float("productPrice", "product_price", "price"),
			Quantity:     int(r.IntDefault(1, "quantity")),
			ImageURL:     r.String("imageUrl", "image_url"),
		})
	}
	return items
}

func WishlistItems(p Payload) []model.WishlistItem {
	records := p.List("wishlistItems", "wishlist_items", "items")
	items := make([]model.WishlistItem, 0, len(records))
	for _, r := range records {
		items = append(items, model.WishlistItem{
			ID:        r.String("wishlistItemsId", "wishlist_items_id", "wishlistItemId", "id"),
			ProductID: r.Int("productId", "product_id"),
		})
	}
	return items
}

func Product(p Payload) model.Product {
	return productFromRecord(p.Map())
}

func Products(p Payload) []model.Product {
	records := p.List("products", "items")
	products := make([]model.Product, 0, len(records))
	for _, r := range records {
		products = append(products, productFromRecord(r))
	}
	return products
}

func productFromRecord(r Record) model.Product {
	return model.Product{
		ID:           r.Int("productId", "product_id", "id"),
		Name:         r.String("productName", "product_name", "name"),
		Description:  r.String("productDescription", "product_description", "description"),
		Price:        r.Float("productPrice", "product_price", "price"),
		MRP:          r.Float("productMrp", "product_mrp", "mrp"),
		Quantity:     int(r.Int("productQuantity", "product_quantity", "quantity")),
		Brand:        r.String("brand"),
		CategoryID:   r.Int("categoryId", "category_id"),
		ImageURL:     r.String("imageUrl", "image_url", "product_image_url", "image"),
		AvgRating:    r.Float("productAvgRating", "product_avg_rating", "avgRating"),
		ReviewsCount: int(r.Int("productReviewsCount", "product_reviews_count", "reviewsCount")),
		SellerID:     r.Int("userId", "user_id", "sellerId", "seller_id"),
	}
}

func Orders(p Payload) []model.Order {
	records := p.List("orders", "items")
	orders := make([]model.Order, 0, len(records))
	for _, r := range records {
		id := r.Int("orderId", "order_id", "id")
		if id == 0 {
			continue
		}
		status := r.String("orderStatus", "order_status", "status")
		if status == "" {
			status = string(model.OrderStatusPending)
		}
		orders = append(orders, model.Order{
			ID:              id,
			UserID:          r.Int("userId", "user_id"),
			TotalAmount:     r.Float("totalAmount", "total_amount"),
			ShippingAddress: r.String("shippingAddress", "shipping_address"),
			Status:          model.OrderStatus(status),
			PaymentMethod:   model.PaymentMethod(r.String("paymentMethod", "payment_method")),
			PlacedAt:        parseTime(r.String("placedAt", "placed_at", "orderDate", "order_date")),
		})
	}
	return orders
}

func DashboardSummary(p Payload) (model.SellerStats, []model.Notification, []model.LowStockAlert) {
	statsRecord := p.Field("stats").Map()
	stats := model.SellerStats{
		TodaySales:     statsRecord.Float("todaySales", "today_sales"),
		TotalOrders:    int(statsRecord.Int("totalOrders", "total_orders")),
		ActiveProducts: int(statsRecord.Int("activeProducts", "active_products")),
		PendingPayout:  statsRecord.Float("pendingPayout", "pending_payout"),
	}

	var notifications []model.Notification
	for _, r := range p.Field("notifications").List() {
		notifications = append(notifications, model.Notification{
			ID:      r.Int("id"),
			Message: r.String("message"),
			Time:    r.String("time"),
		})
	}

	var alerts []model.LowStockAlert
	for _, r := range p.Field("lowStockAlerts", "low_stock_alerts").List() {
		alerts = append(alerts, model.LowStockAlert{
			ProductID:    r.Int("productId", "product_id"),
			ProductName:  r.String("productName", "product_name"),
			CurrentStock: int(r.Int("currentStock", "current_stock")),
		})
	}

	return stats, notifications, alerts
}

func SellerOrders(p Payload) []model.SellerOrder {
	records := p.List("orders", "items")
	orders := make([]model.SellerOrder, 0, len(records))
	for _, r := range records {
		orders = append(orders, model.SellerOrder{
			OrderID:       r.Int("orderId", "order_id", "id"),
			OrderDate:     r.String("orderDate", "order_date"),
			ProductName:   r.String("productName", "product_name"),
			TotalAmount:   r.Float("totalAmount", "total_amount"),
			Status:        model.OrderStatus(r.String("status", "orderStatus", "order_status")),
			PaymentStatus: r.String("paymentStatus", "payment_status"),
		})
	}
	return orders
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(raw string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
