// Package storetest is an in-memory stand-in for the storefront REST API,
// used by the workflow tests and the end-to-end suite. It reproduces the
// backend's inconsistent response shapes (bare vs wrapped lists, camelCase
// vs snake_case keys) behind knobs so the coalescing layer can be exercised
// through real HTTP round trips.
package storetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

type CartRow struct {
	ID        int64
	ProductID int64
	Quantity  int
}

type WishRow struct {
	ID        int64
	ProductID int64
}

type ProductRow struct {
	ID       int64
	Name     string
	Price    float64
	MRP      float64
	Quantity int
	Brand    string
	ImageURL string
	SellerID int64
}

type OrderRow struct {
	ID              int64
	UserID          int64
	Total           float64
	ShippingAddress string
	Status          string
	Payment         string
	PlacedAt        string
}

type SellerOrderRow struct {
	ID            int64
	Date          string
	ProductName   string
	Total         float64
	Status        string
	PaymentStatus string
}

const lowStockThreshold = 5

type Backend struct {
	mu sync.Mutex

	Token string

	hasCart       bool
	cartID        int64
	cartItems     []CartRow
	hasWishlist   bool
	wishlistID    int64
	wishlistItems []WishRow
	products      map[int64]ProductRow
	orders        []OrderRow
	sellerOrders  []SellerOrderRow
	notifications []string
	todaySales    float64
	pendingPayout float64
	nextID        int64

	// response-shape knobs
	WrapExists    bool
	WrapCartItems bool
	SnakeCart     bool

	// failure knobs
	FailProductID          int64
	FailCartItemDelete     bool
	FailWishlistItemDelete bool
	FailDashboardSection   bool
	FailProductsSection    bool
	FailOrdersSection      bool
	FailOrderStatus        bool
	FailCreateOrder        string

	counts map[string]int
	server *httptest.Server
}

func New() *Backend {
	b := &Backend{
		Token:      "test-token",
		cartID:     11,
		wishlistID: 7,
		products:   make(map[int64]ProductRow),
		nextID:     100,
		counts:     make(map[string]int),
	}
	b.server = httptest.NewServer(b.router())
	return b
}

func (b *Backend) Close() { b.server.Close() }

func (b *Backend) URL() string { return b.server.URL }

// ---- seeding ----

func (b *Backend) SeedProduct(p ProductRow) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.products[p.ID] = p
}

func (b *Backend) SeedCart(items ...CartRow) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hasCart = true
	b.cartItems = append(b.cartItems, items...)
}

func (b *Backend) SeedWishlist(items ...WishRow) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hasWishlist = true
	b.wishlistItems = append(b.wishlistItems, items...)
}

func (b *Backend) SeedOrder(o OrderRow) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = append(b.orders, o)
}

func (b *Backend) SeedSellerOrder(o SellerOrderRow) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sellerOrders = append(b.sellerOrders, o)
}

func (b *Backend) AddNotification(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notifications = append(b.notifications, message)
}

func (b *Backend) SetStats(todaySales, pendingPayout float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.todaySales = todaySales
	b.pendingPayout = pendingPayout
}

// ---- state accessors ----

func (b *Backend) HasCart() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hasCart
}

func (b *Backend) CartItems() []CartRow {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]CartRow(nil), b.cartItems...)
}

func (b *Backend) WishlistItems() []WishRow {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]WishRow(nil), b.wishlistItems...)
}

func (b *Backend) Orders() []OrderRow {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]OrderRow(nil), b.orders...)
}

func (b *Backend) LastOrder() (OrderRow, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.orders) == 0 {
		return OrderRow{}, false
	}
	return b.orders[len(b.orders)-1], true
}

func (b *Backend) SellerOrders() []SellerOrderRow {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]SellerOrderRow(nil), b.sellerOrders...)
}

func (b *Backend) Product(id int64) (ProductRow, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.products[id]
	return p, ok
}

// Count returns how many requests matched the exact "METHOD /path/template"
// key; Requests sums every key containing the substring.
func (b *Backend) Count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[key]
}

func (b *Backend) Requests(substr string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := 0
	for key, n := range b.counts {
		if strings.Contains(key, substr) {
			total += n
		}
	}
	return total
}

// ---- router ----

func (b *Backend) router() http.Handler {
	r := mux.NewRouter()
	r.Use(b.observe)

	r.HandleFunc("/api/carts/exists/{userId}", b.cartExists).Methods(http.MethodGet)
	r.HandleFunc("/api/carts/userCart/{userId}", b.cartItemsList).Methods(http.MethodGet)
	r.HandleFunc("/api/carts/user/{userId}", b.cartByUser).Methods(http.MethodGet)
	r.HandleFunc("/api/carts/{userId}", b.createCart).Methods(http.MethodPost)
	r.HandleFunc("/api/cart-items", b.addCartItem).Methods(http.MethodPost)
	r.HandleFunc("/api/cart-items/{id}", b.deleteCartItem).Methods(http.MethodDelete)
	r.HandleFunc("/api/cart-items/{id}/quantity/{qty}", b.setCartItemQuantity).Methods(http.MethodPut)

	r.HandleFunc("/api/wishlist/exists", b.wishlistExists).Methods(http.MethodGet)
	r.HandleFunc("/api/wishlist/my", b.myWishlist).Methods(http.MethodGet)
	r.HandleFunc("/api/wishlist/items", b.wishlistItemsList).Methods(http.MethodGet)
	r.HandleFunc("/api/wishlist", b.createWishlist).Methods(http.MethodPost)
	r.HandleFunc("/api/wishlist-items", b.addWishlistItem).Methods(http.MethodPost)
	r.HandleFunc("/api/wishlist-items/{id}", b.deleteWishlistItem).Methods(http.MethodDelete)

	r.HandleFunc("/api/products/search", b.searchProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id}", b.productDetail).Methods(http.MethodGet)

	r.HandleFunc("/api/orders", b.createOrder).Methods(http.MethodPost)
	r.HandleFunc("/api/orders/user/{userId}", b.ordersByUser).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/{id}/cancel", b.cancelOrder).Methods(http.MethodPost)

	r.HandleFunc("/api/seller/dashboard", b.sellerDashboard).Methods(http.MethodGet)
	r.HandleFunc("/api/seller/products", b.sellerProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/seller/products", b.createProduct).Methods(http.MethodPost)
	r.HandleFunc("/api/seller/products/{id}", b.updateProduct).Methods(http.MethodPut)
	r.HandleFunc("/api/seller/products/{id}", b.deleteProduct).Methods(http.MethodDelete)
	r.HandleFunc("/api/seller/orders/recent", b.recentSellerOrders).Methods(http.MethodGet)
	r.HandleFunc("/api/seller/orders/{id}/status", b.updateSellerOrderStatus).Methods(http.MethodPut)

	return r
}

// observe counts requests by route template and enforces the bearer token.
func (b *Backend) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				key = r.Method + " " + tmpl
			}
		}
		b.mu.Lock()
		b.counts[key]++
		token := b.Token
		b.mu.Unlock()

		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ---- cart handlers ----

func (b *Backend) cartExists(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	exists := b.hasCart
	wrap := b.WrapExists
	b.mu.Unlock()
	if wrap {
		writeJSON(w, http.StatusOK, map[string]any{"exists": exists})
		return
	}
	writeJSON(w, http.StatusOK, exists)
}

func (b *Backend) cartItemsList(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rows := make([]map[string]any, 0, len(b.cartItems))
	for _, item := range b.cartItems {
		product := b.products[item.ProductID]
		if b.SnakeCart {
			rows = append(rows, map[string]any{
				"cart_items_id": item.ID,
				"product_id":    item.ProductID,
				"product_name":  product.Name,
				"product_price": product.Price,
				"quantity":      item.Quantity,
				"image_url":     product.ImageURL,
			})
		} else {
			rows = append(rows, map[string]any{
				"cartItemsId":  item.ID,
				"productId":    item.ProductID,
				"productName":  product.Name,
				"productPrice": product.Price,
				"quantity":     item.Quantity,
				"imageUrl":     product.ImageURL,
			})
		}
	}

	if b.WrapCartItems {
		writeJSON(w, http.StatusOK, map[string]any{"cartItems": rows})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (b *Backend) cartByUser(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.hasCart {
		http.Error(w, "Cart not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cartId": b.cartID})
}

func (b *Backend) createCart(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hasCart = true
	writeJSON(w, http.StatusCreated, map[string]any{"cartId": b.cartID})
}

func (b *Backend) addCartItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CartID    int64 `json:"cartId"`
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.hasCart || body.CartID != b.cartID {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": fmt.Sprintf("unknown cart: %d", body.CartID)})
		return
	}
	b.nextID++
	item := CartRow{ID: b.nextID, ProductID: body.ProductID, Quantity: body.Quantity}
	b.cartItems = append(b.cartItems, item)
	writeJSON(w, http.StatusCreated, map[string]any{
		"cartItemsId": item.ID,
		"productId":   item.ProductID,
		"quantity":    item.Quantity,
	})
}

func (b *Backend) deleteCartItem(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailCartItemDelete {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "failed to delete cart item"})
		return
	}
	id := pathID(r, "id")
	for i, item := range b.cartItems {
		if item.ID == id {
			b.cartItems = append(b.cartItems[:i], b.cartItems[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "Cart item not found", http.StatusNotFound)
}

func (b *Backend) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := pathID(r, "id")
	qty, _ := strconv.Atoi(mux.Vars(r)["qty"])
	if qty < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "quantity must be positive"})
		return
	}
	for i := range b.cartItems {
		if b.cartItems[i].ID == id {
			b.cartItems[i].Quantity = qty
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "Cart item not found", http.StatusNotFound)
}

// ---- wishlist handlers ----

func (b *Backend) wishlistExists(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	exists := b.hasWishlist
	wrap := b.WrapExists
	b.mu.Unlock()
	if wrap {
		writeJSON(w, http.StatusOK, map[string]any{"exists": exists})
		return
	}
	writeJSON(w, http.StatusOK, exists)
}

func (b *Backend) myWishlist(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.hasWishlist {
		http.Error(w, "Wishlist not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"wishlistId": b.wishlistID})
}

func (b *Backend) createWishlist(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hasWishlist = true
	writeJSON(w, http.StatusCreated, map[string]any{"wishlistId": b.wishlistID})
}

func (b *Backend) wishlistItemsList(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rows := make([]map[string]any, 0, len(b.wishlistItems))
	for _, item := range b.wishlistItems {
		rows = append(rows, map[string]any{
			"wishlistItemsId": item.ID,
			"productId":       item.ProductID,
		})
	}
	writeJSON(w, http.StatusOK, rows)
}

func (b *Backend) addWishlistItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WishlistID int64 `json:"wishlistId"`
		ProductID  int64 `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.hasWishlist || body.WishlistID != b.wishlistID {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": fmt.Sprintf("unknown wishlist: %d", body.WishlistID)})
		return
	}
	b.nextID++
	item := WishRow{ID: b.nextID, ProductID: body.ProductID}
	b.wishlistItems = append(b.wishlistItems, item)
	writeJSON(w, http.StatusCreated, map[string]any{"wishlistItemsId": item.ID})
}

func (b *Backend) deleteWishlistItem(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailWishlistItemDelete {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "failed to remove wishlist item"})
		return
	}
	id := pathID(r, "id")
	for i, item := range b.wishlistItems {
		if item.ID == id {
			b.wishlistItems = append(b.wishlistItems[:i], b.wishlistItems[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "Wishlist item not found", http.StatusNotFound)
}

// ---- product handlers ----

func (b *Backend) productDetail(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := pathID(r, "id")
	if b.FailProductID != 0 && id == b.FailProductID {
		http.Error(w, "product lookup failed", http.StatusInternalServerError)
		return
	}
	product, ok := b.products[id]
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, productJSON(product))
}

func (b *Backend) searchProducts(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	query := strings.ToLower(r.URL.Query().Get("query"))
	rows := make([]map[string]any, 0)
	for _, product := range b.products {
		if query == "" || strings.Contains(strings.ToLower(product.Name), query) {
			rows = append(rows, productJSON(product))
		}
	}
	writeJSON(w, http.StatusOK, rows)
}

// ---- order handlers ----

func (b *Backend) createOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID          int64   `json:"userId"`
		TotalAmount     float64 `json:"totalAmount"`
		ShippingAddress string  `json:"shippingAddress"`
		OrderStatus     string  `json:"orderStatus"`
		PaymentMethod   string  `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailCreateOrder != "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": b.FailCreateOrder})
		return
	}
	b.nextID++
	order := OrderRow{
		ID:              b.nextID,
		UserID:          body.UserID,
		Total:           body.TotalAmount,
		ShippingAddress: body.ShippingAddress,
		Status:          body.OrderStatus,
		Payment:         body.PaymentMethod,
		PlacedAt:        "2024-01-15T10:00:00Z",
	}
	b.orders = append(b.orders, order)
	writeJSON(w, http.StatusCreated, map[string]any{
		"orderId":     order.ID,
		"totalAmount": order.Total,
		"orderStatus": order.Status,
	})
}

func (b *Backend) ordersByUser(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	userID := pathID(r, "userId")
	rows := make([]map[string]any, 0)
	for _, order := range b.orders {
		if order.UserID != userID {
			continue
		}
		rows = append(rows, map[string]any{
			"order_id":         order.ID,
			"total_amount":     order.Total,
			"order_status":     order.Status,
			"placed_at":        order.PlacedAt,
			"payment_method":   order.Payment,
			"shipping_address": order.ShippingAddress,
		})
	}
	if len(rows) == 0 {
		http.Error(w, "No orders found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (b *Backend) cancelOrder(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := pathID(r, "id")
	for i := range b.orders {
		if b.orders[i].ID == id {
			b.orders[i].Status = "CANCELLED"
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	http.Error(w, "Order not found", http.StatusNotFound)
}

// ---- seller handlers ----

func (b *Backend) sellerDashboard(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailDashboardSection {
		http.Error(w, "dashboard unavailable", http.StatusInternalServerError)
		return
	}

	notifications := make([]map[string]any, 0, len(b.notifications))
	for i, message := range b.notifications {
		notifications = append(notifications, map[string]any{
			"id":      i + 1,
			"message": message,
			"time":    "just now",
		})
	}

	alerts := make([]map[string]any, 0)
	for _, product := range b.products {
		if product.Quantity < lowStockThreshold {
			alerts = append(alerts, map[string]any{
				"productId":    product.ID,
				"productName":  product.Name,
				"currentStock": product.Quantity,
			})
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"stats": map[string]any{
			"todaySales":     b.todaySales,
			"totalOrders":    len(b.sellerOrders),
			"activeProducts": len(b.products),
			"pendingPayout":  b.pendingPayout,
		},
		"notifications":  notifications,
		"lowStockAlerts": alerts,
	})
}

func (b *Backend) sellerProducts(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailProductsSection {
		http.Error(w, "products unavailable", http.StatusInternalServerError)
		return
	}
	rows := make([]map[string]any, 0, len(b.products))
	for _, product := range b.products {
		rows = append(rows, productJSON(product))
	}
	writeJSON(w, http.StatusOK, rows)
}

func (b *Backend) createProduct(w http.ResponseWriter, r *http.Request) {
	var body productPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.products[b.nextID] = ProductRow{
		ID:       b.nextID,
		Name:     body.ProductName,
		Price:    body.ProductPrice,
		MRP:      body.ProductMrp,
		Quantity: body.ProductQuantity,
		Brand:    body.Brand,
		SellerID: body.UserID,
	}
	writeJSON(w, http.StatusCreated, productJSON(b.products[b.nextID]))
}

func (b *Backend) updateProduct(w http.ResponseWriter, r *http.Request) {
	var body productPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	id := pathID(r, "id")
	product, ok := b.products[id]
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	product.Name = body.ProductName
	product.Price = body.ProductPrice
	product.MRP = body.ProductMrp
	product.Quantity = body.ProductQuantity
	product.Brand = body.Brand
	b.products[id] = product
	writeJSON(w, http.StatusOK, productJSON(product))
}

func (b *Backend) deleteProduct(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := pathID(r, "id")
	if _, ok := b.products[id]; !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	delete(b.products, id)
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) recentSellerOrders(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailOrdersSection {
		http.Error(w, "orders unavailable", http.StatusInternalServerError)
		return
	}
	rows := make([]map[string]any, 0, len(b.sellerOrders))
	for _, order := range b.sellerOrders {
		rows = append(rows, map[string]any{
			"orderId":       order.ID,
			"orderDate":     order.Date,
			"productName":   order.ProductName,
			"totalAmount":   order.Total,
			"status":        order.Status,
			"paymentStatus": order.PaymentStatus,
		})
	}
	writeJSON(w, http.StatusOK, rows)
}

func (b *Backend) updateSellerOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailOrderStatus {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "status update rejected"})
		return
	}
	if body.Status != "SHIPPED" && body.Status != "DELIVERED" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid status"})
		return
	}
	id := pathID(r, "id")
	for i := range b.sellerOrders {
		if b.sellerOrders[i].ID == id {
			b.sellerOrders[i].Status = body.Status
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	http.Error(w, "Order not found", http.StatusNotFound)
}

// ---- helpers ----

type productPayload struct {
	ProductName        string  `json:"productName"`
	ProductDescription string  `json:"productDescription"`
	ProductMrp         float64 `json:"productMrp"`
	ProductPrice       float64 `json:"productPrice"`
	ProductQuantity    int     `json:"productQuantity"`
	Brand              string  `json:"brand"`
	CategoryID         int64   `json:"categoryId"`
	UserID             int64   `json:"userId"`
}

func productJSON(p ProductRow) map[string]any {
	return map[string]any{
		"productId":       p.ID,
		"productName":     p.Name,
		"productPrice":    p.Price,
		"productMrp":      p.MRP,
		"productQuantity": p.Quantity,
		"brand":           p.Brand,
		"imageUrl":        p.ImageURL,
		"userId":          p.SellerID,
	}
}

func pathID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
