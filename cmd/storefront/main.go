package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/diyasingla2299/storefront/internal/api"
	"github.com/diyasingla2299/storefront/internal/saga"
	"github.com/diyasingla2299/storefront/internal/session"
	"github.com/diyasingla2299/storefront/internal/workflow"
)

// Walks a live backend through the main storefront screens using the
// credentials from the environment (or a .env file).
func main() {
	_ = godotenv.Load()

	baseURL := os.Getenv("STOREFRONT_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8888"
	}

	store := session.MapStorage{
		"token":  os.Getenv("STOREFRONT_TOKEN"),
		"userId": os.Getenv("STOREFRONT_USER_ID"),
		"role":   os.Getenv("STOREFRONT_ROLE"),
		"email":  os.Getenv("STOREFRONT_EMAIL"),
	}

	sess, err := session.Load(store)
	if err != nil {
		log.Fatalf("load session: %v", err)
	}
	if !sess.LoggedIn() {
		log.Fatal("set STOREFRONT_TOKEN and STOREFRONT_USER_ID to run the demo")
	}

	client := api.NewClient(baseURL, sess.Token)
	ctx := context.Background()

	catalog := workflow.NewCatalog(client, sess)
	if query := os.Getenv("STOREFRONT_QUERY"); query != "" {
		products, err := catalog.Suggest(ctx, query)
		if err != nil {
			log.Fatalf("search: %v", err)
		}
		fmt.Printf("%d suggestions for %q\n", len(products), query)
		for _, p := range products {
			fmt.Printf("  #%d %s %.2f (%d%% off)\n", p.ID, p.Name, p.Price, p.DiscountPercent())
		}
	}

	if sess.CanSell() {
		seller := workflow.NewSeller(client, sess)
		dashboard, err := seller.Refresh(ctx)
		if err != nil {
			log.Fatalf("seller dashboard: %v", err)
		}
		fmt.Printf("today's sales: %.2f, pending payout: %.2f\n",
			dashboard.Stats.TodaySales, dashboard.Stats.PendingPayout)
		fmt.Printf("%d products, %d recent orders, %d low-stock alerts\n",
			len(dashboard.Products), len(dashboard.RecentOrders), len(dashboard.LowStockAlerts))
		for name, err := range dashboard.SectionErrs {
			fmt.Printf("  section %s unavailable: %v\n", name, err)
		}
		return
	}

	sagas := saga.NewCoordinator()
	cart := workflow.NewCart(client, sess, sagas)
	wishlist := workflow.NewWishlist(client, sess, sagas)
	orders := workflow.NewOrders(client, sess)

	items, err := cart.Items(ctx)
	if err != nil {
		log.Fatalf("cart: %v", err)
	}
	fmt.Printf("cart: %d items, total %.2f\n", len(items), cart.Total(items))
	for _, item := range items {
		fmt.Printf("  %s x%d %.2f\n", item.ProductName, item.Quantity, item.LineTotal())
	}

	entries, err := wishlist.Items(ctx)
	if err != nil {
		log.Fatalf("wishlist: %v", err)
	}
	fmt.Printf("wishlist: %d items\n", len(entries))
	for _, entry := range entries {
		fmt.Printf("  %s %.2f\n", entry.ProductName, entry.ProductPrice)
	}

	history, err := orders.History(ctx)
	if err != nil {
		log.Fatalf("orders: %v", err)
	}
	fmt.Printf("orders: %d\n", len(history))
	for _, order := range history {
		fmt.Printf("  #%d %s %.2f (%s)\n", order.ID, order.PlacedAt.Format("2006-01-02"), order.TotalAmount, order.Status)
	}
}
