package model

type SellerStats struct {
	TodaySales     float64
	TotalOrders    int
	ActiveProducts int
	PendingPayout  float64
}

type Notification struct {
	ID      int64
	Message string
	Time    string
}

type LowStockAlert struct {
	ProductID    int64
	ProductName  string
	CurrentStock int
}

type SellerOrder struct {
	OrderID       int64
	OrderDate     string
	ProductName   string
	TotalAmount   float64
	Status        OrderStatus
	PaymentStatus string
}
