package model

import "time"

type Order struct {
	ID              int64
	UserID          int64
	TotalAmount     float64
	ShippingAddress string
	Status          OrderStatus
	PaymentMethod   PaymentMethod
	PlacedAt        time.Time
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentCOD PaymentMethod = "COD"
	PaymentUPI PaymentMethod = "UPI"
)
