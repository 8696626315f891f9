package model

import "math"

type Product struct {
	ID           int64
	Name         string
	Description  string
	Price        float64
	MRP          float64
	Quantity     int
	Brand        string
	CategoryID   int64
	ImageURL     string
	AvgRating    float64
	ReviewsCount int
	SellerID     int64
}

// DiscountPercent returns the rounded markdown from MRP, or 0 when the
// product is not discounted.
func (p Product) DiscountPercent() int {
	if p.MRP <= 0 || p.Price >= p.MRP {
		return 0
	}
	return int(math.Round((p.MRP - p.Price) / p.MRP * 100))
}
