package model

type CartItem struct {
	ID           string // synthetic for buy-now lines, server-assigned otherwise
	ProductID    int64
	ProductName  string
	ProductPrice float64
	Quantity     int
	ImageURL     string
}

func (i CartItem) LineTotal() float64 {
	return i.ProductPrice * float64(i.Quantity)
}

func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}
