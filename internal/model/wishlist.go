package model

type WishlistItem struct {
	ID        string
	ProductID int64
}

type WishlistEntry struct {
	WishlistItem
	ProductName  string
	ProductPrice float64
	ImageURL     string
}
