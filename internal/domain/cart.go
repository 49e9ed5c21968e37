package domain

// LineItem is one cart entry: a product reference plus the title and price
// captured at first add. Price is deliberately not re-synced to later catalog
// changes.
type LineItem struct {
	ProductID int64  `json:"id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"qty"`
}
