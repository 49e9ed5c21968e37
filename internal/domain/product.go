package domain

// Product is one catalog entry. The catalog is read-only: products are never
// mutated after load, so values are shared freely between renderer and cart.
type Product struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Tagline   string   `json:"tagline"`
	Price     int64    `json:"price"` // minor currency units
	CompareAt int64    `json:"compareAt,omitempty"`
	Image     string   `json:"image"`
	Sizes     []string `json:"sizes"`
	Colors    []string `json:"colors"`
	Category  string   `json:"category"`
	Newest    bool     `json:"newest,omitempty"`
}

// OnSale reports whether the product has a strikethrough price.
func (p Product) OnSale() bool {
	return p.CompareAt > 0 && p.CompareAt > p.Price
}

// SavePercent is the rounded discount percentage, 0 when not on sale.
func (p Product) SavePercent() int {
	if !p.OnSale() {
		return 0
	}
	return int(float64(100)*(1-float64(p.Price)/float64(p.CompareAt)) + 0.5)
}
