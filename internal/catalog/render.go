package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

// Sort modes accepted by Render. Anything else behaves like SortRecommend.
const (
	SortRecommend = "recommend"
	SortPriceLow  = "priceLow"
	SortPriceHigh = "priceHigh"
	SortNameAZ    = "nameAZ"
	SortNameZA    = "nameZA"
)

// DisplayProduct is a catalog entry decorated with sale info for display.
type DisplayProduct struct {
	domain.Product
	OnSale      bool `json:"onSale"`
	SavePercent int  `json:"savePercent"`
}

// Render filters the catalog by a free-text query and orders it by sortMode.
// It is a pure function: the input slice is never mutated, so it can run on
// every keystroke without accumulating state.
func Render(products []domain.Product, query, sortMode string) []DisplayProduct {
	q := strings.ToLower(strings.TrimSpace(query))

	list := make([]DisplayProduct, 0, len(products))
	for _, p := range products {
		if q != "" {
			haystack := strings.ToLower(p.Title + " " + p.Tagline)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		list = append(list, DisplayProduct{
			Product:     p,
			OnSale:      p.OnSale(),
			SavePercent: p.SavePercent(),
		})
	}

	switch sortMode {
	case SortPriceLow:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case SortPriceHigh:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	case SortNameAZ:
		c := newCollator()
		sort.SliceStable(list, func(i, j int) bool {
			return c.CompareString(list[i].Title, list[j].Title) < 0
		})
	case SortNameZA:
		c := newCollator()
		sort.SliceStable(list, func(i, j int) bool {
			return c.CompareString(list[i].Title, list[j].Title) > 0
		})
	default:
		// recommend: keep input order
	}

	return list
}

func newCollator() *collate.Collator {
	return collate.New(language.English)
}
