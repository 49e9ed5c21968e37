package cart

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

// Cart is an ordered collection of line items, one per product, insertion
// order preserved. Every mutation persists a full snapshot through the store;
// a failed save is logged and swallowed so the in-memory state stays usable
// offline.
type Cart struct {
	items []domain.LineItem
	store Store
	log   *logrus.Logger
}

// New loads the persisted cart from the store. A load error starts an empty
// cart rather than failing, matching the rest of the degrade-don't-fail
// behavior of the client.
func New(ctx context.Context, store Store, log *logrus.Logger) *Cart {
	c := &Cart{store: store, log: log}
	items, err := store.Load(ctx)
	if err != nil {
		log.WithError(err).Warn("could not load persisted cart, starting empty")
		return c
	}
	c.items = items
	return c
}

// Add increments the line for the product, or appends a new line with
// quantity 1 capturing the product's current title and price.
func (c *Cart) Add(ctx context.Context, p domain.Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			c.persist(ctx)
			return
		}
	}
	c.items = append(c.items, domain.LineItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Quantity:  1,
	})
	c.persist(ctx)
}

// ChangeQuantity adds delta to the line's quantity. A result of zero or below
// removes the line entirely. Unknown product IDs are a no-op.
func (c *Cart) ChangeQuantity(ctx context.Context, productID int64, delta int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity += delta
			if c.items[i].Quantity <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			}
			c.persist(ctx)
			return
		}
	}
}

// Remove deletes the line for the product if present.
func (c *Cart) Remove(ctx context.Context, productID int64) {
	for i, it := range c.items {
		if it.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist(ctx)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) {
	c.items = nil
	c.persist(ctx)
}

// TotalCount is the sum of all line quantities.
func (c *Cart) TotalCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity across all lines.
func (c *Cart) Subtotal() int64 {
	var s int64
	for _, it := range c.items {
		s += it.Price * int64(it.Quantity)
	}
	return s
}

// Contains reports whether a line exists for the product.
func (c *Cart) Contains(productID int64) bool {
	for _, it := range c.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) persist(ctx context.Context) {
	if err := c.store.Save(ctx, c.items); err != nil {
		c.log.WithError(err).Warn("cart save failed, in-memory state kept")
	}
}
