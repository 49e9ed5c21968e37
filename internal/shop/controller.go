// Package shop is the storefront client: it owns the application state the
// UI works against (catalog, cart, submitters) so nothing is reached
// ambiently.
package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/umarsaeed-beep/clothing-project/internal/cart"
	"github.com/umarsaeed-beep/clothing-project/internal/catalog"
	"github.com/umarsaeed-beep/clothing-project/internal/checkout"
	"github.com/umarsaeed-beep/clothing-project/internal/contact"
	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

// Controller holds the whole client-side state for one session.
type Controller struct {
	products []domain.Product
	Cart     *cart.Cart
	Checkout *checkout.Submitter
	Contact  *contact.Submitter

	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

// Options wires a Controller.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	CartStore cart.Store
	Drafts    *contact.DraftLog
	Log       *logrus.Logger
}

func NewController(ctx context.Context, opts Options) *Controller {
	return &Controller{
		Cart:     cart.New(ctx, opts.CartStore, opts.Log),
		Checkout: checkout.NewSubmitter(opts.BaseURL, opts.Timeout, opts.Log),
		Contact:  contact.NewSubmitter(opts.BaseURL, opts.Timeout, opts.Drafts, opts.Log),
		baseURL:  opts.BaseURL,
		client:   &http.Client{Timeout: opts.Timeout},
		log:      opts.Log,
	}
}

// LoadCatalog fetches the products list from the backend. Any failure falls
// back to the built-in local catalog, so the storefront always has something
// to show.
func (c *Controller) LoadCatalog(ctx context.Context) {
	products, err := c.fetchProducts(ctx)
	if err != nil {
		c.log.WithError(err).Debug("products endpoint unavailable, using local catalog")
		c.products = catalog.FallbackProducts()
		return
	}
	c.products = products
}

// Products returns the loaded catalog.
func (c *Controller) Products() []domain.Product {
	return c.products
}

// Render filters and sorts the loaded catalog for display.
func (c *Controller) Render(query, sortMode string) []catalog.DisplayProduct {
	return catalog.Render(c.products, query, sortMode)
}

// AddToCart adds one unit of the product to the cart.
func (c *Controller) AddToCart(ctx context.Context, productID int64) error {
	for _, p := range c.products {
		if p.ID == productID {
			c.Cart.Add(ctx, p)
			return nil
		}
	}
	return fmt.Errorf("no product with id %d", productID)
}

func (c *Controller) fetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build products request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("products request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("products endpoint returned status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}
