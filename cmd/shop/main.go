package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/umarsaeed-beep/clothing-project/internal/cart"
	"github.com/umarsaeed-beep/clothing-project/internal/catalog"
	"github.com/umarsaeed-beep/clothing-project/internal/config"
	"github.com/umarsaeed-beep/clothing-project/internal/contact"
	"github.com/umarsaeed-beep/clothing-project/internal/shop"
)

var printer = message.NewPrinter(language.English)

func fmtPrice(n int64) string {
	return printer.Sprintf("Rs %d", n)
}

func main() {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel) // keep command output clean

	app := &cli.App{
		Name:  "shop",
		Usage: "storefront client: browse the catalog, manage the cart, check out",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "show the catalog",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "filter by title/tagline"},
					&cli.StringFlag{Name: "sort", Value: catalog.SortRecommend,
						Usage: "recommend | priceLow | priceHigh | nameAZ | nameZA"},
				},
				Action: func(c *cli.Context) error {
					ctrl := newController(c, log)
					for _, p := range ctrl.Render(c.String("query"), c.String("sort")) {
						line := fmt.Sprintf("%3d  %-14s  %-22s  %s", p.ID, fmtPrice(p.Price), p.Title, p.Tagline)
						if p.OnSale {
							line += fmt.Sprintf("  (was %s, save %d%%)", fmtPrice(p.CompareAt), p.SavePercent)
						}
						fmt.Println(line)
					}
					return nil
				},
			},
			{
				Name:      "add",
				Usage:     "add one unit of a product to the cart",
				ArgsUsage: "<product-id>",
				Action: func(c *cli.Context) error {
					id, err := parseID(c.Args().Get(0))
					if err != nil {
						return err
					}
					ctrl := newController(c, log)
					if err := ctrl.AddToCart(c.Context, id); err != nil {
						return err
					}
					fmt.Printf("added, cart now holds %d item(s)\n", ctrl.Cart.TotalCount())
					return nil
				},
			},
			{
				Name:      "qty",
				Usage:     "change a line's quantity by a delta; zero or below removes it",
				ArgsUsage: "<product-id> <delta>",
				Action: func(c *cli.Context) error {
					id, err := parseID(c.Args().Get(0))
					if err != nil {
						return err
					}
					delta, err := strconv.Atoi(c.Args().Get(1))
					if err != nil {
						return fmt.Errorf("delta must be an integer: %w", err)
					}
					ctrl := newController(c, log)
					ctrl.Cart.ChangeQuantity(c.Context, id, delta)
					printCart(ctrl)
					return nil
				},
			},
			{
				Name:      "remove",
				Usage:     "remove a line from the cart",
				ArgsUsage: "<product-id>",
				Action: func(c *cli.Context) error {
					id, err := parseID(c.Args().Get(0))
					if err != nil {
						return err
					}
					ctrl := newController(c, log)
					ctrl.Cart.Remove(c.Context, id)
					printCart(ctrl)
					return nil
				},
			},
			{
				Name:  "clear",
				Usage: "empty the cart",
				Action: func(c *cli.Context) error {
					ctrl := newController(c, log)
					ctrl.Cart.Clear(c.Context)
					fmt.Println("cart cleared")
					return nil
				},
			},
			{
				Name:  "cart",
				Usage: "show the cart",
				Action: func(c *cli.Context) error {
					printCart(newController(c, log))
					return nil
				},
			},
			{
				Name:  "checkout",
				Usage: "submit the cart; clears it locally whether or not the backend answers",
				Action: func(c *cli.Context) error {
					ctrl := newController(c, log)
					res := ctrl.Checkout.Checkout(c.Context, ctrl.Cart)
					fmt.Println(res.Message)
					if res.OrderID != "" {
						fmt.Printf("order id: %s\n", res.OrderID)
					}
					return nil
				},
			},
			{
				Name:  "contact",
				Usage: "send a contact message; saved locally when the backend is down",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "message", Required: true},
				},
				Action: func(c *cli.Context) error {
					ctrl := newController(c, log)
					res, err := ctrl.Contact.Submit(c.Context, c.String("name"), c.String("email"), c.String("message"))
					if err != nil {
						return err
					}
					fmt.Println(res.Message)
					return nil
				},
			},
			{
				Name:  "drafts",
				Usage: "show contact messages saved locally",
				Action: func(c *cli.Context) error {
					cfg := mustLoadConfig()
					drafts, err := contact.NewDraftLog(draftPath(cfg)).All(c.Context)
					if err != nil {
						return err
					}
					for _, d := range drafts {
						fmt.Printf("%s  %s <%s>: %s\n", d.Date.Format("2006-01-02 15:04"), d.Name, d.Email, d.Message)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newController(c *cli.Context, log *logrus.Logger) *shop.Controller {
	cfg := mustLoadConfig()

	var store cart.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		store = cart.NewRedisStore(client, cfg.Session)
	} else {
		store = cart.NewFileStore(filepath.Join(stateDir(cfg), "cart.json"))
	}

	ctrl := shop.NewController(c.Context, shop.Options{
		BaseURL:   cfg.ServerURL,
		Timeout:   cfg.RequestTimeout,
		CartStore: store,
		Drafts:    contact.NewDraftLog(draftPath(cfg)),
		Log:       log,
	})
	ctrl.LoadCatalog(c.Context)
	return ctrl
}

func mustLoadConfig() config.Client {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	return cfg
}

func stateDir(cfg config.Client) string {
	if cfg.StateDir != "" {
		return cfg.StateDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".clothing-shop"
	}
	return filepath.Join(home, ".clothing-shop")
}

func draftPath(cfg config.Client) string {
	return filepath.Join(stateDir(cfg), "contact_drafts.json")
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("product id must be a positive integer")
	}
	return id, nil
}

func printCart(ctrl *shop.Controller) {
	items := ctrl.Cart.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, it := range items {
		fmt.Printf("%3d  %-22s  %s x %d\n", it.ProductID, it.Title, fmtPrice(it.Price), it.Quantity)
	}
	fmt.Printf("subtotal: %s (%d items)\n", fmtPrice(ctrl.Cart.Subtotal()), ctrl.Cart.TotalCount())
}
