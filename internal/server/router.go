package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/umarsaeed-beep/clothing-project/internal/catalog"
)

// Options wires the router's dependencies.
type Options struct {
	Catalog        catalog.Repository
	ContactLog     *RecordLog
	OrderLog       *RecordLog
	StaticDir      string // serve a frontend from here when non-empty
	RequestTimeout time.Duration
	Log            *logrus.Logger
}

// NewRouter builds the full HTTP surface of the service.
func NewRouter(opts Options) chi.Router {
	products := NewProductsHandler(opts.Catalog)
	contact := NewContactHandler(opts.ContactLog, opts.Log)
	orders := NewOrderHandler(opts.OrderLog, opts.Log)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(opts.Log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", products.List)
		r.Get("/products/{id}", products.Get)
		r.Post("/contact", contact.Submit)
		r.Post("/cart", orders.Submit)
	})

	if opts.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
	}

	return r
}
