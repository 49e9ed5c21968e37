package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/umarsaeed-beep/clothing-project/internal/catalog"
)

type ProductsHandler struct {
	repo catalog.Repository
	sfg  singleflight.Group // collapses concurrent catalog reads
}

func NewProductsHandler(repo catalog.Repository) *ProductsHandler {
	return &ProductsHandler{repo: repo}
}

// List returns the catalog verbatim as a JSON array. Read or parse failures
// surface as a generic 500; the client falls back to its built-in list.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	v, err, _ := h.sfg.Do("products", func() (interface{}, error) {
		return h.repo.GetAllProducts(r.Context())
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "could not load products")
		return
	}

	respondJSON(w, http.StatusOK, v)
}

// Get returns one product by its path ID.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "id must be a positive integer")
		return
	}

	p, err := h.repo.GetProduct(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "could not load product")
		return
	}

	respondJSON(w, http.StatusOK, p)
}
