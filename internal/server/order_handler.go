package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

type OrderHandler struct {
	log      *RecordLog
	now      func() time.Time
	errorLog *logrus.Logger
}

func NewOrderHandler(log *RecordLog, errorLog *logrus.Logger) *OrderHandler {
	return &OrderHandler{log: log, now: time.Now, errorLog: errorLog}
}

type orderRequestDTO struct {
	Cart []domain.LineItem `json:"cart"`
}

type orderResponseDTO struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
}

// Submit accepts a submitted cart, mints an order ID, and appends the order
// to the orders log. An empty cart is still acknowledged; the client treats
// this endpoint as optional and clears locally either way.
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req orderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	var subtotal int64
	for _, it := range req.Cart {
		subtotal += it.Price * int64(it.Quantity)
	}

	order := domain.Order{
		ID:        uuid.New().String(),
		Items:     req.Cart,
		Subtotal:  subtotal,
		CreatedAt: h.now(),
	}
	if err := h.log.Append(order); err != nil {
		h.errorLog.WithError(err).Error("failed to append order")
		respondError(w, http.StatusInternalServerError, "internal_error", "could not save order")
		return
	}

	respondJSON(w, http.StatusOK, orderResponseDTO{
		Success: true,
		OrderID: order.ID,
	})
}
