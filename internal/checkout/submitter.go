package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"

	"github.com/umarsaeed-beep/clothing-project/internal/cart"
	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

// Result describes how a checkout concluded. The cart is empty afterwards in
// either case; Confirmed only changes the message shown to the user.
type Result struct {
	Confirmed bool
	OrderID   string
	Message   string
}

type orderRequest struct {
	Cart []domain.LineItem `json:"cart"`
}

type orderAck struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
}

// Submitter posts carts to the backend order endpoint. Remote failures trip a
// circuit breaker so a dead backend degrades to the instant local path
// instead of a timeout on every attempt.
type Submitter struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[orderAck]
	log     *logrus.Logger
}

func NewSubmitter(baseURL string, timeout time.Duration, log *logrus.Logger) *Submitter {
	return &Submitter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[orderAck](gobreaker.Settings{
			Name:    "order-endpoint",
			Timeout: 30 * time.Second,
		}),
		log: log,
	}
}

// Checkout submits the cart and clears it. A confirmed submission and an
// unreachable backend both end with an empty cart; only the reported message
// differs. This demo flow never surfaces a checkout failure to the caller.
func (s *Submitter) Checkout(ctx context.Context, c *cart.Cart) Result {
	items := c.Items()

	ack, err := s.breaker.Execute(func() (orderAck, error) {
		return s.postOrder(ctx, items)
	})

	c.Clear(ctx)

	if err != nil {
		s.log.WithError(err).Info("order endpoint unavailable, cart cleared locally")
		return Result{
			Confirmed: false,
			Message:   "Checkout demo — cart cleared locally.",
		}
	}

	return Result{
		Confirmed: true,
		OrderID:   ack.OrderID,
		Message:   "Order submitted (demo). Saved to server.",
	}
}

func (s *Submitter) postOrder(ctx context.Context, items []domain.LineItem) (orderAck, error) {
	body, err := json.Marshal(orderRequest{Cart: items})
	if err != nil {
		return orderAck{}, fmt.Errorf("failed to marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/cart", bytes.NewReader(body))
	if err != nil {
		return orderAck{}, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return orderAck{}, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return orderAck{}, fmt.Errorf("order endpoint returned status %d", resp.StatusCode)
	}

	var ack orderAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return orderAck{}, fmt.Errorf("failed to decode order ack: %w", err)
	}
	return ack, nil
}
