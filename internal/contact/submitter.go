package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"

	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

// ErrEmptyField rejects a submission before any network attempt.
var ErrEmptyField = errors.New("all fields are required")

// Result reports where the message ended up.
type Result struct {
	Sent         bool
	SavedLocally bool
	Message      string
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submitter posts contact messages to the backend, falling back to the local
// draft log when the call fails or the breaker is open.
type Submitter struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[struct{}]
	drafts  *DraftLog
	now     func() time.Time
	log     *logrus.Logger
}

func NewSubmitter(baseURL string, timeout time.Duration, drafts *DraftLog, log *logrus.Logger) *Submitter {
	return &Submitter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:    "contact-endpoint",
			Timeout: 30 * time.Second,
		}),
		drafts: drafts,
		now:    time.Now,
		log:    log,
	}
}

// Submit validates the three fields, then tries the backend. On any remote
// failure the message is appended to the draft log with a generated
// timestamp; only validation errors are returned to the caller.
func (s *Submitter) Submit(ctx context.Context, name, email, message string) (Result, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return Result{}, ErrEmptyField
	}

	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.post(ctx, contactRequest{Name: name, Email: email, Message: message})
	})
	if err == nil {
		return Result{Sent: true, Message: "Message sent. Thank you!"}, nil
	}

	s.log.WithError(err).Info("contact endpoint unavailable, saving draft locally")
	rec := domain.ContactRecord{Name: name, Email: email, Message: message, Date: s.now()}
	if errAppend := s.drafts.Append(ctx, rec); errAppend != nil {
		s.log.WithError(errAppend).Warn("could not save contact draft")
	}
	return Result{SavedLocally: true, Message: "Saved locally (no backend)."}, nil
}

func (s *Submitter) post(ctx context.Context, reqBody contactRequest) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal contact: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/contact", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("contact request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("contact endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
