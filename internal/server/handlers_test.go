package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umarsaeed-beep/clothing-project/internal/catalog"
	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

type mockRepo struct {
	products []domain.Product
	err      error
}

func (m *mockRepo) GetAllProducts(context.Context) ([]domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockRepo) GetProduct(_ context.Context, id int64) (domain.Product, error) {
	if m.err != nil {
		return domain.Product{}, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, catalog.ErrNotFound
}

func (m *mockRepo) Close() error { return nil }

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestRouter(t *testing.T, repo catalog.Repository) http.Handler {
	t.Helper()
	dir := t.TempDir()
	return NewRouter(Options{
		Catalog:        repo,
		ContactLog:     NewRecordLog(filepath.Join(dir, "contacts.json")),
		OrderLog:       NewRecordLog(filepath.Join(dir, "orders.json")),
		RequestTimeout: 5 * time.Second,
		Log:            testLogger(),
	})
}

func TestGetProducts_ReturnsCatalogVerbatim(t *testing.T) {
	repo := &mockRepo{products: []domain.Product{
		{ID: 1, Title: "Casual Shirt", Price: 3299},
		{ID: 2, Title: "Blue Jeans", Price: 4599, CompareAt: 5999},
	}}
	router := newTestRouter(t, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, repo.products, got)
}

func TestGetProducts_RepositoryFailureIsGeneric500(t *testing.T) {
	router := newTestRouter(t, &mockRepo{err: errors.New("file missing")})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "internal_error", resp.Code)
}

func TestGetProduct_ByID(t *testing.T) {
	repo := &mockRepo{products: []domain.Product{{ID: 2, Title: "Blue Jeans", Price: 4599}}}
	router := newTestRouter(t, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var p domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "Blue Jeans", p.Title)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitContact_AppendsRecordWithServerTimestamp(t *testing.T) {
	contactLog := NewRecordLog(filepath.Join(t.TempDir(), "contacts.json"))
	h := NewContactHandler(contactLog, testLogger())
	h.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	body := bytes.NewBufferString(`{"name":"Jo","email":"jo@e.co","message":"Hi"}`)
	rec := httptest.NewRecorder()
	h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/contact", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp contactResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Contact saved successfully!", resp.Message)

	n, err := contactLog.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSubmitContact_InvalidJSON(t *testing.T) {
	h := NewContactHandler(NewRecordLog(filepath.Join(t.TempDir(), "contacts.json")), testLogger())

	rec := httptest.NewRecorder()
	h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitContact_ConcurrentSubmissionsAllStored(t *testing.T) {
	contactLog := NewRecordLog(filepath.Join(t.TempDir(), "contacts.json"))
	router := NewRouter(Options{
		Catalog:        &mockRepo{},
		ContactLog:     contactLog,
		OrderLog:       NewRecordLog(filepath.Join(t.TempDir(), "orders.json")),
		RequestTimeout: 5 * time.Second,
		Log:            testLogger(),
	})

	const submissions = 10
	var wg sync.WaitGroup
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := bytes.NewBufferString(`{"name":"Jo","email":"jo@e.co","message":"Hi"}`)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", body))
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	n, err := contactLog.Len()
	require.NoError(t, err)
	assert.Equal(t, submissions, n)
}

func TestSubmitOrder_AcknowledgesAndStores(t *testing.T) {
	orderLog := NewRecordLog(filepath.Join(t.TempDir(), "orders.json"))
	h := NewOrderHandler(orderLog, testLogger())

	body := bytes.NewBufferString(`{"cart":[
		{"id":1,"title":"Casual Shirt","price":3299,"qty":2},
		{"id":2,"title":"Blue Jeans","price":4599,"qty":1}
	]}`)
	rec := httptest.NewRecorder()
	h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/cart", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp orderResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.OrderID)

	n, err := orderLog.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &mockRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
