package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"handiva/internal/config"
	"handiva/internal/services"
	"handiva/internal/storage"
	"handiva/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(eventType string, payload any) error {
	args := m.Called(eventType, payload)
	return args.Error(0)
}

func testConfig(t *testing.T) config.Config {
	return config.Config{
		Port:           "0",
		DatabaseURL:    "memory://",
		RequestTimeout: time.Second,
		StaticDir:      t.TempDir(),
	}
}

func openMemory(t *testing.T) *storage.Storage {
	store, err := storage.Open(context.Background(), "memory://")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close(context.Background()) })
	return store
}

func TestNewAppServesAPIAndStatic(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.StaticDir, "index.html"), []byte("<h1>Handiva</h1>"), 0o644))

	app := newApp(cfg, openMemory(t), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":"healthy"`)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Handiva")
}

func TestNewAppPublishesEvents(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("Publish", services.EventProductCreated, mock.Anything).Return(nil).Once()
	publisher.On("Publish", services.EventContactSubmitted, mock.Anything).Return(nil).Once()

	app := newApp(testConfig(t), openMemory(t), publisher)

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"title":"Shawl","price":500}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/tribal-contact", strings.NewReader(`{"name":"Ravi","message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out["id"])
	publisher.AssertExpectations(t)
}

func TestLogLiaisonEvent(t *testing.T) {
	assert.NoError(t, logLiaisonEvent(rabbitmq.Event{Type: services.EventContactSubmitted, Payload: []byte(`{"id":"1"}`)}))
	assert.NoError(t, logLiaisonEvent(rabbitmq.Event{Type: services.EventProductCreated}))
}
