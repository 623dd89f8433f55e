package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperror "gocollect/internal/errors"
	"gocollect/internal/pkg/catalog"
	"gocollect/internal/pkg/logger"
)

func newServer(t *testing.T, calls *int32, failing *atomic.Bool) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if failing.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		switch r.URL.Path {
		case "/v1/skus/sku-1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"sku-1","title":"Tênis de corrida","thumb":"https://cdn/x.jpg"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testBreaker() catalog.BreakerConfig {
	cfg := catalog.DefaultBreakerConfig()
	cfg.Name = "catalog-test"
	cfg.MinRequests = 3
	cfg.Timeout = time.Minute
	return cfg
}

func TestResolve_FoundAndNotFound(t *testing.T) {
	var calls int32
	var failing atomic.Bool
	srv := newServer(t, &calls, &failing)
	client := catalog.NewHTTPClient(srv.URL, time.Second, testBreaker(), logger.NewNop())

	info, err := client.Resolve(context.Background(), "sku-1")
	require.NoError(t, err)
	assert.Equal(t, "Tênis de corrida", info.Title)

	_, err = client.Resolve(context.Background(), "nao-existe")
	assert.True(t, errors.Is(err, apperror.ErrSkuNotFound))
	status, _, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestResolve_NotFoundDoesNotTripBreaker(t *testing.T) {
	var calls int32
	var failing atomic.Bool
	srv := newServer(t, &calls, &failing)
	client := catalog.NewHTTPClient(srv.URL, time.Second, testBreaker(), logger.NewNop())

	for i := 0; i < 10; i++ {
		_, err := client.Resolve(context.Background(), "nao-existe")
		require.True(t, errors.Is(err, apperror.ErrSkuNotFound))
	}
	assert.Equal(t, gobreaker.StateClosed, client.State())
}

func TestResolve_BreakerOpensOnServerErrors(t *testing.T) {
	var calls int32
	var failing atomic.Bool
	failing.Store(true)
	srv := newServer(t, &calls, &failing)
	client := catalog.NewHTTPClient(srv.URL, time.Second, testBreaker(), logger.NewNop())

	for i := 0; i < 3; i++ {
		_, err := client.Resolve(context.Background(), "sku-1")
		var internal *apperror.InternalError
		require.True(t, errors.As(err, &internal))
	}
	assert.Equal(t, gobreaker.StateOpen, client.State())

	before := atomic.LoadInt32(&calls)
	_, err := client.Resolve(context.Background(), "sku-1")
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, before, atomic.LoadInt32(&calls), "com o breaker aberto o catálogo não é chamado")
}
