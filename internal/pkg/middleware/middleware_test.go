package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocollect/internal/domain"
	"gocollect/internal/pkg/cache"
	"gocollect/internal/pkg/logger"
	"gocollect/internal/pkg/middleware"
	"gocollect/internal/pkg/token"
)

func echoUser(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetUserClaimsFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(claims.UserID + ":" + string(claims.Role)))
	})
}

func TestAuthMiddleware(t *testing.T) {
	tokens := token.NewService("segredo", time.Hour)
	handler := middleware.NewAuthMiddleware(tokens, logger.NewNop())(echoUser(t))

	valid, err := tokens.GenerateToken("u1", string(domain.RoleUser))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "sem header", header: "", status: http.StatusUnauthorized},
		{name: "esquema errado", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "token inválido", header: "Bearer abc.def.ghi", status: http.StatusUnauthorized},
		{name: "token válido", header: "Bearer " + valid, status: http.StatusOK, body: "u1:user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/collections", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"category":"UNAUTHORIZED"`)
			}
		})
	}
}

func TestPermissionMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	handler := middleware.PermissionMiddleware(logger.NewNop(), domain.RoleAdmin)(ok)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/collections", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = req.WithContext(middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: "u1", Role: domain.RoleUser}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = req.WithContext(middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: "adm", Role: domain.RoleAdmin}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := cache.NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := middleware.RateLimiter(client, 2, time.Minute, logger.NewNop())(ok)

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1111").Code)
	rec := do("10.0.0.1:2222")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = do("10.0.0.1:3333")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, do("10.0.0.2:1111").Code, "outro IP tem a própria janela")

	mr.FastForward(time.Minute)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:4444").Code)
}

func TestRateLimiter_FailOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := cache.NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}))
	mr.Close()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := middleware.RateLimiter(client, 1, time.Minute, logger.NewNop())(ok)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
