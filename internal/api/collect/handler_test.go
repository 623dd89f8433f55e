package collect_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocollect/internal/api/collect"
	"gocollect/internal/domain"
	apperror "gocollect/internal/errors"
	"gocollect/internal/pkg/logger"
	"gocollect/internal/pkg/middleware"
	"gocollect/internal/pkg/testutil"
	"gocollect/internal/repository/collectrepo"
	"gocollect/internal/service/collectservice"
)

// fakeCatalog conhece apenas os SKUs listados.
type fakeCatalog map[string]bool

func (f fakeCatalog) Resolve(_ context.Context, skuID string) (domain.SkuInfo, error) {
	if !f[skuID] {
		return domain.SkuInfo{}, apperror.NewSkuNotFoundError(skuID)
	}
	return domain.SkuInfo{ID: skuID, Title: "Produto " + skuID}, nil
}

func newServer(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.NewSQLiteDB(t, collectrepo.Model())
	clock := testutil.NewClock(time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC))
	repo := collectrepo.NewCollectRepository(db, 5*time.Second, logger.NewNop()).WithClock(clock.Now)
	svc := collectservice.NewService(repo, logger.NewNop(), collectservice.WithClock(clock.Now))
	h := collect.NewHandler(svc, fakeCatalog{"A": true, "B": true, "C": true}, logger.NewNop())

	r := chi.NewRouter()
	// Simula o middleware de autenticação a partir do header X-User.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if user := req.Header.Get("X-User"); user != "" {
				req = req.WithContext(middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: user, Role: domain.RoleUser}))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/v1/collections", h.Routes)
	r.Route("/v1/skus", h.SkuRoutes)
	return r
}

func do(t *testing.T, srv http.Handler, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User", user)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestAddHandler(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodPost, "/v1/collections", "u1", `{"sku_id":"A","collect_group":"casa"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[domain.Collect](t, rec)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, "A", created.SkuID)
	assert.Equal(t, domain.StatusActive, created.Status)
	assert.Equal(t, "casa", *created.CollectGroup)

	rec = do(t, srv, http.MethodPost, "/v1/collections", "u1", `{"sku_id":"A"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", decode[domain.ErrorResponse](t, rec).Category)
}

func TestAddHandler_Rejections(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name string
		user string
		body string
		want int
	}{
		{name: "sem usuário", body: `{"sku_id":"A"}`, want: http.StatusUnauthorized},
		{name: "sem sku", user: "u1", body: `{}`, want: http.StatusBadRequest},
		{name: "json inválido", user: "u1", body: `{`, want: http.StatusBadRequest},
		{name: "sku inexistente", user: "u1", body: `{"sku_id":"Z"}`, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/v1/collections", tt.user, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestToggleAndIsCollected(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodPost, "/v1/collections/toggle", "u1", `{"sku_id":"B"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StatusActive, decode[domain.Collect](t, rec).Status)

	rec = do(t, srv, http.MethodGet, "/v1/collections/skus/B", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[map[string]any](t, rec)["collected"].(bool))

	rec = do(t, srv, http.MethodPost, "/v1/collections/toggle", "u1", `{"sku_id":"B"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StatusCancelled, decode[domain.Collect](t, rec).Status)

	rec = do(t, srv, http.MethodGet, "/v1/collections/skus/B", "u1", "")
	assert.False(t, decode[map[string]any](t, rec)["collected"].(bool))
}

func TestBatchAddHandler(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodPost, "/v1/collections/batch", "u1", `{"sku_ids":["A","B","B"],"collect_group":"lote"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.EqualValues(t, 2, decode[map[string]any](t, rec)["count"])

	rec = do(t, srv, http.MethodPost, "/v1/collections/batch", "u1", `{"sku_ids":["C","Z"]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodGet, "/v1/collections/count", "u1", "")
	assert.EqualValues(t, 2, decode[map[string]any](t, rec)["count"])
}

func TestPatchHandlers_NotCollectedIs404(t *testing.T) {
	srv := newServer(t)

	for _, tc := range []struct{ path, body string }{
		{"/v1/collections/skus/A/note", `{"note":"x"}`},
		{"/v1/collections/skus/A/top", `{"is_top":true}`},
		{"/v1/collections/skus/A/sort", `{"sort_number":1}`},
	} {
		rec := do(t, srv, http.MethodPatch, tc.path, "u1", tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.path)
	}
}

func TestPatchHandlers_UpdateAndOrder(t *testing.T) {
	srv := newServer(t)

	for _, sku := range []string{"A", "B", "C"} {
		require.Equal(t, http.StatusCreated, do(t, srv, http.MethodPost, "/v1/collections", "u1", `{"sku_id":"`+sku+`"}`).Code)
	}

	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPatch, "/v1/collections/skus/C/top", "u1", `{"is_top":true}`).Code)
	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPatch, "/v1/collections/skus/A/sort", "u1", `{"sort_number":1}`).Code)
	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPatch, "/v1/collections/skus/B/sort", "u1", `{"sort_number":2}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPatch, "/v1/collections/skus/B/sort", "u1", `{"sort_number":-1}`).Code)
	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPatch, "/v1/collections/skus/B/note", "u1", `{"note":"presente"}`).Code)

	rec := do(t, srv, http.MethodGet, "/v1/collections", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]domain.Collect](t, rec)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{list[0].SkuID, list[1].SkuID, list[2].SkuID})
	assert.Equal(t, "presente", *list[2].Note)

	rec = do(t, srv, http.MethodGet, "/v1/collections/top", "u1", "")
	assert.Len(t, decode[[]domain.Collect](t, rec), 1)
}

func TestCancelRestoreRemove(t *testing.T) {
	srv := newServer(t)

	require.Equal(t, http.StatusCreated, do(t, srv, http.MethodPost, "/v1/collections", "u1", `{"sku_id":"A"}`).Code)

	rec := do(t, srv, http.MethodPost, "/v1/collections/skus/A/cancel", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StatusCancelled, decode[domain.Collect](t, rec).Status)

	rec = do(t, srv, http.MethodGet, "/v1/collections?status=cancelled", "u1", "")
	assert.Len(t, decode[[]domain.Collect](t, rec), 1)
	rec = do(t, srv, http.MethodGet, "/v1/collections?status=active", "u1", "")
	assert.JSONEq(t, "[]", rec.Body.String())
	rec = do(t, srv, http.MethodGet, "/v1/collections/count?status=active", "u1", "")
	assert.EqualValues(t, 0, decode[map[string]any](t, rec)["count"])

	rec = do(t, srv, http.MethodPost, "/v1/collections/skus/A/restore", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StatusActive, decode[domain.Collect](t, rec).Status)

	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodDelete, "/v1/collections/skus/A", "u1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodDelete, "/v1/collections/skus/A", "u1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodPost, "/v1/collections/skus/A/cancel", "u1", "").Code)
}

func TestListHandler_InvalidStatus(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodGet, "/v1/collections?status=deleted", "u1", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[domain.ErrorResponse](t, rec).Category)
}

func TestListHandler_GroupFilters(t *testing.T) {
	srv := newServer(t)

	do(t, srv, http.MethodPost, "/v1/collections", "u1", `{"sku_id":"A","collect_group":"casa"}`)
	do(t, srv, http.MethodPost, "/v1/collections", "u1", `{"sku_id":"B"}`)

	rec := do(t, srv, http.MethodGet, "/v1/collections?group=casa", "u1", "")
	casa := decode[[]domain.Collect](t, rec)
	require.Len(t, casa, 1)
	assert.Equal(t, "A", casa[0].SkuID)

	rec = do(t, srv, http.MethodGet, "/v1/collections?ungrouped=true", "u1", "")
	none := decode[[]domain.Collect](t, rec)
	require.Len(t, none, 1)
	assert.Equal(t, "B", none[0].SkuID)

	rec = do(t, srv, http.MethodGet, "/v1/collections/groups", "u1", "")
	groups := decode[[]domain.GroupCount](t, rec)
	assert.Equal(t, []domain.GroupCount{{Name: "casa", Count: 1}}, groups)
}

func TestSkuRoutes(t *testing.T) {
	srv := newServer(t)

	do(t, srv, http.MethodPost, "/v1/collections", "u1", `{"sku_id":"A"}`)
	do(t, srv, http.MethodPost, "/v1/collections", "u2", `{"sku_id":"A"}`)
	do(t, srv, http.MethodPost, "/v1/collections", "u2", `{"sku_id":"B"}`)

	rec := do(t, srv, http.MethodGet, "/v1/skus/A/collections/count", "u1", "")
	assert.EqualValues(t, 2, decode[map[string]any](t, rec)["count"])

	rec = do(t, srv, http.MethodGet, "/v1/skus/popular?limit=1", "u1", "")
	popular := decode[[]domain.SkuCount](t, rec)
	assert.Equal(t, []domain.SkuCount{{SkuID: "A", CollectCount: 2}}, popular)

	rec = do(t, srv, http.MethodGet, "/v1/skus/popular?limit=abc", "u1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsHandler(t *testing.T) {
	srv := newServer(t)

	do(t, srv, http.MethodPost, "/v1/collections", "u1", `{"sku_id":"A"}`)
	do(t, srv, http.MethodPost, "/v1/collections", "u1", `{"sku_id":"B"}`)
	do(t, srv, http.MethodPost, "/v1/collections/skus/B/hide", "u1", "")

	rec := do(t, srv, http.MethodGet, "/v1/collections/stats", "u1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.UserStatistics{Total: 2, Active: 1, Hidden: 1}, decode[domain.UserStatistics](t, rec))
}

func TestNoteLengthLimit(t *testing.T) {
	srv := newServer(t)
	maxNote := strings.Repeat("a", 5000)
	tooLong := strings.Repeat("a", 5001)

	rec := do(t, srv, http.MethodPost, "/v1/collections", "u1", `{"sku_id":"A","note":"`+maxNote+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, *decode[domain.Collect](t, rec).Note, 5000)

	rec = do(t, srv, http.MethodPost, "/v1/collections/toggle", "u1", `{"sku_id":"B","note":"`+tooLong+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPatch, "/v1/collections/skus/A/note", "u1", `{"note":"`+maxNote+`"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, srv, http.MethodPatch, "/v1/collections/skus/A/note", "u1", `{"note":"`+tooLong+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[domain.ErrorResponse](t, rec).Category)
}

func TestUserIDLengthLimit(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodPost, "/v1/collections", strings.Repeat("u", 32), `{"sku_id":"A"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, srv, http.MethodPost, "/v1/collections", strings.Repeat("u", 33), `{"sku_id":"A"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[domain.ErrorResponse](t, rec).Category)
}
