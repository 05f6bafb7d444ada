package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/foodcatalog-backend/internal/auth"
	"github.com/heartmarshall/foodcatalog-backend/internal/config"
	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
	"github.com/heartmarshall/foodcatalog-backend/internal/metrics"
	"github.com/heartmarshall/foodcatalog-backend/internal/service/catalog"
	"github.com/heartmarshall/foodcatalog-backend/internal/transport/middleware"
	"github.com/heartmarshall/foodcatalog-backend/internal/transport/rest"
	"github.com/heartmarshall/foodcatalog-backend/pkg/ctxutil"
)

const testSecret = "router-test-secret-at-least-32-chars"

// stubStore serves a fixed catalog: one category and one food.
type stubStore struct{}

func (stubStore) Find(context.Context, domain.FoodFilter) ([]domain.Food, error) {
	return []domain.Food{stubFood()}, nil
}

func (stubStore) Count(context.Context, domain.FoodFilter) (int, error) { return 1, nil }

func (stubStore) GetByID(_ context.Context, id int64) (*domain.Food, error) {
	if id != 1 {
		return nil, domain.ErrNotFound
	}
	f := stubFood()
	return &f, nil
}

func (stubStore) Create(_ context.Context, fields domain.FoodFields) (*domain.Food, error) {
	f := stubFood()
	f.ID, f.Name = 2, fields.Name
	return &f, nil
}

func (stubStore) Update(_ context.Context, _ int64, fields domain.FoodFields) (*domain.Food, error) {
	f := stubFood()
	f.Name = fields.Name
	return &f, nil
}

func (stubStore) Delete(context.Context, int64) error { return nil }

type stubTypes struct{}

func (stubTypes) List(context.Context) ([]domain.FoodType, error) {
	return []domain.FoodType{{ID: 1, Name: "Dessert"}}, nil
}

func (stubTypes) GetByID(_ context.Context, id int64) (*domain.FoodType, error) {
	if id != 1 {
		return nil, domain.ErrNotFound
	}
	return &domain.FoodType{ID: 1, Name: "Dessert"}, nil
}

func (stubTypes) GetByName(_ context.Context, name string) (*domain.FoodType, error) {
	if name != "Dessert" {
		return nil, domain.ErrNotFound
	}
	return &domain.FoodType{ID: 1, Name: "Dessert"}, nil
}

type noTx struct{}

func (noTx) RunInTx(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }

func (noTx) RunInSnapshot(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func stubFood() domain.Food {
	return domain.Food{ID: 1, Name: "Flan", TypeID: 1, TypeName: "Dessert", Rating: decimal.Zero, NumberRating: decimal.Zero, Price: 100}
}

func testConfig() config.Config {
	return config.Config{
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS"},
		Catalog:   config.CatalogConfig{DefaultPageSize: 10, MaxPageSize: 100},
		Auth:      config.AuthConfig{JWTSecret: testSecret, JWTIssuer: "foodcatalog"},
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 1000},
		Metrics:   config.MetricsConfig{Enabled: true, Path: "/metrics", Namespace: "test"},
	}
}

func newTestRouter(t *testing.T, cfg config.Config) (http.Handler, *metrics.Collector) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	collector := metrics.NewCollector(cfg.Metrics.Namespace)
	svc := catalog.NewService(log, stubStore{}, stubTypes{}, noTx{}, collector, cfg.Catalog)

	deps := RouterDeps{
		Config:  cfg,
		Log:     log,
		Catalog: svc,
		Health:  rest.NewHealthHandler("test", rest.Check{Name: "database", Ping: func(context.Context) error { return nil }}),
		Tokens:  auth.NewJWTManager(testSecret, "foodcatalog"),
		Metrics: collector,
	}
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit)
		t.Cleanup(rl.Stop)
		deps.RateLimiter = rl
	}
	return NewRouter(deps), collector
}

func do(h http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	h, _ := newTestRouter(t, testConfig())

	tests := []struct {
		method, path string
		wantCode     int
	}{
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/foods", http.StatusOK},
		{http.MethodGet, "/api/foods?category=Dessert", http.StatusOK},
		{http.MethodGet, "/api/foods?category=Soup", http.StatusNotFound},
		{http.MethodGet, "/api/foods/newest", http.StatusOK},
		{http.MethodGet, "/api/foods/Newest", http.StatusOK},
		{http.MethodGet, "/api/foods/1", http.StatusOK},
		{http.MethodGet, "/api/foods/2", http.StatusNotFound},
		{http.MethodGet, "/api/foods/Search?kw=flan", http.StatusNotImplemented},
		{http.MethodGet, "/api/foods/getfood?id=1", http.StatusNotImplemented},
		{http.MethodGet, "/api/category", http.StatusOK},
		{http.MethodGet, "/api/category/1", http.StatusOK},
		{http.MethodGet, "/api/category/9", http.StatusNotFound},
		{http.MethodDelete, "/api/foods/1", http.StatusOK},
		{http.MethodPatch, "/api/foods/1", http.StatusMethodNotAllowed},
		{http.MethodGet, "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(h, tt.method, tt.path, "", nil)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_WritesOpenWhenAuthDisabled(t *testing.T) {
	h, _ := newTestRouter(t, testConfig())

	rec := do(h, http.MethodPost, "/api/foods", `{"Name":"Tart","TypeId":1,"Price":200}`, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"Name":"Tart"`)
}

func TestRouter_AdminGuard(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Enabled = true
	h, _ := newTestRouter(t, cfg)

	jwt := auth.NewJWTManager(testSecret, "foodcatalog")
	adminToken, err := jwt.GenerateToken("ops", ctxutil.RoleAdmin, time.Hour)
	require.NoError(t, err)
	viewerToken, err := jwt.GenerateToken("reader", "viewer", time.Hour)
	require.NoError(t, err)

	body := `{"Name":"Tart","TypeId":1,"Price":200}`

	tests := []struct {
		name     string
		method   string
		path     string
		header   map[string]string
		wantCode int
	}{
		{"anonymous write", http.MethodPost, "/api/foods", nil, http.StatusUnauthorized},
		{"bad token", http.MethodPut, "/api/foods/1", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized},
		{"viewer write", http.MethodDelete, "/api/foods/1", map[string]string{"Authorization": "Bearer " + viewerToken}, http.StatusForbidden},
		{"admin write", http.MethodPost, "/api/foods", map[string]string{"Authorization": "Bearer " + adminToken}, http.StatusOK},
		{"anonymous read", http.MethodGet, "/api/foods/1", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqBody := ""
			if tt.method != http.MethodGet && tt.method != http.MethodDelete {
				reqBody = body
			}
			rec := do(h, tt.method, tt.path, reqBody, tt.header)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_MetricsRecordRoutesAndMutations(t *testing.T) {
	h, _ := newTestRouter(t, testConfig())

	do(h, http.MethodGet, "/api/foods/1", "", nil)
	do(h, http.MethodDelete, "/api/foods/1", "", nil)

	rec := do(h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	out := rec.Body.String()
	assert.Contains(t, out, `test_http_requests_total{method="GET",route="GET /api/foods/{id}",status="200"} 1`)
	assert.Contains(t, out, `test_food_mutations_total{op="delete"} 1`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	h, _ := newTestRouter(t, cfg)

	rec := do(h, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, _ := newTestRouter(t, testConfig())

	rec := do(h, http.MethodOptions, "/api/foods", "", map[string]string{
		"Origin":                        "https://shop.example.com",
		"Access-Control-Request-Method": http.MethodPost,
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "DELETE"))
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerMinute = 2
	h, _ := newTestRouter(t, cfg)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/live", "", nil).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, do(h, http.MethodGet, "/live", "", nil).Code)
}
