//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	postgres "github.com/heartmarshall/foodcatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodcatalog-backend/internal/adapter/postgres/food"
	"github.com/heartmarshall/foodcatalog-backend/internal/adapter/postgres/foodtype"
	"github.com/heartmarshall/foodcatalog-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/foodcatalog-backend/internal/app"
	"github.com/heartmarshall/foodcatalog-backend/internal/auth"
	"github.com/heartmarshall/foodcatalog-backend/internal/config"
	"github.com/heartmarshall/foodcatalog-backend/internal/metrics"
	"github.com/heartmarshall/foodcatalog-backend/internal/service/catalog"
	"github.com/heartmarshall/foodcatalog-backend/internal/transport/rest"
)

const (
	jwtSecret = "e2e-secret-at-least-32-chars-long!!"
	jwtIssuer = "e2e-issuer"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T, authEnabled bool) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := config.Config{
		CORS:    config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS", MaxAge: 60},
		Catalog: config.CatalogConfig{DefaultPageSize: 10, MaxPageSize: 100},
		Auth:    config.AuthConfig{Enabled: authEnabled, JWTSecret: jwtSecret, JWTIssuer: jwtIssuer},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics", Namespace: "e2e"},
	}

	collector := metrics.NewCollector(cfg.Metrics.Namespace)
	jwtMgr := auth.NewJWTManager(jwtSecret, jwtIssuer)
	svc := catalog.NewService(logger, food.New(pool), foodtype.New(pool), postgres.NewTxManager(pool), collector, cfg.Catalog)

	handler := app.NewRouter(app.RouterDeps{
		Config:  cfg,
		Log:     logger,
		Catalog: svc,
		Health:  rest.NewHealthHandler("test-version", rest.Check{Name: "database", Ping: pool.Ping}),
		Tokens:  jwtMgr,
		Metrics: collector,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, jwt: jwtMgr}
}

func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	token, err := ts.jwt.GenerateToken("e2e@example.com", "admin", time.Hour)
	require.NoError(t, err)
	return token
}

// do sends a request and decodes a JSON object response.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func dataList(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	raw, ok := body["data"].([]any)
	require.True(t, ok, "data is not a list: %v", body["data"])
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		out = append(out, item.(map[string]any))
	}
	return out
}

func foodIDs(t *testing.T, body map[string]any) []int64 {
	t.Helper()
	var ids []int64
	for _, f := range dataList(t, body) {
		ids = append(ids, int64(f["FoodId"].(float64)))
	}
	return ids
}
