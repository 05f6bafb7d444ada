package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/foodcatalog-backend/internal/config"
	"github.com/heartmarshall/foodcatalog-backend/internal/metrics"
	"github.com/heartmarshall/foodcatalog-backend/internal/service/catalog"
	"github.com/heartmarshall/foodcatalog-backend/internal/transport/middleware"
	"github.com/heartmarshall/foodcatalog-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(token string) (subject, role string, err error)
}

// RouterDeps is everything NewRouter wires together. Tokens is required
// only when cfg.Auth.Enabled; Metrics and RateLimiter may be nil.
type RouterDeps struct {
	Config      config.Config
	Log         *slog.Logger
	Catalog     *catalog.Service
	Health      *rest.HealthHandler
	Tokens      tokenValidator
	Metrics     *metrics.Collector
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the HTTP handler: catalog API under /api, probes, and
// the optional metrics endpoint, all behind the shared middleware chain.
func NewRouter(deps RouterDeps) http.Handler {
	foods := rest.NewFoodHandler(deps.Catalog, deps.Log)
	types := rest.NewFoodTypeHandler(deps.Catalog, deps.Log)

	var guard middleware.Middleware
	if deps.Config.Auth.Enabled {
		guard = middleware.Chain(middleware.Auth(deps.Tokens), middleware.RequireAdmin())
	}
	write := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(guard)(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	mux.HandleFunc("GET /api/foods", foods.List)
	mux.HandleFunc("GET /api/foods/newest", foods.Newest)
	mux.HandleFunc("GET /api/foods/Newest", foods.Newest)
	mux.HandleFunc("GET /api/foods/Search", rest.NotImplemented)
	mux.HandleFunc("GET /api/foods/getfood", rest.NotImplemented)
	mux.HandleFunc("GET /api/foods/{id}", foods.Get)
	mux.Handle("POST /api/foods", write(foods.Create))
	mux.Handle("PUT /api/foods/{id}", write(foods.Update))
	mux.Handle("DELETE /api/foods/{id}", write(foods.Delete))

	mux.HandleFunc("GET /api/category", types.List)
	mux.HandleFunc("GET /api/category/{id}", types.Get)

	mws := []middleware.Middleware{
		middleware.Recovery(deps.Log),
		middleware.RequestID(),
		middleware.Logger(deps.Log),
	}
	if deps.Metrics != nil && deps.Config.Metrics.Enabled {
		mux.Handle("GET "+deps.Config.Metrics.Path, deps.Metrics.Handler())
		mws = append(mws, middleware.Metrics(deps.Metrics))
	}
	mws = append(mws, middleware.CORS(deps.Config.CORS))
	if deps.RateLimiter != nil && deps.Config.RateLimit.Enabled {
		mws = append(mws, deps.RateLimiter.Middleware())
	}

	return middleware.Chain(mws...)(mux)
}
