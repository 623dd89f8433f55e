package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gocollect/internal/api/admin"
	"gocollect/internal/api/collect"
	"gocollect/internal/domain"
	"gocollect/internal/pkg/cache"
	"gocollect/internal/pkg/logger"
	"gocollect/internal/pkg/middleware"
)

// Deps reúne os handlers e a infraestrutura que o roteador monta.
type Deps struct {
	Collect  *collect.Handler
	Admin    *admin.Handler
	TokenSvc middleware.TokenService
	Cache    cache.Client // nil desativa o rate limiting
	Logger   logger.Logger

	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
	AllowedOrigins       []string
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares globais ---
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(corsMiddleware(d.AllowedOrigins))
	r.Use(middleware.PrometheusMetrics)

	// --- 2. Infraestrutura (fora do rate limiting) ---
	r.Get("/ping", PingHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 3. API v1 ---
	r.Route("/v1", func(r chi.Router) {
		if d.Cache != nil {
			r.Use(middleware.RateLimiter(d.Cache, d.RateLimitMaxRequests, d.RateLimitPeriod, d.Logger))
		}

		r.Post("/admin/login", d.Admin.LoginHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.NewAuthMiddleware(d.TokenSvc, d.Logger))

			r.Route("/collections", d.Collect.Routes)
			r.Route("/skus", d.Collect.SkuRoutes)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.PermissionMiddleware(d.Logger, domain.RoleAdmin))
				d.Admin.Routes(r)
			})
		})
	})

	return r
}

func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		MaxAge:         300,
	}
	// Credenciais não podem ser combinadas com origem curinga.
	if len(origins) > 0 && origins[0] != "*" {
		opts.AllowCredentials = true
	}
	return cors.Handler(opts)
}

// PingHandler é o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
