package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/bookingmx/bookingmx/internal/middleware"
	"github.com/bookingmx/bookingmx/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log          *logrus.Logger
	Health       *HealthHandler
	Hub          *ws.Hub
	Reservations ReservationService
	Cities       CityService
	CORSOrigins  []string
	RateLimit    int
	RateBurst    int
}

// Router-level limits.
const (
	maxBodySize      = 1 << 20 // 1 MB
	defaultRateLimit = 100     // requests per second per IP
	defaultRateBurst = 200     // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	rate, burst := deps.RateLimit, deps.RateBurst
	if rate <= 0 {
		rate = defaultRateLimit
	}
	if burst <= 0 {
		burst = defaultRateBurst
	}

	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	// cors.New panics when no origin is allowed.
	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			MaxAge:           1 * time.Hour,
			AllowCredentials: false,
		}))
	}
	r.Use(middleware.NewRateLimiter(ctx, rate, burst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	if deps.Health != nil {
		api.GET("/health", deps.Health.Liveness)
		api.GET("/ready", deps.Health.Readiness)
	}

	if deps.Reservations != nil {
		reservations := NewReservationHandler(deps.Reservations, log)

		api.GET("/reservations", reservations.List)
		api.POST("/reservations", reservations.Create)
		api.GET("/reservations/:id", reservations.Get)
		api.PUT("/reservations/:id", reservations.Update)
		api.DELETE("/reservations/:id", reservations.Cancel)
		api.POST("/reservations/:id/cancel", reservations.Cancel)
		api.DELETE("/reservations/:id/purge", reservations.Purge)
	}

	if deps.Cities != nil {
		cityHandler := NewCityHandler(deps.Cities, log)

		api.GET("/cities", cityHandler.List)
		api.GET("/cities/:name/neighbors", cityHandler.Neighbors)
		api.GET("/cities/:name/nearby", cityHandler.NearbyByName)
		api.POST("/cities/nearby", cityHandler.Nearby)
		api.POST("/cities/validate", cityHandler.Validate)
	}

	api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
}

// originHosts strips schemes from CORS origins; websocket.AcceptOptions
// matches on host patterns only.
func originHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))

	for _, o := range origins {
		u, err := url.Parse(o)
		if err != nil || u.Host == "" {
			continue
		}

		hosts = append(hosts, u.Host)
	}

	return hosts
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
