package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	intconfig "busticket/internal/config"
	h "busticket/internal/http/handlers"
	"busticket/internal/http/middleware"
	"busticket/internal/repositories"
	"busticket/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// NewRouter wires the HTTP adapter around the booking engine.
func NewRouter(env intconfig.Env, booking *services.BookingService, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Metrics(), gin.Recovery(), corsMiddleware())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	tickets := h.TicketHandler{Booking: booking}
	buses := h.BusHandler{Booking: booking}
	stats := h.StatsHandler{Stats: services.StatsService{Booking: booking}}
	docs := h.DocsHandler{Booking: booking}
	auth := h.AuthHandler{Env: env}
	audit := h.AuditHandler{Repo: repositories.AuditRepository{}}

	api := r.Group("/api")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Enabled:  env.RateLimitEnabled,
		Capacity: env.RateLimitCapacity,
		Refill:   env.RateLimitRefill,
	}, rdb))
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.GET("/tickets", tickets.List)
		api.POST("/tickets", tickets.Create)
		api.GET("/tickets/:id", tickets.Get)
		api.PUT("/tickets/:id", tickets.Update)
		api.DELETE("/tickets/:id", tickets.Cancel)
		api.GET("/tickets/:id/e-ticket", docs.ETicket)

		api.GET("/buses", buses.List)
		api.GET("/buses/:code", buses.Get)
		api.GET("/buses/:code/seats", buses.AvailableSeats)

		api.GET("/stats", stats.Get)

		api.POST("/auth/login", auth.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin([]byte(env.JWTSecret)))
		admin.GET("/audit", audit.Recent)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	} else {
		cfg.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	return cors.New(cfg)
}
