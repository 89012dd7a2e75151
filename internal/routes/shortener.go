package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/NarasimhaSaladi/22P31A4234/internal/handlers"
	"github.com/NarasimhaSaladi/22P31A4234/internal/registry"
	"github.com/NarasimhaSaladi/22P31A4234/internal/services"
)

// RegisterShortenerRoutes wires the full HTTP surface. The redirect route is
// registered last so the static /health and /shorturls paths win over the
// :shortcode parameter.
func RegisterShortenerRoutes(
	r *gin.Engine,
	reg *registry.Registry,
	shortener *services.Shortener,
	resolver *services.Resolver,
	reporter *services.Reporter,
	baseURL string,
) {
	r.GET("/", handlers.Root())
	r.GET("/health", handlers.HealthCheck(reg))

	r.POST("/shorturls", handlers.CreateShortURL(shortener, baseURL))
	r.GET("/shorturls/:shortcode", handlers.GetShortURLStats(reporter))

	r.GET("/:shortcode", handlers.RedirectShortURL(resolver))
}
