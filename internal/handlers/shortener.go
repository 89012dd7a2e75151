// Package handlers contains the gin handlers for the URL shortener API.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NarasimhaSaladi/22P31A4234/internal/registry"
	"github.com/NarasimhaSaladi/22P31A4234/internal/services"
	apperrors "github.com/NarasimhaSaladi/22P31A4234/pkg/errors"
	"github.com/NarasimhaSaladi/22P31A4234/pkg/logger"
)

// CreateShortURLRequest is the validated body for POST /shorturls.
// Validity is a pointer so an omitted field (default applies) can be told
// apart from an explicit zero (rejected).
type CreateShortURLRequest struct {
	URL       string `json:"url" binding:"required"`
	Validity  *int   `json:"validity"`
	Shortcode string `json:"shortcode"`
}

// CreateShortURL handles POST /shorturls.
func CreateShortURL(shortener *services.Shortener, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateShortURLRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		validity := 0
		if req.Validity != nil {
			if *req.Validity <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": registry.ErrInvalidValidity.Error()})
				return
			}
			validity = *req.Validity
		}

		rec, err := shortener.Create(req.URL, req.Shortcode, validity)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"shortLink": baseURL + "/" + rec.Shortcode,
			"expiry":    rec.ExpiresAt.Format(time.RFC3339),
		})
	}
}

// RedirectShortURL handles GET /:shortcode.
func RedirectShortURL(resolver *services.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("shortcode")

		url, err := resolver.Resolve(c.Request.Context(), code, services.RequestContext{
			Referrer:  c.Request.Referer(),
			UserAgent: c.Request.UserAgent(),
			IP:        c.ClientIP(),
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.Redirect(http.StatusFound, url)
	}
}

// GetShortURLStats handles GET /shorturls/:shortcode.
func GetShortURLStats(reporter *services.Reporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := reporter.Report(c.Param("shortcode"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

// HealthCheck handles GET /health.
func HealthCheck(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"timestamp":  time.Now().Format(time.RFC3339),
			"total_urls": reg.Len(),
		})
	}
}

// Root handles GET / with a short API description.
func Root() gin.HandlerFunc {
	info := gin.H{
		"message": "URL Shortener API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"create_url": "POST /shorturls",
			"redirect":   "GET /{shortcode}",
			"stats":      "GET /shorturls/{shortcode}",
			"health":     "GET /health",
		},
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, info)
	}
}

// respondError maps registry errors onto the HTTP contract. Anything not in
// the taxonomy is logged and surfaced as a generic 500.
func respondError(c *gin.Context, err error) {
	appErr := toAppError(err)
	if appErr.Code == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}

func toAppError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, registry.ErrInvalidURL),
		errors.Is(err, registry.ErrInvalidCode),
		errors.Is(err, registry.ErrInvalidValidity),
		errors.Is(err, registry.ErrCodeTaken):
		return apperrors.BadRequest(err.Error())
	case errors.Is(err, registry.ErrNotFound):
		return apperrors.NotFound("Short URL not found")
	case errors.Is(err, registry.ErrExpired):
		return apperrors.Gone("Short URL has expired")
	default:
		return apperrors.ErrInternalServer
	}
}
