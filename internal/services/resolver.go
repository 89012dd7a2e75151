package services

import (
	"context"
	"errors"
	"time"

	"github.com/NarasimhaSaladi/22P31A4234/internal/geo"
	"github.com/NarasimhaSaladi/22P31A4234/internal/registry"
	"github.com/NarasimhaSaladi/22P31A4234/pkg/logger"
)

// RequestContext carries the client metadata a redirect request arrives with.
type RequestContext struct {
	Referrer  string
	UserAgent string
	IP        string
}

// DefaultGeoTimeout bounds provider-backed geo lookups so a slow provider
// can never stall a redirect.
const DefaultGeoTimeout = 500 * time.Millisecond

// Resolver turns a shortcode into its original URL, appending a click event
// on the way.
type Resolver struct {
	registry   *registry.Registry
	geo        geo.Resolver
	geoTimeout time.Duration
}

// NewResolver creates and returns a new Resolver. A nil geoResolver selects
// the built-in static one; a non-positive geoTimeout selects the default.
func NewResolver(reg *registry.Registry, geoResolver geo.Resolver, geoTimeout time.Duration) *Resolver {
	if geoResolver == nil {
		geoResolver = geo.NewStaticResolver()
	}
	if geoTimeout <= 0 {
		geoTimeout = DefaultGeoTimeout
	}
	return &Resolver{registry: reg, geo: geoResolver, geoTimeout: geoTimeout}
}

func (s *Resolver) locate(ctx context.Context, ip string) string {
	ctx, cancel := context.WithTimeout(ctx, s.geoTimeout)
	defer cancel()
	return s.geo.Locate(ctx, ip)
}

// Resolve looks up code and returns the original URL. Unknown codes fail
// with registry.ErrNotFound, expired ones with registry.ErrExpired.
//
// The click is recorded synchronously before the URL is returned, so a
// successful resolve has its event in the log. If recording fails for any
// reason other than the code being unknown or expired, the URL is still
// returned: redirect success is never sacrificed for analytics completeness.
func (s *Resolver) Resolve(ctx context.Context, code string, rc RequestContext) (string, error) {
	rec, err := s.registry.Get(code)
	if err != nil {
		return "", err
	}

	source := rc.Referrer
	if source == "" {
		source = "direct"
	}

	event := registry.ClickEvent{
		Timestamp: time.Now(),
		Source:    source,
		UserAgent: rc.UserAgent,
		IP:        rc.IP,
		Geo:       s.locate(ctx, rc.IP),
	}

	if err := s.registry.RecordClick(code, event); err != nil {
		if errors.Is(err, registry.ErrNotFound) || errors.Is(err, registry.ErrExpired) {
			return "", err
		}
		logger.Warn().
			Err(err).
			Str("shortcode", code).
			Msg("click recording failed, serving redirect anyway")
		return rec.OriginalURL, nil
	}

	logger.Event("url_redirect").
		Str("shortcode", code).
		Str("destination", rec.OriginalURL).
		Str("client_ip", rc.IP).
		Msg("redirect served")

	return rec.OriginalURL, nil
}
