// Package services holds the business logic sitting between the HTTP
// handlers and the registry: link creation, redirect resolution and
// analytics reporting.
package services

import (
	"github.com/NarasimhaSaladi/22P31A4234/internal/registry"
	"github.com/NarasimhaSaladi/22P31A4234/pkg/logger"
)

// Shortener creates short links against the registry.
type Shortener struct {
	registry *registry.Registry
}

// NewShortener creates and returns a new Shortener.
func NewShortener(reg *registry.Registry) *Shortener {
	return &Shortener{registry: reg}
}

// Create validates the inputs through the registry and stores a new link.
// requestedCode may be empty; validityMinutes of 0 selects the default.
func (s *Shortener) Create(rawURL, requestedCode string, validityMinutes int) (*registry.LinkRecord, error) {
	rec, err := s.registry.Create(rawURL, requestedCode, validityMinutes)
	if err != nil {
		return nil, err
	}

	logger.Event("url_created").
		Str("shortcode", rec.Shortcode).
		Str("url", rec.OriginalURL).
		Time("expiry", rec.ExpiresAt).
		Msg("short url created")

	return rec, nil
}
