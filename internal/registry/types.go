// Package registry implements the in-memory short-code registry: code
// generation, uniqueness enforcement, expiry checks and the per-record
// click log.
package registry

import (
	"errors"
	"time"
)

// DefaultValidityMinutes is applied when a creation request omits validity.
const DefaultValidityMinutes = 30

// MinCodeLength is the minimum length for a caller-supplied shortcode.
const MinCodeLength = 4

// ClickEvent is one recorded redirect with its request metadata.
type ClickEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	UserAgent string    `json:"user_agent"`
	IP        string    `json:"ip"`
	Geo       string    `json:"geographical_info"`
}

// LinkRecord is one short-code entry. CreatedAt and ExpiresAt are fixed at
// creation; Clicks is append-only and preserves insertion order.
type LinkRecord struct {
	Shortcode   string       `json:"shortcode"`
	OriginalURL string       `json:"original_url"`
	CreatedAt   time.Time    `json:"created_at"`
	ExpiresAt   time.Time    `json:"expiry"`
	Clicks      []ClickEvent `json:"clicks"`
}

// IsExpired reports whether the record has passed its expiry time.
// Expired records stay queryable for analytics but are not redirectable.
func (r *LinkRecord) IsExpired() bool {
	return !time.Now().Before(r.ExpiresAt)
}

var (
	// ErrInvalidURL is returned when the original URL is not an absolute
	// http(s) URL with a host.
	ErrInvalidURL = errors.New("invalid url format")

	// ErrInvalidCode is returned when a requested shortcode is shorter than
	// MinCodeLength or contains non-alphanumeric characters.
	ErrInvalidCode = errors.New("shortcode must be at least 4 alphanumeric characters")

	// ErrInvalidValidity is returned when a supplied validity is not a
	// positive number of minutes.
	ErrInvalidValidity = errors.New("validity must be greater than 0")

	// ErrCodeTaken is returned when the requested shortcode already exists.
	// Expired codes are never recycled, so they also count as taken.
	ErrCodeTaken = errors.New("shortcode already exists")

	// ErrNotFound is returned when no record exists for a shortcode.
	ErrNotFound = errors.New("short url not found")

	// ErrExpired is returned when a record exists but is past its expiry.
	ErrExpired = errors.New("short url has expired")
)
