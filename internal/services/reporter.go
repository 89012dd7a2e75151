package services

import (
	"time"

	"github.com/NarasimhaSaladi/22P31A4234/internal/registry"
	"github.com/NarasimhaSaladi/22P31A4234/pkg/logger"
)

// Stats is the full analytics view of one short link.
type Stats struct {
	Shortcode   string                `json:"shortcode"`
	OriginalURL string                `json:"original_url"`
	TotalClicks int                   `json:"total_clicks"`
	CreatedAt   time.Time             `json:"created_at"`
	Expiry      time.Time             `json:"expiry"`
	ClicksData  []registry.ClickEvent `json:"clicks_data"`
	IsExpired   bool                  `json:"is_expired"`
}

// Reporter produces analytics for short links. Read-only.
type Reporter struct {
	registry *registry.Registry
}

// NewReporter creates and returns a new Reporter.
func NewReporter(reg *registry.Registry) *Reporter {
	return &Reporter{registry: reg}
}

// Report returns the stats for code, or registry.ErrNotFound. Expiry is
// computed at call time; expired links still report in full.
func (s *Reporter) Report(code string) (*Stats, error) {
	rec, err := s.registry.Get(code)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Shortcode:   rec.Shortcode,
		OriginalURL: rec.OriginalURL,
		TotalClicks: len(rec.Clicks),
		CreatedAt:   rec.CreatedAt,
		Expiry:      rec.ExpiresAt,
		ClicksData:  rec.Clicks,
		IsExpired:   rec.IsExpired(),
	}

	logger.Event("stats_accessed").
		Str("shortcode", code).
		Int("total_clicks", stats.TotalClicks).
		Msg("stats served")

	return stats, nil
}
