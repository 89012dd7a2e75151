package registry

import (
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"
)

var codePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// record pairs a LinkRecord with the mutex guarding its click log. Keeping
// the lock outside LinkRecord lets Get hand out plain copies.
type record struct {
	mu   sync.RWMutex
	link LinkRecord
}

// Registry is the authoritative in-memory store of shortcode records.
//
// Locking is split in two: mu guards the code->record map for existence
// checks and inserts, while each record carries its own lock for the click
// log. Click traffic on unrelated codes never contends on the map lock.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*record
	gen     *Generator
	now     func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithNow overrides the registry's clock. Used by tests to create records
// in the past and exercise expiry without waiting out real minutes.
func WithNow(now func() time.Time) Option {
	return func(reg *Registry) {
		reg.now = now
	}
}

// New returns an empty Registry using gen for automatic code generation.
func New(gen *Generator, opts ...Option) *Registry {
	if gen == nil {
		gen = NewGenerator(DefaultCodeLength)
	}
	reg := &Registry{
		records: make(map[string]*record),
		gen:     gen,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// Create validates the inputs and stores a new LinkRecord with an empty
// click log.
//
// requestedCode may be empty, in which case the generator supplies a code,
// retried until an unused one is found. validityMinutes of 0 selects
// DefaultValidityMinutes; negative values fail with ErrInvalidValidity.
func (reg *Registry) Create(rawURL string, requestedCode string, validityMinutes int) (*LinkRecord, error) {
	if !isValidURL(rawURL) {
		return nil, ErrInvalidURL
	}
	if validityMinutes < 0 {
		return nil, ErrInvalidValidity
	}
	if validityMinutes == 0 {
		validityMinutes = DefaultValidityMinutes
	}

	now := reg.now()
	link := LinkRecord{
		OriginalURL: rawURL,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Duration(validityMinutes) * time.Minute),
		Clicks:      []ClickEvent{},
	}

	if requestedCode != "" {
		if len(requestedCode) < MinCodeLength || !codePattern.MatchString(requestedCode) {
			return nil, ErrInvalidCode
		}
		link.Shortcode = requestedCode
		if !reg.insert(requestedCode, link) {
			return nil, ErrCodeTaken
		}
		snapshot := link
		return &snapshot, nil
	}

	// Loop-and-check: collisions are improbable but uniqueness must hold
	// deterministically, so generation retries until the insert wins.
	for {
		code, err := reg.gen.Generate()
		if err != nil {
			return nil, err
		}
		link.Shortcode = code
		if reg.insert(code, link) {
			snapshot := link
			return &snapshot, nil
		}
	}
}

// insert stores link under code unless the code is already taken. The
// check and the insert run under one write lock, so concurrent creates for
// the same code can never both succeed.
func (reg *Registry) insert(code string, link LinkRecord) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.records[code]; exists {
		return false
	}
	reg.records[code] = &record{link: link}
	return true
}

// Get returns a snapshot of the record for code, or ErrNotFound. The copy
// has its own click slice, so callers can never mutate registry state.
// Expired records are still returned; callers decide what expiry means.
func (reg *Registry) Get(code string) (*LinkRecord, error) {
	reg.mu.RLock()
	rec, exists := reg.records[code]
	reg.mu.RUnlock()
	if !exists {
		return nil, ErrNotFound
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	snapshot := rec.link
	snapshot.Clicks = make([]ClickEvent, len(rec.link.Clicks))
	copy(snapshot.Clicks, rec.link.Clicks)
	return &snapshot, nil
}

// RecordClick appends event to the click log for code. It fails with
// ErrNotFound for unknown codes and ErrExpired once the record has passed
// its expiry. This is the only mutation path after creation; the per-record
// lock makes concurrent appends lose nothing and keeps arrival order.
func (reg *Registry) RecordClick(code string, event ClickEvent) error {
	reg.mu.RLock()
	rec, exists := reg.records[code]
	reg.mu.RUnlock()
	if !exists {
		return ErrNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if !reg.now().Before(rec.link.ExpiresAt) {
		return ErrExpired
	}
	rec.link.Clicks = append(rec.link.Clicks, event)
	return nil
}

// Len returns the number of stored records, expired ones included.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.records)
}

// isValidURL requires an absolute http(s) URL with a host. Scheme-relative
// and bare-word inputs are rejected rather than repaired.
func isValidURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}
	return u.Host != ""
}
