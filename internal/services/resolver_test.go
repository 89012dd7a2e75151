package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/NarasimhaSaladi/22P31A4234/internal/geo"
	"github.com/NarasimhaSaladi/22P31A4234/internal/registry"
)

func TestResolveRecordsClickAndReturnsURL(t *testing.T) {
	reg := registry.New(nil)
	resolver := NewResolver(reg, nil, 0)

	rec, err := reg.Create("https://example.com/page", "link1", 0)
	assert.NoError(t, err)

	url, err := resolver.Resolve(context.Background(), "link1", RequestContext{
		Referrer:  "https://google.com",
		UserAgent: "test-agent",
		IP:        "127.0.0.1",
	})
	assert.NoError(t, err)
	assert.Equal(t, rec.OriginalURL, url)

	got, err := reg.Get("link1")
	assert.NoError(t, err)
	if assert.Len(t, got.Clicks, 1) {
		click := got.Clicks[0]
		assert.Equal(t, "https://google.com", click.Source)
		assert.Equal(t, "test-agent", click.UserAgent)
		assert.Equal(t, "127.0.0.1", click.IP)
		assert.Equal(t, geo.LocalLocation, click.Geo)
		assert.WithinDuration(t, time.Now(), click.Timestamp, 5*time.Second)
	}
}

func TestResolveEmptyReferrerBecomesDirect(t *testing.T) {
	reg := registry.New(nil)
	resolver := NewResolver(reg, nil, 0)

	_, err := reg.Create("https://example.com", "link2", 0)
	assert.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), "link2", RequestContext{IP: "8.8.8.8"})
	assert.NoError(t, err)

	got, err := reg.Get("link2")
	assert.NoError(t, err)
	if assert.Len(t, got.Clicks, 1) {
		assert.Equal(t, "direct", got.Clicks[0].Source)
		assert.Equal(t, geo.UnknownLocation, got.Clicks[0].Geo)
	}
}

func TestResolveUnknownCode(t *testing.T) {
	resolver := NewResolver(registry.New(nil), nil, 0)

	_, err := resolver.Resolve(context.Background(), "nope42", RequestContext{})
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestResolveExpiredCode(t *testing.T) {
	now := time.Now()
	cur := now.Add(-10 * time.Minute)
	reg := registry.New(nil, registry.WithNow(func() time.Time { return cur }))
	resolver := NewResolver(reg, nil, 0)

	_, err := reg.Create("https://example.com", "late2", 1)
	assert.NoError(t, err)

	cur = now
	_, err = resolver.Resolve(context.Background(), "late2", RequestContext{})
	assert.ErrorIs(t, err, registry.ErrExpired)

	// No click may sneak into an expired record.
	got, err := reg.Get("late2")
	assert.NoError(t, err)
	assert.Empty(t, got.Clicks)
}

func TestConcurrentResolvesRecordEveryClick(t *testing.T) {
	reg := registry.New(nil)
	resolver := NewResolver(reg, nil, 0)
	reporter := NewReporter(reg)

	_, err := reg.Create("https://example.com", "race2", 0)
	assert.NoError(t, err)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			url, err := resolver.Resolve(context.Background(), "race2", RequestContext{IP: "8.8.8.8"})
			assert.NoError(t, err)
			assert.Equal(t, "https://example.com", url)
		}()
	}
	wg.Wait()

	stats, err := reporter.Report("race2")
	assert.NoError(t, err)
	assert.Equal(t, n, stats.TotalClicks)
	assert.Len(t, stats.ClicksData, n)
}
