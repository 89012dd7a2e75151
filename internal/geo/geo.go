// Package geo derives a coarse location string from a client IP. Lookup is
// best-effort: anything that cannot be resolved in time degrades to
// UnknownLocation, never stalling the caller.
package geo

import (
	"context"
	"net"
)

// UnknownLocation is returned whenever an IP cannot be resolved.
const UnknownLocation = "Unknown Location"

// LocalLocation is returned for loopback and unspecified addresses.
const LocalLocation = "Localhost"

// Resolver maps an IP string to a coarse location. Implementations backed by
// an external provider must honor ctx cancellation and deadlines.
type Resolver interface {
	Locate(ctx context.Context, ip string) string
}

// StaticResolver classifies loopback traffic and nothing else. It performs
// no I/O, so ctx is never consulted.
type StaticResolver struct{}

// NewStaticResolver returns the built-in lookup-free resolver.
func NewStaticResolver() StaticResolver {
	return StaticResolver{}
}

func (StaticResolver) Locate(_ context.Context, ip string) string {
	if ip == "localhost" {
		return LocalLocation
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return UnknownLocation
	}
	if parsed.IsLoopback() || parsed.IsUnspecified() {
		return LocalLocation
	}
	return UnknownLocation
}
