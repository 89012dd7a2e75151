package geo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticResolver(t *testing.T) {
	resolver := NewStaticResolver()
	ctx := context.Background()

	tests := []struct {
		ip   string
		want string
	}{
		{"127.0.0.1", LocalLocation},
		{"::1", LocalLocation},
		{"localhost", LocalLocation},
		{"0.0.0.0", LocalLocation},
		{"8.8.8.8", UnknownLocation},
		{"2001:4860:4860::8888", UnknownLocation},
		{"garbage", UnknownLocation},
		{"", UnknownLocation},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resolver.Locate(ctx, tt.ip), "ip %q", tt.ip)
	}
}
