package registry

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultCodeLength is used when a Generator is built with a non-positive length.
const DefaultCodeLength = 6

// Generator produces random shortcodes from the 62-symbol alphanumeric
// alphabet. It has no side effects; uniqueness is the registry's job.
type Generator struct {
	length int
}

// NewGenerator returns a Generator producing codes of the given length.
func NewGenerator(length int) *Generator {
	if length <= 0 {
		length = DefaultCodeLength
	}
	return &Generator{length: length}
}

// Generate returns one random code.
func (g *Generator) Generate() (string, error) {
	b := make([]byte, g.length)
	max := big.NewInt(int64(len(charset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate short code: %w", err)
		}
		b[i] = charset[n.Int64()]
	}
	return string(b), nil
}
