package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RequestHeader carries the id of one outgoing API request.
const RequestHeader = "X-Request-Id"

// Generator creates opaque ids for correlating client and server logs.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// NewID returns 16 random bytes, hex encoded.
func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
