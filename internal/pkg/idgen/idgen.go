// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/rpg-equipment/internal/pkg/idgen Generator

// Generator generates unique identifiers in their string form
type Generator interface {
	Generate() string
}

// UUIDGenerator generates random (version 4) UUIDs
type UUIDGenerator struct{}

// NewUUID creates a new UUID generator
func NewUUID() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate creates a new UUID
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// SequentialGenerator generates deterministic UUIDs for tests and local
// seeding. The counter fills the last 12 hex digits of a fixed namespace.
type SequentialGenerator struct {
	namespace string
	counter   uint64
}

// NewSequential creates a sequential generator. namespace must be the first
// 24 characters of a UUID, e.g. "00000000-0000-4000-8000-".
func NewSequential(namespace string) *SequentialGenerator {
	return &SequentialGenerator{namespace: namespace}
}

// Generate returns the next UUID in the sequence
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	return fmt.Sprintf("%s%012x", g.namespace, n)
}
