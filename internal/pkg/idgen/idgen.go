// Package idgen generates battle map identifiers
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Prefixed joins an optional prefix to the values of a source as "prefix_value"
type Prefixed struct {
	prefix string
	next   func() string
}

// Generate returns the next identifier
func (g *Prefixed) Generate() string {
	id := g.next()
	if g.prefix == "" {
		return id
	}
	return g.prefix + "_" + id
}

// NewSequential returns a generator counting up from 1. Tests use it for
// predictable IDs such as "map_1".
func NewSequential(prefix string) *Prefixed {
	var counter uint64
	return &Prefixed{
		prefix: prefix,
		next: func() string {
			return strconv.FormatUint(atomic.AddUint64(&counter, 1), 10)
		},
	}
}

// NewUUID returns a generator of random v4 UUIDs
func NewUUID(prefix string) *Prefixed {
	return &Prefixed{
		prefix: prefix,
		next: func() string {
			return uuid.New().String()
		},
	}
}
