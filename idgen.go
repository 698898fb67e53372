package quicconn

import "sync/atomic"

// InternalConnectionID uniquely identifies a connection within a
// single endpoint for its entire lifetime. It is never reused and is
// distinct from any wire-visible connection id.
type InternalConnectionID uint64

// InternalConnectionIDGenerator mints strictly increasing
// InternalConnectionIDs. It is local to one endpoint: ids are not
// required to be dense or cryptographically random, only unique and
// monotonic, the same way smux's Session keeps a simple
// monotonically-advancing nextStreamID counter rather than anything
// fancier.
//
// A zero-value generator is not ready for use; construct one with
// NewInternalConnectionIDGenerator.
type InternalConnectionIDGenerator struct {
	next uint64
}

// NewInternalConnectionIDGenerator returns a generator whose first
// Generate call yields id 1. Zero is reserved so that a zero-valued
// InternalConnectionID can be treated as "unset" by callers.
func NewInternalConnectionIDGenerator() *InternalConnectionIDGenerator {
	return &InternalConnectionIDGenerator{}
}

// Generate returns the next strictly increasing id. Safe for
// concurrent use, though the container itself is driven from a single
// goroutine in normal operation.
func (g *InternalConnectionIDGenerator) Generate() InternalConnectionID {
	return InternalConnectionID(atomic.AddUint64(&g.next, 1))
}
