package quicconn

import "sync"

// ConnectionHandle provides mutually exclusive access to a Connection
// plus a permanent "poisoned" flag. A poisoned handle fails every
// subsequent Read/Write fast, the same way a poisoned sync.Mutex in
// the standard library's own internal convention (see sync.Mutex's
// rationale for not recovering from a panicking critical section)
// would: a panic or invariant violation inside one connection's
// callback must not corrupt the rest of the container.
//
// The zero value is not usable; construct with NewConnectionHandle.
type ConnectionHandle struct {
	mu       sync.RWMutex
	conn     Connection
	poisoned bool
}

// NewConnectionHandle takes exclusive ownership of conn.
func NewConnectionHandle(conn Connection) *ConnectionHandle {
	return &ConnectionHandle{conn: conn}
}

// Read acquires shared access and invokes f with the wrapped
// connection. It fails with ErrHandleUnavailable if the handle is
// poisoned.
func (h *ConnectionHandle) Read(f func(Connection)) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.poisoned {
		return ErrHandleUnavailable
	}
	f(h.conn)
	return nil
}

// Write acquires exclusive access and invokes f with the wrapped
// connection. It fails with ErrHandleUnavailable, without invoking f,
// if the handle is poisoned.
func (h *ConnectionHandle) Write(f func(Connection)) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.poisoned {
		return ErrHandleUnavailable
	}
	f(h.conn)
	return nil
}

// Poison marks the handle permanently unavailable. Idempotent.
// Poisoning isolates a failing connection from the rest of the
// container: the next time the container tries to access the handle
// (WithConnection or a list walk) it schedules the owning node for
// finalization, and the following FinalizeDoneConnections pass removes
// it. Poisoning alone does not notify the container.
func (h *ConnectionHandle) Poison() {
	h.mu.Lock()
	h.poisoned = true
	h.mu.Unlock()
}

// Poisoned reports whether the handle has been poisoned.
func (h *ConnectionHandle) Poisoned() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.poisoned
}
