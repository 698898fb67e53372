package quicconn

import "time"

// InterestSet is the declarative signal a connection raises to say
// what it currently wants the endpoint event loop to do with it. The
// container never interprets connection state beyond this tuple.
//
// Invariants (enforced by Container, not by InterestSet itself):
//   - Finalization is terminal: once true the node is scheduled for
//     removal and will receive no further callbacks.
//   - Accept is one-shot: once a connection has been handed off to the
//     acceptor, Accept is forced false by the container and cannot be
//     re-raised for that connection.
//   - The remaining flags are independent; a connection may appear in
//     the transmission, timeout and new-connection-id lists at once.
type InterestSet struct {
	Finalization    bool
	Closing         bool
	Accept          bool
	Transmission    bool
	NewConnectionID bool

	// Timeout is the absolute deadline at which the connection wants
	// to be woken. A zero value means no timeout interest is
	// expressed.
	Timeout time.Time
}

// HasTimeout reports whether the interest set expresses a timeout
// deadline.
func (s InterestSet) HasTimeout() bool {
	return !s.Timeout.IsZero()
}
