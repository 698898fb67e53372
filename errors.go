package quicconn

import (
	"errors"
	"fmt"
)

// Sentinel errors mirroring the error kinds from the container's error
// handling design: HandleUnavailable, AcceptChannelClosed and the
// programmer-error DuplicateId case (which is surfaced as a panic, not
// a returned error — see Container.InsertConnection).
var (
	// ErrHandleUnavailable is returned when a connection handle is
	// poisoned or its mutual-exclusion primitive reports corruption.
	// WithConnection returns it together with called == false, after
	// scheduling the node for finalization.
	ErrHandleUnavailable = errors.New("quicconn: connection handle unavailable")

	// ErrAcceptChannelClosed is the durable state observed after the
	// acceptor has been closed. Sends against a closed acceptor are
	// silently discarded; this error exists for callers that want to
	// distinguish "no connections yet" from "acceptor closed".
	ErrAcceptChannelClosed = errors.New("quicconn: accept channel closed")

	// ErrUnknownConnection is returned by WithConnection when the
	// requested id has no live node (already finalized, or never
	// inserted). Find reports the same case with a cursor whose Get
	// returns nil.
	ErrUnknownConnection = errors.New("quicconn: unknown connection id")
)

// InterestInvariantError reports that a node's list membership
// disagreed with its interest flags for a particular secondary list.
// In debug builds (see the quicconndebug build tag) this is raised as
// a panic; in release builds it is logged and the container performs a
// best-effort resync, per the error handling design.
type InterestInvariantError struct {
	ID   InternalConnectionID
	List string
}

func (e *InterestInvariantError) Error() string {
	return fmt.Sprintf("quicconn: interest invariant violated for connection %d on %s list", e.ID, e.List)
}
