package quicconn

// Connection is the capability set the container consumes from a live
// QUIC connection. It is intentionally narrow: the container treats a
// connection as opaque and never inspects state beyond what these
// methods expose. Packet parsing, the crypto handshake, congestion
// control and stream state machines all live behind this interface,
// external to the container.
type Connection interface {
	// Interests returns the connection's current interest set. Called
	// by the container after every WithConnection callback to
	// resynchronize secondary list membership.
	Interests() InterestSet
}

// Acceptable is an optional capability. A Connection that implements
// it is notified exactly once, at the moment it is handed off to the
// acceptor, the same way io.Closer or http.Flusher are optional
// capabilities type-asserted out of a narrower interface elsewhere in
// the ecosystem.
type Acceptable interface {
	// MarkAccepted is invoked once, when the container first sees
	// accept interest and hands this connection's id to the accept
	// channel: under write access from WithConnection, or directly from
	// InsertConnection before the node is visible to anyone else. It is
	// invoked even when the acceptor has been closed and the id is
	// discarded.
	// Implementations are expected to clear their own Accept interest
	// flag; the container also force-clears it on the node regardless,
	// making acceptance one-shot even for connections that don't
	// implement this interface.
	MarkAccepted()
}

// Finalizable is an optional capability invoked once, when a node is
// unlinked by FinalizeDoneConnections. Most connections will want to
// release path/stream resources here.
type Finalizable interface {
	OnFinalized()
}
