// Package quicconn implements the connection container of a QUIC
// transport stack: the in-endpoint structure that owns every live
// connection, indexes it by interest category (wanting to transmit,
// wanting to time out, wanting a new connection id, wanting to be
// accepted, closing, finalization-ready), and drives bounded,
// priority-respecting iteration over those categories on behalf of an
// endpoint event loop.
//
// Scheduling model: single-threaded cooperative within one endpoint.
// A Container is meant to be driven by one event loop; its methods run
// to completion without suspension. The only cross-thread boundary is
// the accept handoff channel between Container and Acceptor.
//
// Packet parsing, the crypto handshake, congestion control, stream
// state machines and actual datagram I/O are all external to this
// package; a Connection is an opaque capability set (see
// connection.go) the container never interprets beyond Interests.
package quicconn
