package quicconn

// This file defines the event schema: typed, passive descriptions of
// observable connection lifecycle points, and the Subscriber interface
// that dispatches them. The schema mirrors one struct per qlog-derived
// event kind from the reference event definitions
// (s2n-quic-events/events/connection.rs); subscriber implementations
// (log exporters, qlog writers, metrics — see events_prometheus.go for
// one) are external collaborators. The container owns only the
// dispatch glue and the subset of events that arise purely from
// membership changes: connection started/closed, connection id
// updated, active path updated. Every other event kind is emitted by
// the packet/crypto/recovery layers that actually observe it, via
// Container.Subscriber().

// Location identifies which endpoint side performed an update, e.g.
// which side minted a new connection id.
type Location int

const (
	LocationLocal Location = iota
	LocationRemote
)

func (l Location) String() string {
	if l == LocationLocal {
		return "local"
	}
	return "remote"
}

// Path is a (local, remote) address pair a connection sends datagrams
// over. Kept as plain strings here since address formatting/parsing is
// out of scope for the container.
type Path struct {
	Local  string
	Remote string
}

// PacketHeader carries the subset of a QUIC packet header needed for
// event payloads.
type PacketHeader struct {
	PacketType   string
	PacketNumber uint64
}

// Frame is a minimal stand-in for a parsed QUIC frame, identified by
// kind for logging/metrics purposes.
type Frame struct {
	Kind string
}

// KeyType identifies which packet-number-space key was updated.
type KeyType int

const (
	KeyTypeInitial KeyType = iota
	KeyTypeHandshake
	KeyTypeZeroRTT
	KeyTypeOneRTT
	KeyTypeOneRTTNext
)

// DropReason explains why a datagram was dropped before it reached any
// connection.
type DropReason string

// DuplicatePacketError explains why a packet was judged a duplicate.
type DuplicatePacketError string

// ConnectionID is a wire-visible connection id, distinct from
// InternalConnectionID.
type ConnectionID []byte

// VersionInformation reports each side's supported QUIC versions and
// the negotiated one, if any.
type VersionInformation struct {
	ServerVersions []uint32
	ClientVersions []uint32
	ChosenVersion  *uint32
}

// ALPNInformation reports each side's offered ALPN protocols and the
// negotiated one.
type ALPNInformation struct {
	ServerALPNs []string
	ClientALPNs []string
	ChosenALPN  string
}

type PacketSent struct {
	PacketHeader PacketHeader
}

type PacketReceived struct {
	PacketHeader PacketHeader
}

type FrameSent struct {
	PacketHeader PacketHeader
	PathID       uint64
	Frame        Frame
}

type FrameReceived struct {
	PacketHeader PacketHeader
	PathID       uint64
	Frame        Frame
}

// ActivePathUpdated is one of the four events the container itself
// emits, fired whenever the endpoint reports the active path changed
// for a connection.
type ActivePathUpdated struct {
	ID       InternalConnectionID
	Previous Path
	Active   Path
}

type PathCreated struct {
	Active Path
	New    Path
}

type PacketLost struct {
	PacketHeader PacketHeader
	Path         Path
	BytesLost    uint16
	IsMTUProbe   bool
}

// RecoveryMetrics reports the latest congestion/loss-recovery signals
// for one path. This is the event payload events_prometheus.go mirrors
// onto metrics.
type RecoveryMetrics struct {
	PathID            uint64
	MinRTT            int64 // nanoseconds
	SmoothedRTT       int64
	LatestRTT         int64
	RTTVariance       int64
	MaxAckDelay       int64
	PTOCount          uint32
	CongestionWindow  uint32
	BytesInFlight     uint32
}

type KeyUpdate struct {
	KeyType KeyType
}

// ConnectionStarted is emitted by the container when a connection is
// inserted.
type ConnectionStarted struct {
	ID   InternalConnectionID
	Path Path
}

// ConnectionClosed is emitted by the container when a connection is
// finalized.
type ConnectionClosed struct {
	ID    InternalConnectionID
	Error error
}

type DuplicatePacket struct {
	PacketHeader PacketHeader
	PathID       uint64
	Error        DuplicatePacketError
}

type DatagramSent struct {
	Len uint16
}

type DatagramReceived struct {
	Len uint16
}

type DatagramDropped struct {
	Len    uint16
	Reason DropReason
}

// ConnectionIDUpdated is one of the four events the container itself
// emits.
type ConnectionIDUpdated struct {
	ID          InternalConnectionID
	PathID      uint64
	CIDConsumer Location
	Previous    ConnectionID
	Current     ConnectionID
}

// Subscriber is the pluggable dispatch target for every event kind.
// Dispatch is required to be synchronous and non-throwing from the
// container's perspective; a subscriber that wants asynchronous
// delivery is responsible for its own buffering.
type Subscriber interface {
	OnVersionInformation(VersionInformation)
	OnALPNInformation(ALPNInformation)
	OnPacketSent(PacketSent)
	OnPacketReceived(PacketReceived)
	OnFrameSent(FrameSent)
	OnFrameReceived(FrameReceived)
	OnActivePathUpdated(ActivePathUpdated)
	OnPathCreated(PathCreated)
	OnPacketLost(PacketLost)
	OnRecoveryMetrics(RecoveryMetrics)
	OnKeyUpdate(KeyUpdate)
	OnConnectionStarted(ConnectionStarted)
	OnConnectionClosed(ConnectionClosed)
	OnDuplicatePacket(DuplicatePacket)
	OnDatagramSent(DatagramSent)
	OnDatagramReceived(DatagramReceived)
	OnDatagramDropped(DatagramDropped)
	OnConnectionIDUpdated(ConnectionIDUpdated)
}

// NopSubscriber implements Subscriber with every method a no-op. Real
// subscribers embed it (the way a generated gRPC server embeds
// UnimplementedFooServer, a pattern this corpus reaches for via its
// grpc-ecosystem dependencies) so that the schema can grow new event
// kinds without breaking existing subscriber implementations.
type NopSubscriber struct{}

func (NopSubscriber) OnVersionInformation(VersionInformation)     {}
func (NopSubscriber) OnALPNInformation(ALPNInformation)           {}
func (NopSubscriber) OnPacketSent(PacketSent)                     {}
func (NopSubscriber) OnPacketReceived(PacketReceived)              {}
func (NopSubscriber) OnFrameSent(FrameSent)                        {}
func (NopSubscriber) OnFrameReceived(FrameReceived)                {}
func (NopSubscriber) OnActivePathUpdated(ActivePathUpdated)        {}
func (NopSubscriber) OnPathCreated(PathCreated)                    {}
func (NopSubscriber) OnPacketLost(PacketLost)                      {}
func (NopSubscriber) OnRecoveryMetrics(RecoveryMetrics)            {}
func (NopSubscriber) OnKeyUpdate(KeyUpdate)                        {}
func (NopSubscriber) OnConnectionStarted(ConnectionStarted)        {}
func (NopSubscriber) OnConnectionClosed(ConnectionClosed)          {}
func (NopSubscriber) OnDuplicatePacket(DuplicatePacket)            {}
func (NopSubscriber) OnDatagramSent(DatagramSent)                  {}
func (NopSubscriber) OnDatagramReceived(DatagramReceived)          {}
func (NopSubscriber) OnDatagramDropped(DatagramDropped)            {}
func (NopSubscriber) OnConnectionIDUpdated(ConnectionIDUpdated)    {}
