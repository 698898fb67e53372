package quicconn

// defaultAcceptBacklogHint matches smux's defaultAcceptBacklog: a
// starting capacity hint for the accept queue, not a hard cap (the
// queue itself is unbounded — see accept.go).
const defaultAcceptBacklogHint = 1024

// Config configures a Container. There is no file or CLI surface for
// any of this — out of scope for the container — but the zero-value
// rules below mirror smux's Config/newSession defaulting: a caller can
// build a partially-populated Config and the container fills in
// sensible defaults for whatever was left zero.
type Config struct {
	// AcceptBacklogHint sizes the initial capacity of the accept
	// queue's backing slice. Zero means DefaultConfig's value.
	AcceptBacklogHint int

	// Logger receives poisoning and finalization notices; closing the
	// acceptor is not logged. Nil means a default stderr logger.
	Logger Logger

	// Subscriber receives the container-owned lifecycle events
	// (connection started/closed, connection id updated, active path
	// updated). Nil means NopSubscriber.
	Subscriber Subscriber
}

// DefaultConfig returns the Config a Container is constructed with
// when no overrides are needed.
func DefaultConfig() *Config {
	return &Config{
		AcceptBacklogHint: defaultAcceptBacklogHint,
		Logger:            NewDefaultLogger(),
		Subscriber:        NopSubscriber{},
	}
}

// withDefaults returns a copy of c (or a fresh DefaultConfig if c is
// nil) with every zero-valued field filled in from DefaultConfig.
func (c *Config) withDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	out := *c
	if out.AcceptBacklogHint == 0 {
		out.AcceptBacklogHint = d.AcceptBacklogHint
	}
	if out.Logger == nil {
		out.Logger = d.Logger
	}
	if out.Subscriber == nil {
		out.Subscriber = d.Subscriber
	}
	return &out
}
