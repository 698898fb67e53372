package quicconn

// testConnection is the package's stand-in for a real QUIC connection,
// playing the same role in these tests as TestConnection /
// connection::Trait does in the reference implementation's
// connection_container/tests.rs: a bare struct whose only job is to
// report whatever InterestSet the test sets on it and record whether
// it was accepted/finalized.
type testConnection struct {
	id        InternalConnectionID
	interests InterestSet
	accepted  bool
	finalized bool
}

func (c *testConnection) Interests() InterestSet { return c.interests }

func (c *testConnection) MarkAccepted() {
	c.accepted = true
	c.interests.Accept = false
}

func (c *testConnection) OnFinalized() {
	c.finalized = true
}

// mutate returns a WithConnection callback that applies fn to the
// concrete *testConnection, the way the reference tests reach straight
// into TestConnection's fields from inside the closure passed to
// with_connection.
func mutate(fn func(*testConnection)) func(Connection) {
	return func(c Connection) {
		fn(c.(*testConnection))
	}
}

func newTestConnection(interests InterestSet) *testConnection {
	return &testConnection{interests: interests}
}

// newTestConnectionWithID is like newTestConnection but stamps the
// connection with its own id up front, so tests (and visitors invoked
// by bounded iteration) can identify which connection they're looking
// at without re-entering the container while a node's handle is
// already locked.
func newTestConnectionWithID(id InternalConnectionID, interests InterestSet) *testConnection {
	return &testConnection{id: id, interests: interests}
}
