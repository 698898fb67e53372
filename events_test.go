package quicconn

import "testing"

type recordingSubscriber struct {
	NopSubscriber
	started []ConnectionStarted
	closed  []ConnectionClosed
}

func (r *recordingSubscriber) OnConnectionStarted(e ConnectionStarted) {
	r.started = append(r.started, e)
}

func (r *recordingSubscriber) OnConnectionClosed(e ConnectionClosed) {
	r.closed = append(r.closed, e)
}

func TestContainerEmitsLifecycleEvents(t *testing.T) {
	sub := &recordingSubscriber{}
	c, _ := NewContainer(&Config{Logger: nopLogger{}, Subscriber: sub})

	c.InsertConnection(newTestConnectionWithID(1, InterestSet{}), 1)
	if len(sub.started) != 1 || sub.started[0].ID != 1 {
		t.Fatalf("started = %v, want one event for id 1", sub.started)
	}

	c.WithConnection(1, mutate(func(tc *testConnection) {
		tc.interests.Finalization = true
	}))
	c.FinalizeDoneConnections()
	if len(sub.closed) != 1 || sub.closed[0].ID != 1 {
		t.Fatalf("closed = %v, want one event for id 1", sub.closed)
	}
}

func TestContainerEmitsActivePathAndConnectionIDUpdated(t *testing.T) {
	sub := &recordingActivePathSubscriber{}
	c, _ := NewContainer(&Config{Logger: nopLogger{}, Subscriber: sub})

	c.EmitActivePathUpdated(ActivePathUpdated{ID: 1, Previous: Path{Local: "a"}, Active: Path{Local: "b"}})
	c.EmitConnectionIDUpdated(ConnectionIDUpdated{ID: 1, CIDConsumer: LocationLocal})

	if len(sub.paths) != 1 || sub.paths[0].Active.Local != "b" {
		t.Fatalf("paths = %v", sub.paths)
	}
	if len(sub.cids) != 1 || sub.cids[0].CIDConsumer != LocationLocal {
		t.Fatalf("cids = %v", sub.cids)
	}
}

type recordingActivePathSubscriber struct {
	NopSubscriber
	paths []ActivePathUpdated
	cids  []ConnectionIDUpdated
}

func (r *recordingActivePathSubscriber) OnActivePathUpdated(e ActivePathUpdated) {
	r.paths = append(r.paths, e)
}

func (r *recordingActivePathSubscriber) OnConnectionIDUpdated(e ConnectionIDUpdated) {
	r.cids = append(r.cids, e)
}
