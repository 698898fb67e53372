package quicconn

import (
	"testing"
	"time"
)

func newTestContainer() (*Container, *Acceptor) {
	return NewContainer(&Config{Logger: nopLogger{}})
}

// Insert and lookup: insert ids 1,2,3; with_connection(2, f) invokes
// f; forward traversal yields [1,2,3].
func TestInsertAndLookup(t *testing.T) {
	c, _ := newTestContainer()
	ids := []InternalConnectionID{1, 2, 3}
	for _, id := range ids {
		c.InsertConnection(newTestConnectionWithID(id, InterestSet{}), id)
	}

	called, err := c.WithConnection(2, mutate(func(*testConnection) {}))
	if err != nil || !called {
		t.Fatalf("WithConnection(2): called=%v err=%v", called, err)
	}

	var got []InternalConnectionID
	for cur := c.Front(); cur.Get() != nil; cur.MoveNext() {
		got = append(got, cur.Get().ID())
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("traversal order = %v, want [1 2 3]", got)
	}
}

// Accept handoff: insert id 1; set accept=true; drain accept channel
// yields id 1; set accept=true again -> channel stays empty (one-shot).
func TestAcceptHandoffOneShot(t *testing.T) {
	c, acceptor := newTestContainer()
	c.InsertConnection(newTestConnectionWithID(1, InterestSet{}), 1)

	c.WithConnection(1, mutate(func(tc *testConnection) {
		tc.interests.Accept = true
	}))

	got := acceptor.Drain()
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("Drain() = %v, want [1]", got)
	}

	c.WithConnection(1, mutate(func(tc *testConnection) {
		tc.interests.Accept = true
	}))
	if got := acceptor.Drain(); len(got) != 0 {
		t.Fatalf("Drain() after re-raise = %v, want empty (one-shot)", got)
	}
}

// Finalization: set finalization=true on id 2 of [1,2,3];
// finalize_done_connections(); traversal now yields [1,3].
func TestFinalization(t *testing.T) {
	c, _ := newTestContainer()
	for _, id := range []InternalConnectionID{1, 2, 3} {
		c.InsertConnection(newTestConnectionWithID(id, InterestSet{}), id)
	}

	c.WithConnection(2, mutate(func(tc *testConnection) {
		tc.interests.Finalization = true
	}))
	c.FinalizeDoneConnections()

	var got []InternalConnectionID
	for cur := c.Front(); cur.Get() != nil; cur.MoveNext() {
		got = append(got, cur.Get().ID())
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("traversal order after finalize = %v, want [1 3]", got)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
}

// Timeout: deadlines {1->t+10ms, 2->t+30ms, 3->t+20ms};
// iterate_timeout_list(t+25ms, v) visits 1 then 3, not 2.
func TestTimeoutOrdering(t *testing.T) {
	c, _ := newTestContainer()
	base := time.Unix(0, 0)
	deadlines := map[InternalConnectionID]time.Duration{
		1: 10 * time.Millisecond,
		2: 30 * time.Millisecond,
		3: 20 * time.Millisecond,
	}
	for _, id := range []InternalConnectionID{1, 2, 3} {
		c.InsertConnection(newTestConnectionWithID(id, InterestSet{}), id)
	}
	for id, d := range deadlines {
		deadline := base.Add(d)
		c.WithConnection(id, mutate(func(tc *testConnection) {
			tc.interests.Timeout = deadline
		}))
	}

	var visitedIDs []InternalConnectionID
	c.IterateTimeoutList(base.Add(25*time.Millisecond), func(conn Connection) {
		tc := conn.(*testConnection)
		visitedIDs = append(visitedIDs, tc.id)
		tc.interests.Timeout = time.Time{} // deregister
	})

	if len(visitedIDs) != 2 || visitedIDs[0] != 1 || visitedIDs[1] != 3 {
		t.Fatalf("visited = %v, want [1 3]", visitedIDs)
	}
}

// Poisoning: poison id 2; with_connection(2, f) does not invoke f;
// finalize_done_connections(); map yields [1,3]; operations on 1 and 3
// remain correct.
func TestPoisoningIsolatesOnlyOneConnection(t *testing.T) {
	c, _ := newTestContainer()
	for _, id := range []InternalConnectionID{1, 2, 3} {
		c.InsertConnection(newTestConnectionWithID(id, InterestSet{}), id)
	}

	n := c.Find(2).Get()
	n.handle.Poison()

	called, err := c.WithConnection(2, mutate(func(*testConnection) {}))
	if called || err != ErrHandleUnavailable {
		t.Fatalf("WithConnection(2) on poisoned handle: called=%v err=%v", called, err)
	}

	c.FinalizeDoneConnections()

	var got []InternalConnectionID
	for cur := c.Front(); cur.Get() != nil; cur.MoveNext() {
		got = append(got, cur.Get().ID())
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("traversal after poison+finalize = %v, want [1 3]", got)
	}

	called, err = c.WithConnection(1, mutate(func(*testConnection) {}))
	if !called || err != nil {
		t.Fatalf("WithConnection(1) after unrelated poisoning: called=%v err=%v", called, err)
	}
	called, err = c.WithConnection(3, mutate(func(*testConnection) {}))
	if !called || err != nil {
		t.Fatalf("WithConnection(3) after unrelated poisoning: called=%v err=%v", called, err)
	}
}

// Round-robin transmit: every currently-transmitting node is
// eventually visited across bounded passes, matching invariant 7 (no
// starvation), without pinning to one specific final list ordering
// (the spec's own worked example is illustrative, not load-bearing).
func TestTransmissionRoundRobinNoStarvation(t *testing.T) {
	c, _ := newTestContainer()
	ids := []InternalConnectionID{1, 2, 3}
	for _, id := range ids {
		c.InsertConnection(newTestConnectionWithID(id, InterestSet{Transmission: true}), id)
	}

	visitCounts := map[InternalConnectionID]int{}
	for pass := 0; pass < 9; pass++ {
		budget := 0
		c.IterateTransmissionList(func(conn Connection) IterationResult {
			tc := conn.(*testConnection)
			visitCounts[tc.id]++
			if budget == 0 {
				return BreakAndInsertAtBack
			}
			budget--
			return Continue
		})
	}

	for _, id := range ids {
		if visitCounts[id] == 0 {
			t.Fatalf("connection %d was never visited across 9 passes: %v", id, visitCounts)
		}
	}
}

func TestDuplicateInsertPanics(t *testing.T) {
	c, _ := newTestContainer()
	c.InsertConnection(newTestConnectionWithID(1, InterestSet{}), 1)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate insert")
		}
	}()
	c.InsertConnection(newTestConnectionWithID(1, InterestSet{}), 1)
}

func TestCloseAcceptorIsOneWay(t *testing.T) {
	c, acceptor := newTestContainer()
	acceptor.Close()
	c.InsertConnection(newTestConnectionWithID(1, InterestSet{Accept: true}), 1)
	if got := acceptor.Drain(); len(got) != 0 {
		t.Fatalf("Drain() after acceptor closed = %v, want empty", got)
	}
	if _, err := acceptor.Accept(); err != ErrAcceptChannelClosed {
		t.Fatalf("Accept() after close: err=%v, want ErrAcceptChannelClosed", err)
	}
}
