package quicconn

import "testing"

func TestConnMapInsertFindFront(t *testing.T) {
	m := newConnMap()
	n1 := newNode(1, NewConnectionHandle(newTestConnectionWithID(1, InterestSet{})))
	n2 := newNode(2, NewConnectionHandle(newTestConnectionWithID(2, InterestSet{})))
	m.insert(n1)
	m.insert(n2)

	if got := m.find(2).Get(); got != n2 {
		t.Fatalf("find(2) = %v, want n2", got)
	}
	if got := m.find(99).Get(); got != nil {
		t.Fatalf("find(99) = %v, want nil", got)
	}

	cur := m.front()
	var order []InternalConnectionID
	for cur.Get() != nil {
		order = append(order, cur.Get().id)
		cur.MoveNext()
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("front traversal = %v, want [1 2]", order)
	}
}

func TestConnMapInsertDuplicatePanics(t *testing.T) {
	m := newConnMap()
	n1 := newNode(1, NewConnectionHandle(newTestConnectionWithID(1, InterestSet{})))
	m.insert(n1)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic inserting duplicate id")
		}
	}()
	m.insert(newNode(1, NewConnectionHandle(newTestConnectionWithID(1, InterestSet{}))))
}

func TestConnMapUnlinkPrimary(t *testing.T) {
	m := newConnMap()
	n1 := newNode(1, NewConnectionHandle(newTestConnectionWithID(1, InterestSet{})))
	n2 := newNode(2, NewConnectionHandle(newTestConnectionWithID(2, InterestSet{})))
	m.insert(n1)
	m.insert(n2)

	m.unlinkPrimary(n1)
	if m.len() != 1 {
		t.Fatalf("len() = %d, want 1", m.len())
	}
	if got := m.find(1).Get(); got != nil {
		t.Fatalf("find(1) after unlink = %v, want nil", got)
	}
	if got := m.front().Get(); got != n2 {
		t.Fatalf("front() after unlink = %v, want n2", got)
	}
}
