package quicconn

import "fmt"

// connMap is the primary, owning store: a keyed map from
// InternalConnectionID to node, ordered by insertion (equivalently by
// id, since ids are strictly increasing). It doubles as the
// "categoryAll" intrusive list used for cursor-style front-to-back
// traversal — the closest Go idiom to the ordered LinkedHashMap-shaped
// structure the reference implementation uses, combining a map for
// O(1) lookup with a linked list for order, the same pairing an
// LRU-cache package in this ecosystem uses internally for its
// eviction list.
type connMap struct {
	byID map[InternalConnectionID]*node
	all  *intrusiveList
}

func newConnMap() *connMap {
	return &connMap{
		byID: make(map[InternalConnectionID]*node),
		all:  newIntrusiveList(categoryAll),
	}
}

// insert adds n at the back of insertion order. It is a logic error to
// insert a duplicate id; this panics rather than returning an error,
// matching the DuplicateId error kind's "Fatal programmer error"
// policy.
func (m *connMap) insert(n *node) {
	if _, exists := m.byID[n.id]; exists {
		panic(fmt.Sprintf("quicconn: duplicate connection id %d", n.id))
	}
	m.byID[n.id] = n
	m.all.pushBack(n)
}

// Cursor supports front-to-back traversal of the connection map.
type Cursor struct {
	m *connMap
	n *node
}

// Get returns the node at the cursor's current position, or nil if
// the cursor has run off the end (or the id it was created for is not
// present).
func (c *Cursor) Get() *node {
	return c.n
}

// MoveNext advances the cursor to the next node in insertion order.
func (c *Cursor) MoveNext() {
	if c.n == nil {
		return
	}
	c.n = c.m.all.next(c.n)
}

// Front returns a cursor positioned at the first node in insertion
// order.
func (m *connMap) front() *Cursor {
	return &Cursor{m: m, n: m.all.front()}
}

// find returns a cursor positioned at id, or a cursor whose Get
// returns nil if id is not present.
func (m *connMap) find(id InternalConnectionID) *Cursor {
	return &Cursor{m: m, n: m.byID[id]}
}

// lookup is a direct map lookup, used internally where a full cursor
// isn't needed.
func (m *connMap) lookup(id InternalConnectionID) (*node, bool) {
	n, ok := m.byID[id]
	return n, ok
}

// unlinkPrimary removes n from the map and from the "all" traversal
// list. It does not touch any secondary list n may still be linked
// into — the container is responsible for unlinking those first,
// since connMap doesn't own them.
func (m *connMap) unlinkPrimary(n *node) {
	delete(m.byID, n.id)
	m.all.remove(n)
}

func (m *connMap) len() int {
	return len(m.byID)
}
