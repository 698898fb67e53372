package quicconn

import "time"

// Container is the in-endpoint structure owning every live
// connection. It is simultaneously a keyed map (connMap), several
// intrusive secondary lists expressing "interest" membership, and the
// producer side of the accept handoff channel. A Container is driven
// from a single goroutine (the endpoint event loop) in normal
// operation — see the package doc for the concurrency model.
type Container struct {
	config *Config

	connMap *connMap
	tx      *intrusiveList // categoryTransmission
	timeout *intrusiveList // categoryTimeout, kept sorted ascending by deadline
	cid     *intrusiveList // categoryNewConnectionID
	closing *intrusiveList // categoryClosing
	done    *intrusiveList // categoryDone

	acceptCh *acceptChannel

	logger     Logger
	subscriber Subscriber
}

// NewContainer creates an empty Container along with the Acceptor
// application code uses to receive accept-ready connections. A nil
// config uses DefaultConfig.
func NewContainer(config *Config) (*Container, *Acceptor) {
	cfg := config.withDefaults()
	acceptCh := newAcceptChannel(cfg.AcceptBacklogHint)
	c := &Container{
		config:     cfg,
		connMap:    newConnMap(),
		tx:         newIntrusiveList(categoryTransmission),
		timeout:    newIntrusiveList(categoryTimeout),
		cid:        newIntrusiveList(categoryNewConnectionID),
		closing:    newIntrusiveList(categoryClosing),
		done:       newIntrusiveList(categoryDone),
		acceptCh:   acceptCh,
		logger:     cfg.Logger,
		subscriber: cfg.Subscriber,
	}
	return c, &Acceptor{ch: acceptCh}
}

// Subscriber returns the event subscriber configured for this
// container, so external collaborators (packet parsing, recovery,
// crypto) can dispatch the event kinds the container itself doesn't
// own.
func (c *Container) Subscriber() Subscriber {
	return c.subscriber
}

// InsertConnection takes ownership of conn under id, inserting it at
// the back of the connection map's insertion order. It is a logic
// error — a programmer error, not a recoverable condition — to insert
// a duplicate id; like smux's own internal assertions, this panics
// rather than returning an error.
func (c *Container) InsertConnection(conn Connection, id InternalConnectionID) {
	n := newNode(id, NewConnectionHandle(conn))
	n.current = conn.Interests()

	// A connection may already express accept interest at insertion
	// time; handle it the same one-shot way WithConnection does,
	// directly against conn since no other goroutine can see this node
	// yet (it isn't in connMap).
	if n.current.Accept && !n.accepted {
		n.accepted = true
		if a, ok := conn.(Acceptable); ok {
			a.MarkAccepted()
		}
	}
	n.current.Accept = false

	c.connMap.insert(n)
	c.syncLists(n)
	c.subscriber.OnConnectionStarted(ConnectionStarted{ID: id})

	if n.accepted {
		c.acceptCh.send(id)
	}
}

// WithConnection locates id, applies f under exclusive access, and
// resynchronizes secondary list membership against the connection's
// post-callback interest set. It returns called == true only if f was
// actually invoked: a poisoned or corrupt handle causes the container
// to schedule the node for finalization and report called == false,
// collapsing every internal failure mode to "callback was not
// invoked", per the error handling design.
func (c *Container) WithConnection(id InternalConnectionID, f func(Connection)) (called bool, err error) {
	n, ok := c.connMap.lookup(id)
	if !ok {
		return false, ErrUnknownConnection
	}

	var (
		newSet       InterestSet
		justAccepted bool
	)
	writeErr := n.handle.Write(func(conn Connection) {
		f(conn)
		called = true
		newSet = conn.Interests()
		if newSet.Accept && !n.accepted {
			justAccepted = true
			n.accepted = true
			if a, ok := conn.(Acceptable); ok {
				a.MarkAccepted()
			}
		}
		// Accept is strictly one-shot: the container clears it on its
		// own snapshot whatever the connection reports — see
		// Acceptable's doc comment.
		newSet.Accept = false
	})
	if writeErr != nil {
		c.logger.Warnf("connection %d: handle unavailable, scheduling finalization", id)
		c.scheduleFinalization(n)
		return false, ErrHandleUnavailable
	}

	n.current = newSet
	c.syncLists(n)
	if justAccepted {
		c.acceptCh.send(n.id)
	}
	return called, nil
}

// syncLists adjusts every secondary list's membership for n to match
// n.current, linking where now-interested and unlinking where
// no-longer-interested. Called after every mutation that might have
// changed a connection's interests.
func (c *Container) syncLists(n *node) {
	// Finalization is terminal: once raised (or once the node sits in
	// done), the node leaves every other list and stays in done.
	if n.current.Finalization || n.in(categoryDone) {
		c.scheduleFinalization(n)
		return
	}
	adjustList(c.tx, n, n.current.Transmission)
	adjustList(c.cid, n, n.current.NewConnectionID)
	adjustList(c.closing, n, n.current.Closing)
	adjustList(c.done, n, n.current.Finalization)
	c.syncTimeout(n, n.current.HasTimeout())
}

func adjustList(list *intrusiveList, n *node, desired bool) {
	linked := n.in(list.category)
	switch {
	case desired && !linked:
		list.pushBack(n)
	case !desired && linked:
		list.remove(n)
	}
}

// syncTimeout additionally re-sorts the timeout list when a still-live
// deadline changed, since that list must stay in ascending order.
func (c *Container) syncTimeout(n *node, desired bool) {
	linked := n.in(categoryTimeout)
	switch {
	case desired && !linked:
		c.timeout.insertSorted(n)
	case !desired && linked:
		c.timeout.remove(n)
	case desired && linked:
		c.timeout.remove(n)
		c.timeout.insertSorted(n)
	}
}

// scheduleFinalization unlinks n from every secondary list it
// currently sits in (except done) and appends it to the done list for
// deferred removal. Used both when Finalization is raised normally and
// when a handle is found poisoned.
func (c *Container) scheduleFinalization(n *node) {
	if n.in(categoryTransmission) {
		c.tx.remove(n)
	}
	if n.in(categoryTimeout) {
		c.timeout.remove(n)
	}
	if n.in(categoryNewConnectionID) {
		c.cid.remove(n)
	}
	if n.in(categoryClosing) {
		c.closing.remove(n)
	}
	n.current.Finalization = true
	if !n.in(categoryDone) {
		c.done.pushBack(n)
	}
}

// IterateTransmissionList walks the transmission list front to back,
// invoking visitor under exclusive access for each node, honoring its
// returned IterationResult. BreakAndInsertAtBack/Front stop the walk
// immediately after reinserting the current node, giving callers that
// impose a per-pass budget round-robin fairness across successive
// calls.
func (c *Container) IterateTransmissionList(visitor func(Connection) IterationResult) {
	c.walkBounded(c.tx, visitor)
}

// IterateNewConnectionIDList is IterateTransmissionList's twin for the
// new-connection-id list.
func (c *Container) IterateNewConnectionIDList(visitor func(Connection) IterationResult) {
	c.walkBounded(c.cid, visitor)
}

func (c *Container) walkBounded(list *intrusiveList, visitor func(Connection) IterationResult) {
	cur := list.front()
	for cur != nil {
		next := list.next(cur)

		var result IterationResult
		writeErr := cur.handle.Write(func(conn Connection) {
			result = visitor(conn)
		})
		if writeErr != nil {
			list.remove(cur)
			c.scheduleFinalization(cur)
			cur = next
			continue
		}

		switch result {
		case Continue:
			cur = next
		case BreakAndInsertAtBack:
			list.remove(cur)
			list.pushBack(cur)
			return
		case BreakAndInsertAtFront:
			list.remove(cur)
			list.pushFront(cur)
			return
		case BreakAndRemove:
			list.remove(cur)
			return
		default:
			cur = next
		}
	}
}

// IterateTimeoutList invokes visitor for every node whose deadline is
// <= now, in ascending deadline order, then resynchronizes each
// visited node's timeout-list membership against whatever interest
// set the visitor left behind (it may clear the deadline to
// deregister, or set a new one to reschedule).
func (c *Container) IterateTimeoutList(now time.Time, visitor func(Connection)) {
	var due []*node
	for cur := c.timeout.front(); cur != nil; cur = c.timeout.next(cur) {
		if cur.current.Timeout.After(now) {
			break
		}
		assertInterestInvariant(cur.current.HasTimeout(), cur.id, categoryTimeout, c.logger)
		due = append(due, cur)
	}

	for _, n := range due {
		writeErr := n.handle.Write(func(conn Connection) {
			visitor(conn)
		})
		if writeErr != nil {
			c.timeout.remove(n)
			c.scheduleFinalization(n)
			continue
		}

		var latest InterestSet
		_ = n.handle.Read(func(conn Connection) {
			latest = conn.Interests()
		})
		n.current.Timeout = latest.Timeout
		c.timeout.remove(n)
		c.syncTimeout(n, n.current.HasTimeout())
	}
}

// DrainClosingList removes every node from the closing list, invoking
// visitor for each under exclusive access. Unlike the bounded lists,
// closing (like done) is drained rather than iterated: every entry is
// removed as visited.
func (c *Container) DrainClosingList(visitor func(Connection)) {
	for {
		n := c.closing.front()
		if n == nil {
			return
		}
		c.closing.remove(n)
		writeErr := n.handle.Write(func(conn Connection) {
			visitor(conn)
		})
		if writeErr != nil {
			c.scheduleFinalization(n)
		}
	}
}

// FinalizeDoneConnections drains the done list: for each node, unlinks
// it from the map and every other list, then drops it. This is the
// only path that releases a connection; it is safe to call at any
// time and is typically called at the tail of an event-loop tick.
func (c *Container) FinalizeDoneConnections() {
	for {
		n := c.done.front()
		if n == nil {
			return
		}
		c.done.remove(n)

		if n.in(categoryTransmission) {
			c.tx.remove(n)
		}
		if n.in(categoryTimeout) {
			c.timeout.remove(n)
		}
		if n.in(categoryNewConnectionID) {
			c.cid.remove(n)
		}
		if n.in(categoryClosing) {
			c.closing.remove(n)
		}
		c.connMap.unlinkPrimary(n)

		_ = n.handle.Read(func(conn Connection) {
			if f, ok := conn.(Finalizable); ok {
				f.OnFinalized()
			}
		})
		n.handle.Poison()

		c.logger.Debugf("connection %d finalized", n.id)
		c.subscriber.OnConnectionClosed(ConnectionClosed{ID: n.id})
	}
}

// Front returns a cursor positioned at the first node in insertion
// order.
func (c *Container) Front() *Cursor {
	return c.connMap.front()
}

// Find returns a cursor positioned at id. Cursor.Get returns nil if
// id isn't present.
func (c *Container) Find(id InternalConnectionID) *Cursor {
	return c.connMap.find(id)
}

// Len returns the number of live connections.
func (c *Container) Len() int {
	return c.connMap.len()
}

// EmitActivePathUpdated dispatches the ActivePathUpdated event. The
// container doesn't track paths itself (out of scope); the endpoint
// calls this when it observes a path change.
func (c *Container) EmitActivePathUpdated(e ActivePathUpdated) {
	c.subscriber.OnActivePathUpdated(e)
}

// EmitConnectionIDUpdated dispatches the ConnectionIDUpdated event.
func (c *Container) EmitConnectionIDUpdated(e ConnectionIDUpdated) {
	c.subscriber.OnConnectionIDUpdated(e)
}

// ID exposes a node's connection id, for callers holding a *Cursor /
// *node from Front or Find.
func (n *node) ID() InternalConnectionID {
	return n.id
}

// Interests exposes the container's last-synchronized snapshot of a
// node's interest set, for inspection by traversal callers (e.g. the
// property test harness) without going through WithConnection.
func (n *node) Interests() InterestSet {
	return n.current
}
