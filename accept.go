package quicconn

import "sync"

// acceptChannel is the single-producer, single-consumer handoff queue
// for accept-ready connections. The producer side lives on Container;
// the consumer side is exposed as Acceptor. It is unbounded (backed by
// a growable slice rather than a fixed-capacity Go channel, the same
// way smux's shaperLoop backs its priority queue with a growable heap
// instead of a bounded channel when backpressure isn't wanted) and
// durable-closed: once the consumer closes it, further producer sends
// are silently discarded rather than panicking or blocking.
type acceptChannel struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []InternalConnectionID
	closed bool
}

func newAcceptChannel(backlogHint int) *acceptChannel {
	ch := &acceptChannel{
		queue: make([]InternalConnectionID, 0, backlogHint),
	}
	ch.cond = sync.NewCond(&ch.mu)
	return ch
}

// send enqueues id. A no-op if the consumer has closed the channel.
func (ch *acceptChannel) send(id InternalConnectionID) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.closed {
		return
	}
	ch.queue = append(ch.queue, id)
	ch.cond.Signal()
}

// close marks the channel durably closed. Idempotent. Wakes any
// blocked Accept call so it can observe ErrAcceptChannelClosed.
func (ch *acceptChannel) close() {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.closed {
		return
	}
	ch.closed = true
	ch.cond.Broadcast()
}

// accept blocks until an id is available or the channel is closed.
func (ch *acceptChannel) accept() (InternalConnectionID, error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	for len(ch.queue) == 0 && !ch.closed {
		ch.cond.Wait()
	}
	if len(ch.queue) == 0 {
		return 0, ErrAcceptChannelClosed
	}
	id := ch.queue[0]
	ch.queue = ch.queue[1:]
	return id, nil
}

// drain returns every currently queued id without blocking, in
// enqueue order, and empties the queue. Used by callers (and the
// property test harness's DrainAccept operation) that want to observe
// everything handed off so far without committing to a blocking read.
func (ch *acceptChannel) drain() []InternalConnectionID {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if len(ch.queue) == 0 {
		return nil
	}
	out := ch.queue
	ch.queue = nil
	return out
}

// Acceptor is the application-facing consumer handle for accept-ready
// connections.
type Acceptor struct {
	ch *acceptChannel
}

// Accept blocks until a connection is ready to be accepted or the
// acceptor has been closed, in which case it returns
// ErrAcceptChannelClosed.
func (a *Acceptor) Accept() (InternalConnectionID, error) {
	return a.ch.accept()
}

// Drain returns every id queued so far without blocking.
func (a *Acceptor) Drain() []InternalConnectionID {
	return a.ch.drain()
}

// Close durably closes the acceptor. Subsequent container-side sends
// become no-ops; this is a one-way transition (see the container's
// Open Question resolution: re-attaching an acceptor is unsupported).
func (a *Acceptor) Close() {
	a.ch.close()
}
