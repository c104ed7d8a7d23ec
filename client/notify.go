package client

import (
	"sync"
	"time"
)

// Notifier shows one transient message at a time. A new message replaces the
// one on screen and restarts the dismissal timer; nothing is queued.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	sink    func(string)
	gen     uint64
	current string
}

// NewNotifier dismisses messages after ttl (the UI uses 3s). sink receives
// every shown message and "" on dismissal; it may be nil.
func NewNotifier(ttl time.Duration, sink func(string)) *Notifier {
	return &Notifier{ttl: ttl, sink: sink}
}

func (n *Notifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.gen++
	gen := n.gen
	n.current = msg
	if n.sink != nil {
		n.sink(msg)
	}
	time.AfterFunc(n.ttl, func() { n.dismiss(gen) })
}

// dismiss clears the message the given timer was armed for. A timer whose
// message has already been replaced is a no-op, so a replacement always gets
// its full ttl even if the old timer fired while Notify held the lock.
func (n *Notifier) dismiss(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.gen {
		return
	}
	n.current = ""
	if n.sink != nil {
		n.sink("")
	}
}

// Current returns the visible message, "" when dismissed.
func (n *Notifier) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
