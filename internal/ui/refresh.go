package ui

import "sync"

// Notifier tells subscribers that the reviews of a property changed.
// Signals are coalesced: a subscriber that has not drained its previous
// signal does not get a second one.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]chan string
}

func NewNotifier() *Notifier { return &Notifier{subs: map[int]chan string{}} }

// Subscribe returns a channel of property ids and a func that unsubscribes.
func (n *Notifier) Subscribe() (<-chan string, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.next
	n.next++
	ch := make(chan string, 1)
	n.subs[id] = ch
	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *Notifier) Notify(propertyID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- propertyID:
		default:
		}
	}
}
