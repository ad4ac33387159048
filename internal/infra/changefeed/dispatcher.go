package changefeed

import (
	"sync"

	"nuzlocke-tracker/internal/usecase/shared"
)

// Dispatcher fans fallen inserts out to filtered subscribers. Handlers run on the
// dispatching goroutine and must not subscribe or unsubscribe from inside the callback.
type Dispatcher struct {
	mu   sync.RWMutex
	next uint64
	subs map[uint64]*subscription
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: make(map[uint64]*subscription)}
}

type subscription struct {
	d       *Dispatcher
	id      uint64
	filter  shared.FeedFilter
	handler shared.FallenHandler
	once    sync.Once
}

// Unsubscribe waits for a delivery in progress, so no handler call follows it.
func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.d.mu.Lock()
		delete(s.d.subs, s.id)
		s.d.mu.Unlock()
	})
}

func (d *Dispatcher) SubscribeInserts(filter shared.FeedFilter, handler shared.FallenHandler) (shared.Subscription, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.next++
	s := &subscription{d: d, id: d.next, filter: filter, handler: handler}
	d.subs[s.id] = s
	return s, nil
}

func (d *Dispatcher) Dispatch(ev shared.FallenEvent) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	delivered := 0
	for _, s := range d.subs {
		if s.filter.UserID != ev.UserID {
			continue
		}
		s.handler(ev)
		delivered++
	}
	return delivered
}

func (d *Dispatcher) Subscribers() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.subs)
}
