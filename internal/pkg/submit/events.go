package submit

import "sync"

// Completion is emitted once for every successful submission.
type Completion struct {
	RequestID string `json:"request_id"`
	Data      any    `json:"data"`
}

type Listener func(Completion)

type subscription struct {
	id int
	fn Listener
}

// Dispatcher fans completions out to subscribed listeners in subscription
// order. The zero value is ready to use.
type Dispatcher struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

// Subscribe registers fn and returns a func that removes it.
func (d *Dispatcher) Subscribe(fn Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	d.subs = append(d.subs, subscription{id: id, fn: fn})

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		for i, s := range d.subs {
			if s.id == id {
				d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
				return
			}
		}
	}
}

func (d *Dispatcher) Emit(c Completion) {
	d.mu.Lock()
	subs := make([]subscription, len(d.subs))
	copy(subs, d.subs)
	d.mu.Unlock()

	for _, s := range subs {
		s.fn(c)
	}
}
