package widget

import "sync"

// Indicator turns repeated Show/Hide calls into single transitions on the
// view. The first Hide wins when several submissions overlap.
type Indicator struct {
	mu      sync.Mutex
	showing bool
	view    View
}

func NewIndicator(view View) *Indicator {
	return &Indicator{view: view}
}

func (i *Indicator) Show() {
	i.set(true)
}

func (i *Indicator) Hide() {
	i.set(false)
}

func (i *Indicator) Showing() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.showing
}

func (i *Indicator) set(showing bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.showing == showing {
		return
	}

	i.showing = showing
	i.view.SetLoading(showing)
}
