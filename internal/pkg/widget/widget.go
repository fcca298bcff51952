// Package widget is the headless calendar: month navigation, date toggling,
// the datas attribute binding and submission, one instance per host element.
package widget

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adiazny/ms-calendar/internal/pkg/binding"
	"github.com/adiazny/ms-calendar/internal/pkg/calendar"
	"github.com/adiazny/ms-calendar/internal/pkg/submit"
)

// View receives every re-render and loading indicator transition. SetLoading
// may be called from the goroutine running a submission.
type View interface {
	Render(grid calendar.Grid)
	SetLoading(showing bool)
}

type nopView struct{}

func (nopView) Render(calendar.Grid) {}
func (nopView) SetLoading(bool)      {}

type Options struct {
	Log      *logrus.Entry
	Clock    func() time.Time
	Labels   *calendar.Labels
	Filter   calendar.KeyFilter
	View     View
	HTTP     submit.HTTPClient
	Tokens   submit.TokenSource
	Notifier submit.Notifier
}

// Widget serializes its handlers the way a single event loop would. Attribute
// observers run inside a handler and must not call back into the Widget.
type Widget struct {
	mu sync.Mutex

	log       *logrus.Entry
	labels    calendar.Labels
	view      View
	cursor    calendar.Cursor
	selection *calendar.Selection
	attrs     *binding.Attributes
	binding   *binding.Binding
	grid      calendar.Grid

	indicator  *Indicator
	events     *submit.Dispatcher
	controller *submit.Controller
}

func New(opts Options) *Widget {
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithField("component", "ms-calendar")

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	labels := calendar.Portuguese
	if opts.Labels != nil {
		labels = *opts.Labels
	}

	view := opts.View
	if view == nil {
		view = nopView{}
	}

	filter := opts.Filter
	if filter == nil {
		filter = calendar.Lenient
	}

	now := clock()

	w := &Widget{
		log:       log,
		labels:    labels,
		view:      view,
		cursor:    calendar.NewCursor(now),
		attrs:     binding.NewAttributes(),
		indicator: NewIndicator(view),
		events:    &submit.Dispatcher{},
	}

	w.selection = calendar.NewSelection(now, func(raw string) (calendar.DateKey, bool) {
		key, ok := filter(raw)
		if !ok {
			log.WithField("key", raw).Warn("dropping malformed date key")
		}
		return key, ok
	})

	w.binding = binding.New(log, w.attrs, w.selection, w.render)

	w.controller = &submit.Controller{
		Log:      log,
		HTTP:     opts.HTTP,
		Tokens:   opts.Tokens,
		Notifier: opts.Notifier,
		Loading:  w.indicator,
		Events:   w.events,
	}

	w.mu.Lock()
	w.render()
	w.mu.Unlock()

	return w
}

// render must be called with mu held.
func (w *Widget) render() {
	w.grid = calendar.Render(w.cursor, w.selection, w.labels)
	w.view.Render(w.grid)
}

func (w *Widget) PrevMonth() calendar.Cursor {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.cursor = w.cursor.Prev()
	w.render()

	return w.cursor
}

func (w *Widget) NextMonth() calendar.Cursor {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.cursor = w.cursor.Next()
	w.render()

	return w.cursor
}

// Toggle flips key, re-renders and brings the datas attribute in line. It
// reports whether the key is selected afterwards.
func (w *Widget) Toggle(key calendar.DateKey) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	selected := w.selection.Toggle(key)
	w.render()
	w.binding.PushIfChanged()

	return selected
}

// ToggleDay toggles a day of the displayed month.
func (w *Widget) ToggleDay(day int) (bool, error) {
	w.mu.Lock()
	if day < 1 || day > w.cursor.DaysInMonth() {
		w.mu.Unlock()
		return false, fmt.Errorf("error day %d is not in %s", day, calendar.Header(w.cursor, w.labels))
	}
	key := w.cursor.Key(day)
	w.mu.Unlock()

	return w.Toggle(key), nil
}

// SetAttribute is how an external actor writes host attributes.
func (w *Widget) SetAttribute(name, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.attrs.Set(name, value)
}

func (w *Widget) RemoveAttribute(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.attrs.Remove(name)
}

func (w *Widget) Attribute(name string) (string, bool) {
	return w.attrs.Get(name)
}

// Observe registers an external observer on a host attribute.
func (w *Widget) Observe(name string, fn binding.Observer) {
	w.attrs.Observe(name, fn)
}

// Subscribe registers a completion listener; the returned func removes it.
func (w *Widget) Subscribe(fn submit.Listener) func() {
	return w.events.Subscribe(fn)
}

// Confirm flushes the selection to the datas attribute and, when a fetch
// target is configured, submits it. The exchange runs outside the handler
// lock so dates stay toggleable while it is in flight.
func (w *Widget) Confirm(ctx context.Context) submit.Outcome {
	w.mu.Lock()
	w.binding.PushIfChanged()

	target, ok := w.attrs.Get(binding.AttributeFetch)
	pending := submit.NewPendingRequest(
		w.selection.Serialize(),
		w.attrs.Lookup(binding.AttributeUUID),
		w.attrs.Lookup(binding.AttributeMesEnvio),
	)
	w.mu.Unlock()

	if !ok {
		w.log.WithField("datas", pending.Datas).Debug("no fetch target, selection kept locally")
		return submit.Outcome{State: submit.StateIdle, Skipped: true}
	}

	return w.controller.Submit(ctx, target, pending)
}

func (w *Widget) State() submit.State {
	return w.controller.State()
}

func (w *Widget) Loading() bool {
	return w.indicator.Showing()
}

func (w *Widget) Grid() calendar.Grid {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.grid
}

func (w *Widget) Cursor() calendar.Cursor {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.cursor
}

func (w *Widget) Header() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.grid.Header
}

// Datas is the serialized selection.
func (w *Widget) Datas() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.selection.Serialize()
}

func (w *Widget) Selected() []calendar.DateKey {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.selection.Keys()
}

func (w *Widget) FirstDate() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.selection.FirstDate()
}
