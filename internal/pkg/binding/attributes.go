package binding

import "sync"

const (
	AttributeDatas    = "datas"
	AttributeFetch    = "fetch"
	AttributeUUID     = "uuid"
	AttributeMesEnvio = "mes-envio"
)

// Observer is called with the previous and new value of an attribute. A nil
// pointer means the attribute is absent.
type Observer func(name string, oldValue, newValue *string)

// Attributes is the string attribute store of the host element. Observers only
// fire when a value or its presence actually changes.
type Attributes struct {
	mu        sync.Mutex
	values    map[string]string
	observers map[string][]Observer
}

func NewAttributes() *Attributes {
	return &Attributes{
		values:    make(map[string]string),
		observers: make(map[string][]Observer),
	}
}

// Observe registers fn for changes of name.
func (a *Attributes) Observe(name string, fn Observer) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.observers[name] = append(a.observers[name], fn)
}

func (a *Attributes) Get(name string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	v, ok := a.values[name]

	return v, ok
}

// Lookup returns nil when the attribute is absent.
func (a *Attributes) Lookup(name string) *string {
	v, ok := a.Get(name)
	if !ok {
		return nil
	}

	return &v
}

func (a *Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

func (a *Attributes) Set(name, value string) {
	a.mu.Lock()
	old, had := a.values[name]
	if had && old == value {
		a.mu.Unlock()
		return
	}

	a.values[name] = value
	observers := a.observers[name]
	a.mu.Unlock()

	var oldValue *string
	if had {
		oldValue = &old
	}

	notify(observers, name, oldValue, &value)
}

func (a *Attributes) Remove(name string) {
	a.mu.Lock()
	old, had := a.values[name]
	if !had {
		a.mu.Unlock()
		return
	}

	delete(a.values, name)
	observers := a.observers[name]
	a.mu.Unlock()

	notify(observers, name, &old, nil)
}

func notify(observers []Observer, name string, oldValue, newValue *string) {
	for _, fn := range observers {
		fn(name, oldValue, newValue)
	}
}
