package binding

import (
	"github.com/adiazny/ms-calendar/internal/pkg/calendar"
	"github.com/sirupsen/logrus"
)

// Binding keeps the datas attribute and a Selection consistent in both
// directions.
type Binding struct {
	Log        *logrus.Entry
	attrs      *Attributes
	selection  *calendar.Selection
	onChange   func()
	lastPushed *string
}

// New observes the datas attribute. onChange runs after every inbound
// replacement of the selection.
func New(log *logrus.Entry, attrs *Attributes, selection *calendar.Selection, onChange func()) *Binding {
	b := &Binding{
		Log:       log,
		attrs:     attrs,
		selection: selection,
		onChange:  onChange,
	}

	attrs.Observe(AttributeDatas, func(_ string, _, newValue *string) {
		if newValue == nil {
			b.OnExternalChange("", false)
			return
		}

		b.OnExternalChange(*newValue, true)
	})

	return b
}

// PushIfChanged writes the serialized selection to the attribute unless it
// already holds that value. It reports whether a write happened.
func (b *Binding) PushIfChanged() bool {
	datas := b.selection.Serialize()

	if current, ok := b.attrs.Get(AttributeDatas); ok && current == datas {
		return false
	}

	b.lastPushed = &datas
	b.attrs.Set(AttributeDatas, datas)

	if b.Log != nil {
		b.Log.WithField("datas", datas).Debug("pushed selection to attribute")
	}

	return true
}

// OnExternalChange replaces the selection from an attribute value. The echo of
// our own last push is ignored; nothing here ever pushes back.
func (b *Binding) OnExternalChange(value string, present bool) {
	if present && b.lastPushed != nil && *b.lastPushed == value && b.selection.Serialize() == value {
		return
	}

	b.lastPushed = nil
	b.selection.Deserialize(value, present)

	if b.Log != nil {
		b.Log.WithFields(logrus.Fields{
			"datas":    value,
			"present":  present,
			"selected": b.selection.Len(),
		}).Debug("selection replaced from attribute")
	}

	if b.onChange != nil {
		b.onChange()
	}
}

// InSync reports whether the attribute equals the serialized selection.
func (b *Binding) InSync() bool {
	current, _ := b.attrs.Get(AttributeDatas)
	return current == b.selection.Serialize()
}
