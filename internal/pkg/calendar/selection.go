package calendar

import (
	"strings"
	"time"
)

const Delimiter = ","

// Selection is the ordered, duplicate-free set of selected dates.
type Selection struct {
	keys      []DateKey
	firstDate time.Time
	filter    KeyFilter
}

// NewSelection returns an empty selection. A nil filter means Lenient.
func NewSelection(now time.Time, filter KeyFilter) *Selection {
	if filter == nil {
		filter = Lenient
	}

	return &Selection{
		keys:      make([]DateKey, 0),
		firstDate: now,
		filter:    filter,
	}
}

func (s *Selection) index(key DateKey) int {
	for i, k := range s.keys {
		if k == key {
			return i
		}
	}

	return -1
}

func (s *Selection) Contains(key DateKey) bool {
	return s.index(key) >= 0
}

// Toggle removes key if present, otherwise appends it. It reports whether the
// key is selected afterwards.
func (s *Selection) Toggle(key DateKey) bool {
	if i := s.index(key); i >= 0 {
		s.keys = append(s.keys[:i], s.keys[i+1:]...)
		return false
	}

	s.keys = append(s.keys, key)

	return true
}

func (s *Selection) Len() int {
	return len(s.keys)
}

// Keys returns a copy of the keys in insertion order.
func (s *Selection) Keys() []DateKey {
	keys := make([]DateKey, len(s.keys))
	copy(keys, s.keys)

	return keys
}

// FirstDate is the first key of the last external replacement, or the
// construction time when none parsed.
func (s *Selection) FirstDate() time.Time {
	return s.firstDate
}

func (s *Selection) Serialize() string {
	parts := make([]string, len(s.keys))
	for i, k := range s.keys {
		parts[i] = string(k)
	}

	return strings.Join(parts, Delimiter)
}

// Deserialize replaces the whole selection from its external form. An absent
// value or an empty string resets to empty. Duplicate pieces keep their first
// occurrence.
func (s *Selection) Deserialize(text string, present bool) {
	s.keys = make([]DateKey, 0)

	if !present || text == "" {
		return
	}

	for _, raw := range strings.Split(text, Delimiter) {
		key, ok := s.filter(raw)
		if !ok || s.Contains(key) {
			continue
		}

		s.keys = append(s.keys, key)
	}

	if len(s.keys) == 0 {
		return
	}

	if first, err := s.keys[0].Time(); err == nil {
		s.firstDate = first
	}
}
