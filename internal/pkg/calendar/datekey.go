package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

const keySeparator = "-"

// DateKey identifies one calendar date as "YYYY-M-D" with a 1-based month and
// no zero padding, e.g. "2024-1-5".
type DateKey string

// NewDateKey composes a key from a 0-based month as held by the Cursor.
func NewDateKey(year, month, day int) DateKey {
	return DateKey(fmt.Sprintf("%d-%d-%d", year, month+1, day))
}

func (k DateKey) String() string {
	return string(k)
}

// ParseDateKey splits a key into year, 0-based month and day.
func ParseDateKey(raw string) (year, month, day int, err error) {
	parts := strings.Split(raw, keySeparator)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("error invalid date key %q, expected YYYY-M-D", raw)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("error parsing year of %q %w", raw, err)
	}

	m, err := datetime.ParseNumericMonth(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("error parsing month of %q %w", raw, err)
	}

	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("error parsing day of %q %w", raw, err)
	}

	if day < 1 || day > datetime.DaysInMonth(year, m) {
		return 0, 0, 0, fmt.Errorf("error day %d out of range for %q", day, raw)
	}

	return year, int(m) - 1, day, nil
}

// Time returns the key as midnight UTC of its date.
func (k DateKey) Time() (time.Time, error) {
	year, month, day, err := ParseDateKey(string(k))
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC), nil
}

// KeyFilter decides whether a raw piece of the external representation becomes
// a selected key.
type KeyFilter func(raw string) (DateKey, bool)

// Lenient keeps every piece verbatim.
func Lenient(raw string) (DateKey, bool) {
	return DateKey(raw), true
}

// Strict keeps only pieces that parse as valid dates.
func Strict(raw string) (DateKey, bool) {
	if _, _, _, err := ParseDateKey(raw); err != nil {
		return "", false
	}

	return DateKey(raw), true
}
