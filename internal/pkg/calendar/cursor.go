package calendar

import "time"

// Cursor is the displayed year and 0-based month.
type Cursor struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func NewCursor(now time.Time) Cursor {
	return Cursor{Year: now.Year(), Month: int(now.Month()) - 1}
}

func (c Cursor) Prev() Cursor {
	c.Month--
	if c.Month < 0 {
		c.Month = 11
		c.Year--
	}

	return c
}

func (c Cursor) Next() Cursor {
	c.Month++
	if c.Month > 11 {
		c.Month = 0
		c.Year++
	}

	return c
}

// FirstWeekday is the weekday of day 1, 0 being Sunday.
func (c Cursor) FirstWeekday() int {
	return int(time.Date(c.Year, time.Month(c.Month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// DaysInMonth uses day 0 of the following month, which normalises to the last
// day of this one.
func (c Cursor) DaysInMonth() int {
	return time.Date(c.Year, time.Month(c.Month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

func (c Cursor) Key(day int) DateKey {
	return NewDateKey(c.Year, c.Month, day)
}
