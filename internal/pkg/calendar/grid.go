package calendar

import "fmt"

type CellKind string

const (
	CellWeekday CellKind = "weekday"
	CellEmpty   CellKind = "empty"
	CellDay     CellKind = "day"
)

type Cell struct {
	Kind     CellKind `json:"kind"`
	Label    string   `json:"label,omitempty"`
	Day      int      `json:"day,omitempty"`
	Key      DateKey  `json:"key,omitempty"`
	Selected bool     `json:"selected,omitempty"`
}

type Grid struct {
	Header string `json:"header"`
	Cells  []Cell `json:"cells"`
}

// Days returns only the day cells.
func (g Grid) Days() []Cell {
	days := make([]Cell, 0, len(g.Cells))
	for _, c := range g.Cells {
		if c.Kind == CellDay {
			days = append(days, c)
		}
	}

	return days
}

func Header(cursor Cursor, labels Labels) string {
	return fmt.Sprintf("%s %d", labels.Months[cursor.Month], cursor.Year)
}

// Render builds the full grid for the cursor month. It is recomputed from
// scratch after every state change.
func Render(cursor Cursor, selection *Selection, labels Labels) Grid {
	firstWeekday := cursor.FirstWeekday()
	lastDay := cursor.DaysInMonth()

	cells := make([]Cell, 0, len(labels.Weekdays)+firstWeekday+lastDay)

	for _, name := range labels.Weekdays {
		cells = append(cells, Cell{Kind: CellWeekday, Label: name})
	}

	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, Cell{Kind: CellEmpty})
	}

	for day := 1; day <= lastDay; day++ {
		key := cursor.Key(day)
		cells = append(cells, Cell{
			Kind:     CellDay,
			Label:    fmt.Sprint(day),
			Day:      day,
			Key:      key,
			Selected: selection.Contains(key),
		})
	}

	return Grid{
		Header: Header(cursor, labels),
		Cells:  cells,
	}
}
