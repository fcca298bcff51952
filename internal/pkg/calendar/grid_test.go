package calendar_test

import (
	"reflect"
	"testing"

	"github.com/adiazny/ms-calendar/internal/pkg/calendar"
)

func countKind(g calendar.Grid, kind calendar.CellKind) int {
	n := 0
	for _, c := range g.Cells {
		if c.Kind == kind {
			n++
		}
	}

	return n
}

func TestRender_January2024(t *testing.T) {
	cursor := calendar.Cursor{Year: 2024, Month: 0}
	selection := newSelection("2024-1-15", "2024-2-1", "2024-1-1")

	grid := calendar.Render(cursor, selection, calendar.Portuguese)

	if got, want := grid.Header, "Janeiro 2024"; got != want {
		t.Errorf("Render().Header = %q, want %q", got, want)
	}

	// 2024-01-01 is a Monday.
	if got := countKind(grid, calendar.CellEmpty); got != 1 {
		t.Errorf("empty cells = %d, want 1", got)
	}

	if got := countKind(grid, calendar.CellWeekday); got != 7 {
		t.Errorf("weekday cells = %d, want 7", got)
	}

	days := grid.Days()
	if len(days) != 31 {
		t.Fatalf("day cells = %d, want 31", len(days))
	}

	selected := make([]calendar.DateKey, 0)
	for _, c := range days {
		if c.Selected {
			selected = append(selected, c.Key)
		}
	}

	if want := []calendar.DateKey{"2024-1-1", "2024-1-15"}; !reflect.DeepEqual(selected, want) {
		t.Errorf("selected cells = %v, want %v", selected, want)
	}
}

func TestRender_Order(t *testing.T) {
	// 2024-09-01 is a Sunday: no placeholders.
	grid := calendar.Render(calendar.Cursor{Year: 2024, Month: 8}, newSelection(), calendar.English)

	if got := countKind(grid, calendar.CellEmpty); got != 0 {
		t.Errorf("empty cells = %d, want 0", got)
	}

	want := calendar.Cell{Kind: calendar.CellWeekday, Label: "Sun"}
	if grid.Cells[0] != want {
		t.Errorf("first cell = %v, want %v", grid.Cells[0], want)
	}

	first := grid.Cells[7]
	if first.Kind != calendar.CellDay || first.Day != 1 || first.Key != "2024-9-1" {
		t.Errorf("first day cell = %v", first)
	}

	if got, want := grid.Header, "September 2024"; got != want {
		t.Errorf("Render().Header = %q, want %q", got, want)
	}
}

func TestRender_LeadingPlaceholders(t *testing.T) {
	// 2024-06-01 is a Saturday.
	grid := calendar.Render(calendar.Cursor{Year: 2024, Month: 5}, newSelection(), calendar.Portuguese)

	if got := countKind(grid, calendar.CellEmpty); got != 6 {
		t.Errorf("empty cells = %d, want 6", got)
	}

	if got := len(grid.Days()); got != 30 {
		t.Errorf("day cells = %d, want 30", got)
	}
}

func TestLabelsFor(t *testing.T) {
	tests := []struct {
		locale string
		want   calendar.Labels
	}{
		{"pt-BR", calendar.Portuguese},
		{"", calendar.Portuguese},
		{"en-US", calendar.English},
		{"EN", calendar.English},
	}
	for _, tt := range tests {
		if got := calendar.LabelsFor(tt.locale); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("LabelsFor(%q) = %v, want %v", tt.locale, got, tt.want)
		}
	}
}
