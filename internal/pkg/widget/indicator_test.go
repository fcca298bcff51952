package widget_test

import (
	"reflect"
	"testing"

	"github.com/adiazny/ms-calendar/internal/pkg/widget"
)

func TestIndicator_Idempotent(t *testing.T) {
	view := &recordingView{}

	ind := widget.NewIndicator(view)
	ind.Show()
	ind.Show()
	ind.Hide()
	ind.Hide()
	ind.Show()

	if want := []bool{true, false, true}; !reflect.DeepEqual(view.loading, want) {
		t.Errorf("loading transitions = %v, want %v", view.loading, want)
	}

	if !ind.Showing() {
		t.Error("Indicator.Showing() = false, want true")
	}
}
