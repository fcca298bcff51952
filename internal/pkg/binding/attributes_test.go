package binding_test

import (
	"testing"

	"github.com/adiazny/ms-calendar/internal/pkg/binding"
)

type change struct {
	old, new *string
}

func str(s string) *string {
	return &s
}

func TestAttributes_ObserveOnlyOnChange(t *testing.T) {
	attrs := binding.NewAttributes()

	changes := make([]change, 0)
	attrs.Observe(binding.AttributeDatas, func(_ string, oldValue, newValue *string) {
		changes = append(changes, change{oldValue, newValue})
	})

	attrs.Set(binding.AttributeDatas, "a")
	attrs.Set(binding.AttributeDatas, "a")
	attrs.Set(binding.AttributeFetch, "http://example.test")
	attrs.Set(binding.AttributeDatas, "b")
	attrs.Remove(binding.AttributeDatas)
	attrs.Remove(binding.AttributeDatas)

	if len(changes) != 3 {
		t.Fatalf("observer calls = %d, want 3", len(changes))
	}

	if changes[0].old != nil || *changes[0].new != "a" {
		t.Errorf("first change = %v -> %v", changes[0].old, changes[0].new)
	}

	if *changes[1].old != "a" || *changes[1].new != "b" {
		t.Errorf("second change = %v -> %v", *changes[1].old, *changes[1].new)
	}

	if *changes[2].old != "b" || changes[2].new != nil {
		t.Errorf("third change = %v -> %v", *changes[2].old, changes[2].new)
	}
}

func TestAttributes_Lookup(t *testing.T) {
	attrs := binding.NewAttributes()

	if got := attrs.Lookup(binding.AttributeUUID); got != nil {
		t.Errorf("Attributes.Lookup() = %v, want nil", *got)
	}

	attrs.Set(binding.AttributeUUID, "")

	if got := attrs.Lookup(binding.AttributeUUID); got == nil || *got != "" {
		t.Errorf("Attributes.Lookup() = %v, want empty string", got)
	}

	if !attrs.Has(binding.AttributeUUID) {
		t.Error("Attributes.Has() = false, want true")
	}
}
