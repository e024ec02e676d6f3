package ir

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	static := NewStaticCount(4)
	if !static.IsStatic() || static.StaticCount() != 4 || static.Symbolic() != nil {
		t.Errorf("static count = %+v", static)
	}
	if static.String() != "4" {
		t.Errorf("String() = %q", static.String())
	}

	sym := NewSymbolicCount("enabledLayerCount")
	if sym.IsStatic() {
		t.Error("symbolic count reports static")
	}
	if sym.String() != "enabledLayerCount" {
		t.Errorf("String() = %q", sym.String())
	}

	multi := NewSymbolicCount("a", "b")
	if multi.String() != "a,b" {
		t.Errorf("String() = %q", multi.String())
	}
}

func TestFieldOffset(t *testing.T) {
	f := Field{Attributes: []Attribute{{Name: AttrFieldOffset, Arguments: []string{"8"}}}}
	if off, ok := f.Offset(); !ok || off != 8 {
		t.Errorf("Offset() = %d, %v; want 8, true", off, ok)
	}

	var plain Field
	if _, ok := plain.Offset(); ok {
		t.Error("Offset() reported an offset for a sequential field")
	}
}

func TestErrors(t *testing.T) {
	var err error = &DuplicateError{Category: CategoryEnum, NativeName: "VkResult"}
	if !errors.Is(err, ErrDuplicateEntity) {
		t.Error("DuplicateError does not match ErrDuplicateEntity")
	}
	if !strings.Contains(err.Error(), `"VkResult"`) {
		t.Errorf("message = %q", err.Error())
	}

	err = &SizeError{Type: "VkFoo", Resolved: "Foo"}
	if !errors.Is(err, ErrUnresolvableSize) {
		t.Error("SizeError does not match ErrUnresolvableSize")
	}
}

func TestProfileRecordJSON(t *testing.T) {
	rec := ProfileFunction{
		Function: &Function{
			Name:       "CreateInstance",
			NativeName: "vkCreateInstance",
			Parameters: []Parameter{{Name: "pInstance", Flow: FlowOut, Count: NewStaticCount(1)}},
		},
		Profile:    Profile{ProfileName: "vulkan", ProfileVersion: "1.0", ExtensionName: CoreExtension},
		Categories: []string{"VERSION_1_0"},
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{`"name":"CreateInstance"`, `"profile_name":"vulkan"`, `"flow":"out"`, `"count":"1"`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
}
