package convert

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/skdltmxn/khronos-ir/ir"
)

func TestTypeMapsResolve(t *testing.T) {
	tests := []struct {
		name string
		maps []TypeMap
		in   string
		want []string
	}{
		{
			name: "unmapped",
			maps: []TypeMap{{"a": "b"}},
			in:   "x",
			want: []string{"x"},
		},
		{
			name: "later map feeds earlier one",
			maps: []TypeMap{{"B": "C"}, {"A": "B"}},
			in:   "A",
			want: []string{"A", "B", "C"},
		},
		{
			name: "cycle",
			maps: []TypeMap{{"a": "b", "b": "a"}},
			in:   "a",
			want: []string{"a", "b"},
		},
		{
			name: "self alias",
			maps: []TypeMap{{"float": "float"}},
			in:   "float",
			want: []string{"float"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTypeMaps(tt.maps...)
			if diff := cmp.Diff(tt.want, tm.Chain(tt.in)); diff != "" {
				t.Errorf("Chain(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
			if got := tm.Resolve(tt.in); got != tt.want[len(tt.want)-1] {
				t.Errorf("Resolve(%q) = %q", tt.in, got)
			}
		})
	}
}

func TestTypeMapsAppendCopies(t *testing.T) {
	m := TypeMap{"a": "b"}
	tm := NewTypeMaps()
	tm.Append(m)
	tm.Append(TypeMap{})
	m["a"] = "c"

	if tm.Len() != 1 {
		t.Errorf("Len = %d, want 1", tm.Len())
	}
	if got, _ := tm.Lookup(0, "a"); got != "b" {
		t.Errorf("Lookup = %q, appended map was not copied", got)
	}
}

func TestSizeOf(t *testing.T) {
	ctx := testContext()
	ctx.TypeMaps.Append(TypeMap{"VkBool32": "uint32_t", "VkDeviceSize": "uint64_t"})

	tests := []struct {
		in   string
		want int
	}{
		{"uint8_t", 1},
		{"uint32_t", 4},
		{"float", 4},
		{"double", 8},
		{"size_t", 8},
		{"VkBool32", 4},
		{"VkDeviceSize", 8},
		{"VkSampleCountFlagBits", 4},
	}
	for _, tt := range tests {
		got, err := ctx.SizeOf(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("SizeOf(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}

	_, err := ctx.SizeOf("wchar_t")
	if !errors.Is(err, ir.ErrUnresolvableSize) {
		t.Errorf("SizeOf(wchar_t) err = %v, want ErrUnresolvableSize", err)
	}
}

func TestTypePrefix(t *testing.T) {
	for prefix, want := range map[string]string{"vk": "Vk", "VK": "Vk", "xr": "Xr", "": ""} {
		if got := NewContext(prefix, nil).TypePrefix(); got != want {
			t.Errorf("TypePrefix(%q) = %q, want %q", prefix, got, want)
		}
	}
}
