package decl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want Declaration
	}{
		{
			text: "uint32_t width",
			want: Declaration{Type: "uint32_t", Name: "width"},
		},
		{
			text: "const void* pNext",
			want: Declaration{Type: "void", Name: "pNext", Const: true, Pointers: 1},
		},
		{
			text: "const char* const*      ppEnabledLayerNames",
			want: Declaration{Type: "char", Name: "ppEnabledLayerNames", Const: true, Pointers: 2},
		},
		{
			text: "struct VkBaseOutStructure* pNext",
			want: Declaration{Type: "VkBaseOutStructure", Name: "pNext", Pointers: 1},
		},
		{
			text: "float matrix[3][4]",
			want: Declaration{Type: "float", Name: "matrix", Dimensions: []string{"3", "4"}},
		},
		{
			text: "char deviceName[ VK_MAX_PHYSICAL_DEVICE_NAME_SIZE ]",
			want: Declaration{Type: "char", Name: "deviceName", Dimensions: []string{"VK_MAX_PHYSICAL_DEVICE_NAME_SIZE"}},
		},
		{
			text: "uint32_t instanceCustomIndex:24",
			want: Declaration{Type: "uint32_t", Name: "instanceCustomIndex", BitWidth: 24},
		},
		{
			text: "VkResult vkCreateInstance;",
			want: Declaration{Type: "VkResult", Name: "vkCreateInstance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(tt.want, *got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{"", "const", "int x[4", "int x y", "int x:wide"} {
		_, err := Parse(text)
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("Parse(%q) error = %v, want *SyntaxError", text, err)
		}
	}
}

func TestElementCount(t *testing.T) {
	d := &Declaration{Dimensions: []string{"3", "4"}}
	if n, sym := d.ElementCount(); n != 12 || sym != "" {
		t.Errorf("ElementCount = %d, %q; want 12, \"\"", n, sym)
	}

	d = &Declaration{Dimensions: []string{"VK_UUID_SIZE"}}
	if n, sym := d.ElementCount(); n != 1 || sym != "VK_UUID_SIZE" {
		t.Errorf("ElementCount = %d, %q; want 1, VK_UUID_SIZE", n, sym)
	}

	d = &Declaration{}
	if n, sym := d.ElementCount(); n != 1 || sym != "" {
		t.Errorf("ElementCount = %d, %q; want 1, \"\"", n, sym)
	}
}
