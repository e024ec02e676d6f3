package xmlreg

import (
	"strings"
	"testing"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
  <types>
    <type category="struct" name="VkApplicationInfo">
      <member values="VK_STRUCTURE_TYPE_APPLICATION_INFO"><type>VkStructureType</type> <name>sType</name></member>
      <member optional="true">const <type>void</type>*     <name>pNext</name></member>
      <member len="null-terminated">const <type>char</type>*<name>pApplicationName</name><comment>app name</comment></member>
      <member><type>char</type> <name>deviceName</name>[<enum>VK_MAX_PHYSICAL_DEVICE_NAME_SIZE</enum>]</member>
    </type>
    <type category="handle"><type>VK_DEFINE_HANDLE</type>(<name>VkInstance</name>)</type>
  </types>
  <commands>
    <command>
      <proto><type>VkResult</type> <name>vkCreateInstance</name></proto>
      <param>const <type>VkInstanceCreateInfo</type>* <name>pCreateInfo</name></param>
      <param><type>VkInstance</type>* <name>pInstance</name></param>
    </command>
  </commands>
</registry>`

func TestDecode(t *testing.T) {
	reg, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(reg.Types) != 2 {
		t.Fatalf("got %d types, want 2", len(reg.Types))
	}

	s := reg.Types[0]
	if s.TypeName() != "VkApplicationInfo" || len(s.Members) != 4 {
		t.Fatalf("struct = %q with %d members", s.TypeName(), len(s.Members))
	}

	wantText := []string{
		"VkStructureType sType",
		"const void * pNext",
		"const char * pApplicationName",
		"char deviceName [ VK_MAX_PHYSICAL_DEVICE_NAME_SIZE ]",
	}
	for i, m := range s.Members {
		if m.Text != wantText[i] {
			t.Errorf("member %d text = %q, want %q", i, m.Text, wantText[i])
		}
	}
	if s.Members[0].Values != "VK_STRUCTURE_TYPE_APPLICATION_INFO" {
		t.Errorf("values = %q", s.Members[0].Values)
	}
	if m := s.Members[2]; m.Len != "null-terminated" || m.Comment != "app name" || m.TypeName != "char" {
		t.Errorf("member 2 = %+v", m)
	}

	h := reg.Types[1]
	if h.TypeName() != "VkInstance" || h.InnerType != "VK_DEFINE_HANDLE" {
		t.Errorf("handle = %q / %q", h.TypeName(), h.InnerType)
	}

	if len(reg.Commands) != 1 {
		t.Fatalf("got %d commands, want 1", len(reg.Commands))
	}
	c := reg.Commands[0]
	if c.Proto.Name != "vkCreateInstance" || c.Proto.TypeName != "VkResult" {
		t.Errorf("proto = %+v", c.Proto)
	}
	if len(c.Params) != 2 || c.Params[1].Name != "pInstance" {
		t.Errorf("params = %+v", c.Params)
	}
}
