package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const testRegistry = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
  <types>
    <type category="basetype">typedef <type>uint32_t</type> <name>VkFlags</name>;</type>
    <type category="basetype">typedef <type>uint32_t</type> <name>VkBool32</name>;</type>
    <type requires="VkCullModeFlagBits" category="bitmask">typedef <type>VkFlags</type> <name>VkCullModeFlags</name>;</type>
    <type category="bitmask">typedef <type>VkFlags</type> <name>VkInstanceCreateFlags</name>;</type>
    <type category="bitmask" name="VkCullModeFlagsKHR" alias="VkCullModeFlags"/>
    <type category="handle"><type>VK_DEFINE_HANDLE</type>(<name>VkInstance</name>)</type>
    <type category="handle" parent="VkDevice"><type>VK_DEFINE_NON_DISPATCHABLE_HANDLE</type>(<name>VkBuffer</name>)</type>
    <type category="struct" name="VkInstanceCreateInfo">
      <member values="VK_STRUCTURE_TYPE_INSTANCE_CREATE_INFO"><type>VkStructureType</type> <name>sType</name></member>
      <member optional="true">const <type>void</type>* <name>pNext</name></member>
      <member optional="true"><type>VkInstanceCreateFlags</type> <name>flags</name></member>
      <member optional="true"><type>uint32_t</type> <name>enabledLayerCount</name></member>
      <member len="enabledLayerCount,null-terminated">const <type>char</type>* const* <name>ppEnabledLayerNames</name></member>
      <member><type>char</type> <name>deviceName</name>[<enum>VK_MAX_PHYSICAL_DEVICE_NAME_SIZE</enum>]</member>
      <member><type>float</type> <name>matrix</name>[3][4]</member>
      <member api="vulkansc"><type>uint32_t</type> <name>scOnly</name></member>
    </type>
    <type category="union" name="VkClearColorValue">
      <member><type>float</type> <name>float32</name>[4]</member>
      <member><type>int32_t</type> <name>int32</name>[4]</member>
    </type>
  </types>
  <enums name="API Constants" type="constants">
    <enum type="uint32_t" value="256" name="VK_MAX_PHYSICAL_DEVICE_NAME_SIZE"/>
    <enum type="float" value="1000.0F" name="VK_LOD_CLAMP_NONE"/>
    <enum type="uint64_t" value="(~0ULL)" name="VK_WHOLE_SIZE"/>
    <enum name="VK_LUID_SIZE_KHR" alias="VK_LUID_SIZE"/>
  </enums>
  <enums name="VkResult" type="enum">
    <enum value="0" name="VK_SUCCESS"/>
    <enum value="-1" name="VK_ERROR_OUT_OF_HOST_MEMORY"/>
  </enums>
  <enums name="VkCullModeFlagBits" type="bitmask">
    <enum value="0" name="VK_CULL_MODE_NONE"/>
    <enum bitpos="0" name="VK_CULL_MODE_FRONT_BIT"/>
    <enum bitpos="1" name="VK_CULL_MODE_BACK_BIT"/>
  </enums>
  <commands>
    <command successcodes="VK_SUCCESS" errorcodes="VK_ERROR_OUT_OF_HOST_MEMORY">
      <proto><type>VkResult</type> <name>vkCreateInstance</name></proto>
      <param>const <type>VkInstanceCreateInfo</type>* <name>pCreateInfo</name></param>
      <param><type>VkInstance</type>* <name>pInstance</name></param>
    </command>
    <command>
      <proto><type>void</type> <name>vkMapMemory</name></proto>
      <param><type>VkBuffer</type> <name>buffer</name></param>
      <param><type>void</type>** <name>ppData</name></param>
    </command>
    <command name="vkCreateInstanceKHR" alias="vkCreateInstance"/>
  </commands>
  <feature api="vulkan,vulkansc" name="VK_VERSION_1_0" number="1.0">
    <require>
      <command name="vkCreateInstance"/>
      <command name="vkMapMemory"/>
    </require>
    <require api="vulkansc">
      <command name="vkScOnly"/>
    </require>
  </feature>
  <extensions>
    <extension name="VK_KHR_surface" number="1" type="instance" supported="vulkan,vulkansc">
      <require>
        <enum value="25" name="VK_KHR_SURFACE_SPEC_VERSION"/>
        <enum value="&quot;VK_KHR_surface&quot;" name="VK_KHR_SURFACE_EXTENSION_NAME"/>
        <enum offset="0" extends="VkResult" dir="-" name="VK_ERROR_SURFACE_LOST_KHR"/>
        <enum bitpos="2" extends="VkCullModeFlagBits" name="VK_CULL_MODE_SIDE_BIT_KHR"/>
        <enum name="VK_MAX_PHYSICAL_DEVICE_NAME_SIZE"/>
        <command name="vkDestroySurfaceKHR"/>
      </require>
    </extension>
    <extension name="VK_EXT_disabled" number="7" supported="disabled">
      <require>
        <enum offset="0" extends="VkResult" name="VK_DISABLED_EXT"/>
      </require>
    </extension>
  </extensions>
</registry>`

func loadTest(t *testing.T, opts ...Option) *Specification {
	t.Helper()
	spec, err := Load(strings.NewReader(testRegistry), opts...)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return spec
}

func TestLoadTypes(t *testing.T) {
	spec := loadTest(t, WithAPI("vulkan"))

	if got := spec.BaseTypes; !cmp.Equal(got, map[string]string{"VkFlags": "uint32_t", "VkBool32": "uint32_t"}) {
		t.Errorf("BaseTypes = %v", got)
	}

	wantTypedefs := []*TypedefDefinition{
		{Name: "VkCullModeFlags", Type: "VkFlags", Requires: "VkCullModeFlagBits"},
		{Name: "VkInstanceCreateFlags", Type: "VkFlags"},
	}
	if diff := cmp.Diff(wantTypedefs, spec.Typedefs); diff != "" {
		t.Errorf("Typedefs mismatch (-want +got):\n%s", diff)
	}

	wantHandles := []*HandleDefinition{
		{Name: "VkInstance", CanBeDispatched: true},
		{Name: "VkBuffer", Parent: "VkDevice"},
	}
	if diff := cmp.Diff(wantHandles, spec.Handles); diff != "" {
		t.Errorf("Handles mismatch (-want +got):\n%s", diff)
	}

	if len(spec.Structures) != 1 || len(spec.Unions) != 1 {
		t.Fatalf("got %d structures, %d unions", len(spec.Structures), len(spec.Unions))
	}

	members := spec.Structures[0].Members
	if len(members) != 7 {
		t.Fatalf("got %d members, want 7 (vulkansc member filtered)", len(members))
	}

	want := []MemberSpec{
		{Name: "sType", Type: TypeSpec{Name: "VkStructureType"}, ElementCount: 1, LegalValues: "VK_STRUCTURE_TYPE_INSTANCE_CREATE_INFO"},
		{Name: "pNext", Type: TypeSpec{Name: "void", PointerIndirection: 1}, IsConst: true, ElementCount: 1, Optional: true},
		{Name: "flags", Type: TypeSpec{Name: "VkInstanceCreateFlags"}, ElementCount: 1, Optional: true},
		{Name: "enabledLayerCount", Type: TypeSpec{Name: "uint32_t"}, ElementCount: 1, Optional: true},
		{
			Name: "ppEnabledLayerNames", Type: TypeSpec{Name: "char", PointerIndirection: 2}, IsConst: true,
			ElementCount: 1, ElementCountSymbolic: "enabledLayerCount", IsNullTerminated: true,
		},
		{
			Name: "deviceName", Type: TypeSpec{Name: "char", ArrayDimensions: []string{"VK_MAX_PHYSICAL_DEVICE_NAME_SIZE"}},
			ElementCount: 1, ElementCountSymbolic: "VK_MAX_PHYSICAL_DEVICE_NAME_SIZE",
		},
		{Name: "matrix", Type: TypeSpec{Name: "float", ArrayDimensions: []string{"3", "4"}}, ElementCount: 12},
	}
	if diff := cmp.Diff(want, members, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}

	if got := members[4].Type.String(); got != "char**" {
		t.Errorf("TypeSpec.String() = %q, want char**", got)
	}
	if got := members[6].Type.String(); got != "float[3][4]" {
		t.Errorf("TypeSpec.String() = %q, want float[3][4]", got)
	}
}

func TestLoadEnumsAndConstants(t *testing.T) {
	spec := loadTest(t)

	wantConstants := []*ConstantDefinition{
		{Name: "VK_MAX_PHYSICAL_DEVICE_NAME_SIZE", Value: "256", Type: ConstantUInt32},
		{Name: "VK_LOD_CLAMP_NONE", Value: "1000.0F", Type: ConstantFloat32},
		{Name: "VK_WHOLE_SIZE", Value: "(~0ULL)", Type: ConstantUInt64},
	}
	if diff := cmp.Diff(wantConstants, spec.Constants); diff != "" {
		t.Errorf("Constants mismatch (-want +got):\n%s", diff)
	}

	result, err := spec.Enum("VkResult")
	if err != nil {
		t.Fatal(err)
	}
	wantResult := []EnumValue{
		{Name: "VK_SUCCESS", Value: "0"},
		{Name: "VK_ERROR_OUT_OF_HOST_MEMORY", Value: "-1"},
		{Name: "VK_ERROR_SURFACE_LOST_KHR", Value: "-1000000000"},
	}
	if diff := cmp.Diff(wantResult, result.Values); diff != "" {
		t.Errorf("VkResult values mismatch (-want +got):\n%s", diff)
	}

	cull, err := spec.Enum("VkCullModeFlagBits")
	if err != nil {
		t.Fatal(err)
	}
	if cull.Kind != EnumBitmask {
		t.Errorf("kind = %v, want bitmask", cull.Kind)
	}
	wantCull := []EnumValue{
		{Name: "VK_CULL_MODE_NONE", Value: "0"},
		{Name: "VK_CULL_MODE_FRONT_BIT", Value: "1"},
		{Name: "VK_CULL_MODE_BACK_BIT", Value: "2"},
		{Name: "VK_CULL_MODE_SIDE_BIT_KHR", Value: "4"},
	}
	if diff := cmp.Diff(wantCull, cull.Values); diff != "" {
		t.Errorf("VkCullModeFlagBits values mismatch (-want +got):\n%s", diff)
	}

	if _, err := spec.Enum("VkMissing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Enum(VkMissing) error = %v, want ErrNotFound", err)
	}
}

func TestLoadCommands(t *testing.T) {
	spec := loadTest(t)

	if len(spec.Commands) != 2 {
		t.Fatalf("got %d commands, want 2 (alias dropped)", len(spec.Commands))
	}

	create, err := spec.Command("vkCreateInstance")
	if err != nil {
		t.Fatal(err)
	}
	if create.ReturnType.Name != "VkResult" {
		t.Errorf("return type = %q", create.ReturnType.Name)
	}
	if diff := cmp.Diff([]string{"VK_SUCCESS"}, create.SuccessCodes); diff != "" {
		t.Errorf("success codes mismatch:\n%s", diff)
	}

	mods := func(c *CommandDefinition) []ParameterModifier {
		var out []ParameterModifier
		for _, p := range c.Parameters {
			out = append(out, p.Modifier)
		}
		return out
	}
	if diff := cmp.Diff([]ParameterModifier{ModifierIn, ModifierOut}, mods(create)); diff != "" {
		t.Errorf("vkCreateInstance modifiers mismatch:\n%s", diff)
	}

	mapMemory, err := spec.Command("vkMapMemory")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]ParameterModifier{ModifierUnspecified, ModifierRef}, mods(mapMemory)); diff != "" {
		t.Errorf("vkMapMemory modifiers mismatch:\n%s", diff)
	}
}

func TestLoadFeaturesAndExtensions(t *testing.T) {
	spec := loadTest(t)

	if len(spec.Features) != 2 {
		t.Fatalf("got %d features, want one per API tag", len(spec.Features))
	}
	if spec.Features[0].API != "vulkan" || spec.Features[1].API != "vulkansc" {
		t.Errorf("feature APIs = %q, %q", spec.Features[0].API, spec.Features[1].API)
	}
	wantCommands := []string{"vkCreateInstance", "vkMapMemory", "vkScOnly"}
	if diff := cmp.Diff(wantCommands, spec.Features[0].CommandNames); diff != "" {
		t.Errorf("feature commands mismatch:\n%s", diff)
	}

	if len(spec.Extensions) != 2 {
		t.Fatalf("got %d extensions, want 2", len(spec.Extensions))
	}

	surface := spec.Extensions[0]
	if diff := cmp.Diff([]string{"vulkan", "vulkansc"}, surface.Supported); diff != "" {
		t.Errorf("supported mismatch:\n%s", diff)
	}
	wantConstants := []ExtensionConstant{
		{Name: "VK_KHR_SURFACE_SPEC_VERSION", Value: "25"},
		{Name: "VK_KHR_SURFACE_EXTENSION_NAME", Value: `"VK_KHR_surface"`},
	}
	if diff := cmp.Diff(wantConstants, surface.Constants); diff != "" {
		t.Errorf("extension constants mismatch:\n%s", diff)
	}
	if len(surface.EnumExtensions) != 2 || surface.EnumExtensions[0].ExtendedType != "VkResult" {
		t.Errorf("enum extensions = %+v", surface.EnumExtensions)
	}

	disabled := spec.Extensions[1]
	if len(disabled.Supported) != 0 {
		t.Errorf("disabled extension supports %v", disabled.Supported)
	}
	result, _ := spec.Enum("VkResult")
	for _, v := range result.Values {
		if v.Name == "VK_DISABLED_EXT" {
			t.Error("disabled extension extended VkResult")
		}
	}
}

func TestLoadWithAPI(t *testing.T) {
	spec := loadTest(t, WithAPI("vulkan"))

	if len(spec.Features) != 1 || spec.Features[0].API != "vulkan" {
		t.Fatalf("features = %+v", spec.Features)
	}
	if diff := cmp.Diff([]string{"vkCreateInstance", "vkMapMemory"}, spec.Features[0].CommandNames); diff != "" {
		t.Errorf("feature commands mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"vulkan"}, spec.Extensions[0].Supported); diff != "" {
		t.Errorf("supported mismatch:\n%s", diff)
	}
}

func TestLoadFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not xml", "this is not a registry"},
		{"wrong root", "<notregistry/>"},
		{
			"bad declarator",
			`<registry><types><type category="struct" name="VkS"><member><type>int</type></member></type></types></registry>`,
		},
		{
			"unknown extended enum",
			`<registry><extensions><extension name="VK_X" number="1" supported="vulkan"><require>
			<enum offset="0" extends="VkNope" name="VK_X_VALUE"/></require></extension></extensions></registry>`,
		},
		{
			"bad bitpos",
			`<registry><enums name="VkE" type="bitmask"><enum bitpos="x" name="VK_E_BIT"/></enums></registry>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Load(strings.NewReader(tt.doc))
			if spec != nil {
				t.Error("partial model returned")
			}
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("error = %v, want ErrFormat", err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("error %T is not a *FormatError", err)
			}
		})
	}
}
