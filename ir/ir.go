package ir

import (
	"strconv"
	"strings"
)

// Attribute names understood by emitters.
const (
	// AttrExplicitLayout marks a structure whose fields overlap (a union).
	AttrExplicitLayout = "ExplicitLayout"

	// AttrFieldOffset carries a field's byte offset as its single argument.
	AttrFieldOffset = "FieldOffset"

	// AttrFlags marks an enum whose tokens combine as bit flags.
	AttrFlags = "Flags"
)

// CoreExtension is the extension name of entities that belong to the core
// API rather than an extension.
const CoreExtension = "Core"

// Attribute is emitter metadata attached to an entity.
type Attribute struct {
	Name      string   `json:"name" yaml:"name"`
	Arguments []string `json:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// Type is a canonical type reference.
type Type struct {
	Name              string   `json:"name" yaml:"name"`
	OriginalName      string   `json:"original_name,omitempty" yaml:"original_name,omitempty"`
	IndirectionLevels int      `json:"indirection_levels,omitempty" yaml:"indirection_levels,omitempty"`
	ArrayDimensions   []string `json:"array_dimensions,omitempty" yaml:"array_dimensions,omitempty"`
}

// Count is an element count: either a static literal or a symbolic
// expression. A nil *Count means a scalar.
type Count struct {
	static   int
	symbolic []string
}

// NewStaticCount returns a literal count.
func NewStaticCount(n int) *Count {
	return &Count{static: n}
}

// NewSymbolicCount returns a count given by an expression, usually the
// name of a sibling field or parameter.
func NewSymbolicCount(expr ...string) *Count {
	return &Count{symbolic: expr}
}

// IsStatic reports whether the count is a literal.
func (c *Count) IsStatic() bool { return c.symbolic == nil }

// StaticCount returns the literal count.
func (c *Count) StaticCount() int { return c.static }

// Symbolic returns the symbolic expression parts.
func (c *Count) Symbolic() []string { return c.symbolic }

func (c *Count) String() string {
	if c.IsStatic() {
		return strconv.Itoa(c.static)
	}
	return strings.Join(c.symbolic, ",")
}

// MarshalText renders the count for JSON and YAML dumps.
func (c *Count) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// MarshalYAML renders the count for YAML dumps.
func (c *Count) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// Field is a structure member.
type Field struct {
	Name              string      `json:"name" yaml:"name"`
	NativeName        string      `json:"native_name" yaml:"native_name"`
	NativeType        string      `json:"native_type" yaml:"native_type"`
	Type              Type        `json:"type" yaml:"type"`
	Count             *Count      `json:"count,omitempty" yaml:"count,omitempty"`
	DefaultAssignment string      `json:"default_assignment,omitempty" yaml:"default_assignment,omitempty"`
	Doc               string      `json:"doc,omitempty" yaml:"doc,omitempty"`
	Attributes        []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Offset returns the explicit byte offset of a union field.
func (f *Field) Offset() (int, bool) {
	for _, a := range f.Attributes {
		if a.Name == AttrFieldOffset && len(a.Arguments) == 1 {
			n, err := strconv.Atoi(a.Arguments[0])
			return n, err == nil
		}
	}
	return 0, false
}

// Struct is a structure, union, or handle.
type Struct struct {
	Name       string      `json:"name" yaml:"name"`
	NativeName string      `json:"native_name" yaml:"native_name"`
	Fields     []Field     `json:"fields" yaml:"fields"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// HasAttribute reports whether the struct carries the named attribute.
func (s *Struct) HasAttribute(name string) bool {
	return hasAttribute(s.Attributes, name)
}

// FlowDirection is the direction data moves through a parameter.
type FlowDirection uint8

const (
	FlowUndefined FlowDirection = iota
	FlowIn
	FlowOut
	FlowRef
)

func (f FlowDirection) String() string {
	switch f {
	case FlowIn:
		return "in"
	case FlowOut:
		return "out"
	case FlowRef:
		return "ref"
	default:
		return "undefined"
	}
}

// MarshalText renders the direction by name.
func (f FlowDirection) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// MarshalYAML renders the direction by name.
func (f FlowDirection) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// Parameter is a function parameter.
type Parameter struct {
	Name  string        `json:"name" yaml:"name"`
	Type  Type          `json:"type" yaml:"type"`
	Flow  FlowDirection `json:"flow" yaml:"flow"`
	Count *Count        `json:"count,omitempty" yaml:"count,omitempty"`
}

// Function is a command.
type Function struct {
	Name       string      `json:"name" yaml:"name"`
	NativeName string      `json:"native_name" yaml:"native_name"`
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
	ReturnType Type        `json:"return_type" yaml:"return_type"`
}

// Token is an enumerant.
type Token struct {
	Name       string `json:"name" yaml:"name"`
	NativeName string `json:"native_name" yaml:"native_name"`
	Value      string `json:"value" yaml:"value"`
	Doc        string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Enum is an enumeration.
type Enum struct {
	Name       string      `json:"name" yaml:"name"`
	NativeName string      `json:"native_name" yaml:"native_name"`
	Tokens     []Token     `json:"tokens" yaml:"tokens"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// IsFlags reports whether the enum is a bitmask.
func (e *Enum) IsFlags() bool {
	return hasAttribute(e.Attributes, AttrFlags)
}

// Constant is a named value.
type Constant struct {
	Name          string `json:"name" yaml:"name"`
	NativeName    string `json:"native_name" yaml:"native_name"`
	Value         string `json:"value" yaml:"value"`
	Type          Type   `json:"type" yaml:"type"`
	ExtensionName string `json:"extension_name" yaml:"extension_name"`
}

func hasAttribute(attrs []Attribute, name string) bool {
	for _, a := range attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}
