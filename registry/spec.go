package registry

import (
	"strings"
)

// TypeSpec is a native type reference: a base type name plus pointer and
// array decoration.
type TypeSpec struct {
	Name               string
	PointerIndirection int
	ArrayDimensions    []string
}

// String renders the type in C-like form, e.g. "char**" or "float[4]".
func (t TypeSpec) String() string {
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteString(strings.Repeat("*", t.PointerIndirection))
	for _, dim := range t.ArrayDimensions {
		b.WriteByte('[')
		b.WriteString(dim)
		b.WriteByte(']')
	}
	return b.String()
}

// MemberSpec is a member of a structure or union.
type MemberSpec struct {
	Name    string
	Type    TypeSpec
	Comment string

	// IsConst is set when the base type is const-qualified.
	IsConst bool

	// ElementCount is the product of the literal array dimensions, 1 for
	// scalar members.
	ElementCount int

	// ElementCountSymbolic is a symbolic array dimension, or the len
	// expression of a pointer member.
	ElementCountSymbolic string

	// IsNullTerminated is set when the member's len marks it null-terminated.
	IsNullTerminated bool

	// LegalValues is the comma-separated list of statically known values.
	LegalValues string

	// BitWidth is the bit-field width, 0 for ordinary members.
	BitWidth int

	Optional bool
}

// StructureDefinition is a struct or union type.
type StructureDefinition struct {
	Name         string
	Members      []MemberSpec
	Comment      string
	ReturnedOnly bool
}

// HandleDefinition is an opaque handle type.
type HandleDefinition struct {
	Name            string
	Parent          string
	CanBeDispatched bool
}

// EnumKind classifies an enumeration.
type EnumKind uint8

const (
	EnumPlain EnumKind = iota
	EnumBitmask
)

func (k EnumKind) String() string {
	switch k {
	case EnumBitmask:
		return "bitmask"
	default:
		return "enum"
	}
}

// EnumValue is a single enumerant.
type EnumValue struct {
	Name    string
	Value   string
	Comment string
}

// EnumDefinition is an enumeration together with the values added to it by
// features and extensions.
type EnumDefinition struct {
	Name     string
	Kind     EnumKind
	BitWidth int
	Values   []EnumValue
	Comment  string
}

// ParameterModifier describes how a parameter is passed.
type ParameterModifier uint8

const (
	// ModifierUnspecified is used for parameters passed by value.
	ModifierUnspecified ParameterModifier = iota
	ModifierIn
	ModifierOut
	ModifierRef
)

func (m ParameterModifier) String() string {
	switch m {
	case ModifierIn:
		return "in"
	case ModifierOut:
		return "out"
	case ModifierRef:
		return "ref"
	default:
		return "unspecified"
	}
}

// ParameterDefinition is a command parameter.
type ParameterDefinition struct {
	Name                 string
	Type                 TypeSpec
	Modifier             ParameterModifier
	IsConst              bool
	ElementCount         int
	ElementCountSymbolic string
	IsNullTerminated     bool
	Optional             bool
}

// CommandDefinition is a registry command.
type CommandDefinition struct {
	Name         string
	ReturnType   TypeSpec
	Parameters   []ParameterDefinition
	SuccessCodes []string
	ErrorCodes   []string
}

// ConstantKind is the literal kind of an API constant.
type ConstantKind uint8

const (
	ConstantUnknown ConstantKind = iota
	ConstantUInt32
	ConstantUInt64
	ConstantFloat32
)

func (k ConstantKind) String() string {
	switch k {
	case ConstantUInt32:
		return "uint32"
	case ConstantUInt64:
		return "uint64"
	case ConstantFloat32:
		return "float32"
	default:
		return "unknown"
	}
}

// ConstantDefinition is an API-level constant.
type ConstantDefinition struct {
	Name    string
	Value   string
	Type    ConstantKind
	Comment string
}

// TypedefDefinition is a bitmask typedef: Name aliases Type, and Requires
// names the enum carrying its bit values, if any.
type TypedefDefinition struct {
	Name     string
	Type     string
	Requires string
}

// Feature is a core API version.
type Feature struct {
	API          string
	Name         string
	Number       string
	CommandNames []string
}

// ExtensionConstant is a named value declared by an extension.
type ExtensionConstant struct {
	Name  string
	Value string
}

// EnumExtension is an enumerant added by an extension. ExtendedType is empty
// when the entry is not attached to an existing enum.
type EnumExtension struct {
	ExtendedType string
	Name         string
	Value        string
}

// Extension is an optional registry add-on.
type Extension struct {
	Name           string
	Number         int
	Type           string
	Supported      []string
	CommandNames   []string
	Constants      []ExtensionConstant
	EnumExtensions []EnumExtension
}

// Specification is a loaded registry document. All collections are in
// document order and must not be modified.
type Specification struct {
	Structures []*StructureDefinition
	Unions     []*StructureDefinition
	Handles    []*HandleDefinition
	Enums      []*EnumDefinition
	Commands   []*CommandDefinition
	Constants  []*ConstantDefinition
	Typedefs   []*TypedefDefinition
	BaseTypes  map[string]string
	Features   []*Feature
	Extensions []*Extension
}

// Command looks up a command by native name.
func (s *Specification) Command(name string) (*CommandDefinition, error) {
	for _, c := range s.Commands {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// Enum looks up an enumeration by native name.
func (s *Specification) Enum(name string) (*EnumDefinition, error) {
	for _, e := range s.Enums {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, ErrNotFound
}
