package registry

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/skdltmxn/khronos-ir/internal/decl"
	"github.com/skdltmxn/khronos-ir/internal/xmlreg"
)

// Extension enumerant values are allocated in blocks of this size
// starting at extBase.
const (
	extBase      = 1000000000
	extBlockSize = 1000
)

const nullTerminated = "null-terminated"

// Option configures loading.
type Option func(*loader)

// WithAPI restricts the model to elements that apply to the given API tag
// (for example "vulkan"). Elements without an api attribute always apply.
func WithAPI(api string) Option {
	return func(l *loader) {
		l.api = api
	}
}

// Open loads a registry document from the given path.
func Open(path string, opts ...Option) (*Specification, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("registry: failed to open file: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load reads a registry document. On failure no partial model is returned.
func Load(r io.Reader, opts ...Option) (*Specification, error) {
	doc, err := xmlreg.Decode(r)
	if err != nil {
		return nil, &FormatError{Element: "registry", Message: "cannot decode document", Err: err}
	}

	l := &loader{
		spec:  &Specification{BaseTypes: make(map[string]string)},
		enums: make(map[string]*EnumDefinition),
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.load(doc); err != nil {
		return nil, err
	}
	return l.spec, nil
}

type loader struct {
	api   string
	spec  *Specification
	enums map[string]*EnumDefinition
}

func (l *loader) load(doc *xmlreg.Registry) error {
	if err := l.loadTypes(doc.Types); err != nil {
		return err
	}
	if err := l.loadEnums(doc.Enums); err != nil {
		return err
	}
	if err := l.loadCommands(doc.Commands); err != nil {
		return err
	}
	if err := l.loadFeatures(doc.Features); err != nil {
		return err
	}
	return l.loadExtensions(doc.Extensions)
}

// appliesTo reports whether an element with the given api attribute is part
// of the selected API.
func (l *loader) appliesTo(api string) bool {
	if api == "" || l.api == "" {
		return true
	}
	return lo.Contains(splitList(api), l.api)
}

func (l *loader) loadTypes(types []xmlreg.Type) error {
	for i := range types {
		t := &types[i]
		if t.Alias != "" || !l.appliesTo(t.API) {
			continue
		}

		name := t.TypeName()
		switch t.Category {
		case "struct", "union":
			if name == "" {
				return &FormatError{Element: t.Category, Message: "missing name"}
			}
			def, err := l.structure(name, t)
			if err != nil {
				return err
			}
			if t.Category == "union" {
				l.spec.Unions = append(l.spec.Unions, def)
			} else {
				l.spec.Structures = append(l.spec.Structures, def)
			}

		case "handle":
			if name == "" {
				return &FormatError{Element: "handle", Message: "missing name"}
			}
			l.spec.Handles = append(l.spec.Handles, &HandleDefinition{
				Name:            name,
				Parent:          t.Parent,
				CanBeDispatched: !strings.Contains(t.InnerType, "NON_DISPATCHABLE"),
			})

		case "basetype":
			if t.InnerType != "" && name != "" {
				l.spec.BaseTypes[name] = strings.TrimSpace(t.InnerType)
			}

		case "bitmask":
			requires := t.Requires
			if requires == "" {
				requires = t.BitValues
			}
			l.spec.Typedefs = append(l.spec.Typedefs, &TypedefDefinition{
				Name:     name,
				Type:     strings.TrimSpace(t.InnerType),
				Requires: requires,
			})
		}
	}
	return nil
}

func (l *loader) structure(name string, t *xmlreg.Type) (*StructureDefinition, error) {
	def := &StructureDefinition{
		Name:         name,
		Comment:      t.Comment,
		ReturnedOnly: t.ReturnedOnly,
	}

	for _, m := range t.Members {
		if !l.appliesTo(m.API) {
			continue
		}

		d, err := decl.Parse(m.Text)
		if err != nil {
			return nil, &FormatError{Element: "member", Name: name + "." + m.Name, Message: "bad declarator", Err: err}
		}

		count, symbolic := d.ElementCount()
		lenExpr, isNullTerminated := splitLen(m.Len, m.AltLen)
		if len(d.Dimensions) == 0 {
			symbolic = lenExpr
		}

		def.Members = append(def.Members, MemberSpec{
			Name: d.Name,
			Type: TypeSpec{
				Name:               d.Type,
				PointerIndirection: d.Pointers,
				ArrayDimensions:    d.Dimensions,
			},
			Comment:              m.Comment,
			IsConst:              d.Const,
			ElementCount:         count,
			ElementCountSymbolic: symbolic,
			IsNullTerminated:     isNullTerminated,
			LegalValues:          m.Values,
			BitWidth:             d.BitWidth,
			Optional:             strings.HasPrefix(m.Optional, "true"),
		})
	}

	return def, nil
}

func (l *loader) loadEnums(blocks []xmlreg.Enums) error {
	for _, block := range blocks {
		switch {
		case block.Type == "enum" || block.Type == "bitmask":
			if block.Name == "" {
				return &FormatError{Element: "enums", Message: "missing name"}
			}
			if _, dup := l.enums[block.Name]; dup {
				return &FormatError{Element: "enums", Name: block.Name, Message: "declared twice"}
			}

			def := &EnumDefinition{
				Name:     block.Name,
				BitWidth: block.BitWidth,
				Comment:  block.Comment,
			}
			if block.Type == "bitmask" {
				def.Kind = EnumBitmask
			}

			for _, e := range block.Values {
				if e.Alias != "" || !l.appliesTo(e.API) {
					continue
				}
				value, ok, err := enumValue(e, 0)
				if err != nil {
					return err
				}
				if !ok {
					return &FormatError{Element: "enum", Name: e.Name, Message: "no value"}
				}
				def.Values = append(def.Values, EnumValue{Name: e.Name, Value: value, Comment: e.Comment})
			}

			l.spec.Enums = append(l.spec.Enums, def)
			l.enums[def.Name] = def

		case block.Type == "constants" || block.Name == "API Constants":
			for _, e := range block.Values {
				if e.Alias != "" || !l.appliesTo(e.API) {
					continue
				}
				l.spec.Constants = append(l.spec.Constants, &ConstantDefinition{
					Name:    e.Name,
					Value:   e.Value,
					Type:    constantKind(e.Type, e.Value),
					Comment: e.Comment,
				})
			}
		}
	}
	return nil
}

func (l *loader) loadCommands(commands []xmlreg.Command) error {
	for _, c := range commands {
		if c.Alias != "" || !l.appliesTo(c.API) {
			continue
		}

		proto, err := decl.Parse(c.Proto.Text)
		if err != nil {
			return &FormatError{Element: "command", Name: c.Proto.Name, Message: "bad prototype", Err: err}
		}

		def := &CommandDefinition{
			Name: proto.Name,
			ReturnType: TypeSpec{
				Name:               proto.Type,
				PointerIndirection: proto.Pointers,
			},
			SuccessCodes: splitList(c.SuccessCodes),
			ErrorCodes:   splitList(c.ErrorCodes),
		}

		for _, p := range c.Params {
			if !l.appliesTo(p.API) {
				continue
			}

			d, err := decl.Parse(p.Text)
			if err != nil {
				return &FormatError{Element: "param", Name: def.Name + "." + p.Name, Message: "bad declarator", Err: err}
			}

			count, symbolic := d.ElementCount()
			lenExpr, isNullTerminated := splitLen(p.Len, p.AltLen)
			if len(d.Dimensions) == 0 {
				symbolic = lenExpr
			}

			def.Parameters = append(def.Parameters, ParameterDefinition{
				Name: d.Name,
				Type: TypeSpec{
					Name:               d.Type,
					PointerIndirection: d.Pointers,
					ArrayDimensions:    d.Dimensions,
				},
				Modifier:             modifier(d),
				IsConst:              d.Const,
				ElementCount:         count,
				ElementCountSymbolic: symbolic,
				IsNullTerminated:     isNullTerminated,
				Optional:             strings.HasPrefix(p.Optional, "true"),
			})
		}

		l.spec.Commands = append(l.spec.Commands, def)
	}
	return nil
}

func (l *loader) loadFeatures(features []xmlreg.Feature) error {
	for _, f := range features {
		var commands []string
		for _, req := range f.Require {
			if !l.appliesTo(req.API) {
				continue
			}
			for _, c := range req.Commands {
				commands = append(commands, c.Name)
			}
			for _, e := range req.Enums {
				if e.Extends == "" || e.Alias != "" || !l.appliesTo(e.API) {
					continue
				}
				if err := l.extendEnum(e, 0); err != nil {
					return err
				}
			}
		}
		commands = lo.Uniq(commands)

		// A feature shared by several APIs is listed once per API tag.
		for _, api := range splitList(f.API) {
			if l.api != "" && api != l.api {
				continue
			}
			l.spec.Features = append(l.spec.Features, &Feature{
				API:          api,
				Name:         f.Name,
				Number:       f.Number,
				CommandNames: commands,
			})
		}
	}
	return nil
}

func (l *loader) loadExtensions(extensions []xmlreg.Extension) error {
	for _, x := range extensions {
		ext := &Extension{
			Name:   x.Name,
			Number: x.Number,
			Type:   x.Type,
		}
		for _, api := range splitList(x.Supported) {
			if api == "disabled" || (l.api != "" && api != l.api) {
				continue
			}
			ext.Supported = append(ext.Supported, api)
		}
		supported := len(ext.Supported) > 0

		for _, req := range x.Require {
			if !l.appliesTo(req.API) {
				continue
			}
			for _, c := range req.Commands {
				ext.CommandNames = append(ext.CommandNames, c.Name)
			}

			for _, e := range req.Enums {
				if e.Alias != "" || !l.appliesTo(e.API) {
					continue
				}

				switch {
				case e.Extends != "":
					value, ok, err := enumValue(e, x.Number)
					if err != nil {
						return err
					}
					if !ok {
						continue
					}
					ext.EnumExtensions = append(ext.EnumExtensions, EnumExtension{
						ExtendedType: e.Extends,
						Name:         e.Name,
						Value:        value,
					})
					if supported {
						if err := l.extendEnum(e, x.Number); err != nil {
							return err
						}
					}

				case e.Value != "":
					ext.Constants = append(ext.Constants, ExtensionConstant{Name: e.Name, Value: e.Value})

				case e.BitPos != "" || e.Offset != "":
					value, _, err := enumValue(e, x.Number)
					if err != nil {
						return err
					}
					ext.EnumExtensions = append(ext.EnumExtensions, EnumExtension{Name: e.Name, Value: value})
				}
			}
		}
		ext.CommandNames = lo.Uniq(ext.CommandNames)

		l.spec.Extensions = append(l.spec.Extensions, ext)
	}
	return nil
}

// extendEnum appends an extension enumerant to the enum it extends. Values
// already present under the same name are left alone, since promoted
// extensions list their enumerants in both the feature and the extension.
func (l *loader) extendEnum(e xmlreg.Enum, extNumber int) error {
	def, ok := l.enums[e.Extends]
	if !ok {
		return &FormatError{Element: "enum", Name: e.Name, Message: fmt.Sprintf("extends unknown enum %q", e.Extends)}
	}

	value, ok, err := enumValue(e, extNumber)
	if err != nil || !ok {
		return err
	}

	if lo.ContainsBy(def.Values, func(v EnumValue) bool { return v.Name == e.Name }) {
		return nil
	}
	def.Values = append(def.Values, EnumValue{Name: e.Name, Value: value, Comment: e.Comment})
	return nil
}

// enumValue computes the textual value of an enumerant. ok is false when the
// element only references a value declared elsewhere.
func enumValue(e xmlreg.Enum, extNumber int) (string, bool, error) {
	switch {
	case e.Value != "":
		return e.Value, true, nil

	case e.BitPos != "":
		pos, err := strconv.ParseUint(e.BitPos, 10, 6)
		if err != nil {
			return "", false, &FormatError{Element: "enum", Name: e.Name, Message: "bad bitpos", Err: err}
		}
		return strconv.FormatUint(1<<pos, 10), true, nil

	case e.Offset != "":
		offset, err := strconv.ParseInt(e.Offset, 10, 64)
		if err != nil {
			return "", false, &FormatError{Element: "enum", Name: e.Name, Message: "bad offset", Err: err}
		}
		if e.ExtNumber != "" {
			n, err := strconv.Atoi(e.ExtNumber)
			if err != nil {
				return "", false, &FormatError{Element: "enum", Name: e.Name, Message: "bad extnumber", Err: err}
			}
			extNumber = n
		}
		if extNumber < 1 {
			return "", false, &FormatError{Element: "enum", Name: e.Name, Message: "offset without extension number"}
		}
		v := int64(extBase) + int64(extNumber-1)*extBlockSize + offset
		if e.Dir == "-" {
			v = -v
		}
		return strconv.FormatInt(v, 10), true, nil
	}

	return "", false, nil
}

func constantKind(typ, value string) ConstantKind {
	switch typ {
	case "uint32_t":
		return ConstantUInt32
	case "uint64_t":
		return ConstantUInt64
	case "float":
		return ConstantFloat32
	case "":
		// Older registries carry no type attribute; infer from the literal.
		switch {
		case strings.Contains(value, "ULL"):
			return ConstantUInt64
		case strings.Contains(value, ".") && strings.HasSuffix(value, "F"):
			return ConstantFloat32
		case strings.Contains(value, "U"):
			return ConstantUInt32
		}
	}
	return ConstantUnknown
}

func modifier(d *decl.Declaration) ParameterModifier {
	switch {
	case d.Pointers == 0:
		return ModifierUnspecified
	case d.Const:
		return ModifierIn
	case d.Pointers > 1:
		return ModifierRef
	default:
		return ModifierOut
	}
}

// splitLen separates a len attribute into its count expression and the
// null-terminated marker. LaTeX expressions are replaced by altlen.
func splitLen(length, altLen string) (string, bool) {
	if strings.HasPrefix(length, "latexmath:") && altLen != "" {
		length = altLen
	}

	var parts []string
	isNullTerminated := false
	for _, part := range strings.Split(length, ",") {
		part = strings.TrimSpace(part)
		switch part {
		case "":
		case nullTerminated:
			isNullTerminated = true
		default:
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ","), isNullTerminated
}

// splitList splits comma- or bar-separated attribute lists.
func splitList(s string) []string {
	return lo.Compact(strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' '
	}))
}
