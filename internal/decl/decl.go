package decl

import (
	"fmt"
	"strconv"
	"strings"
)

// Declaration is a parsed declarator such as "const char* const* names[2]".
type Declaration struct {
	// Type is the base type name without qualifiers.
	Type string

	// Name is the declared identifier.
	Name string

	// Const is set when the base type is const-qualified.
	Const bool

	// Pointers is the pointer indirection depth.
	Pointers int

	// Dimensions holds the array dimensions in declaration order, either
	// decimal literals or symbolic constant names.
	Dimensions []string

	// BitWidth is the bit-field width, 0 when the member is not a bit-field.
	BitWidth int
}

// SyntaxError describes a declarator that could not be parsed.
type SyntaxError struct {
	Text   string // Declarator text
	Offset int    // Byte offset of the failure
	Err    error  // Underlying error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("decl: cannot parse %q at offset %d: %v", e.Text, e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse parses a single declarator.
func Parse(text string) (*Declaration, error) {
	r := NewReader(text)
	d := &Declaration{}

	fail := func(err error) (*Declaration, error) {
		return nil, &SyntaxError{Text: text, Offset: r.Offset(), Err: err}
	}

	// Leading qualifiers
	for {
		if r.AcceptWord("const") {
			d.Const = true
			continue
		}
		if r.AcceptWord("struct") || r.AcceptWord("volatile") {
			continue
		}
		break
	}

	typ, err := r.ReadIdent()
	if err != nil {
		return fail(err)
	}
	d.Type = typ

	// Trailing qualifiers and pointer stars
	for {
		if r.Accept('*') {
			d.Pointers++
			continue
		}
		if r.AcceptWord("const") {
			if d.Pointers == 0 {
				d.Const = true
			}
			continue
		}
		break
	}

	name, err := r.ReadIdent()
	if err != nil {
		return fail(err)
	}
	d.Name = name

	for r.Accept('[') {
		dim, err := r.ReadUntil(']')
		if err != nil {
			return fail(err)
		}
		d.Dimensions = append(d.Dimensions, strings.TrimSpace(dim))
		if err := r.Skip(1); err != nil {
			return fail(err)
		}
	}

	if r.Accept(':') {
		r.SkipSpace()
		width, err := strconv.Atoi(strings.TrimSpace(r.RemainingText()))
		if err != nil {
			return fail(err)
		}
		d.BitWidth = width
		return d, nil
	}

	r.SkipSpace()
	// Prototypes and members occasionally end with a stray ';'.
	r.Accept(';')
	if r.Remaining() != 0 {
		return fail(ErrUnexpectedChar)
	}

	return d, nil
}

// ElementCount returns the product of the literal dimensions and the
// symbolic dimensions joined with '*'. A declaration without dimensions
// has count 1.
func (d *Declaration) ElementCount() (int, string) {
	count := 1
	var symbolic []string
	for _, dim := range d.Dimensions {
		if n, err := strconv.Atoi(dim); err == nil {
			count *= n
			continue
		}
		symbolic = append(symbolic, dim)
	}
	return count, strings.Join(symbolic, "*")
}
