// Package naming converts native registry identifiers into display
// identifiers: API prefixes are stripped and words are PascalCased.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SplitPrefix splits name into the API prefix it starts with and the rest,
// so that head+rest == name. A name starting with "{PREFIX}_" loses the
// prefix and the underscore; otherwise a case-insensitive match of the bare
// prefix is split off. If neither matches, head is empty.
func SplitPrefix(name, prefix string) (head, rest string) {
	if prefix == "" {
		return "", name
	}

	upper := strings.ToUpper(prefix) + "_"
	if strings.HasPrefix(name, upper) {
		return name[:len(upper)], name[len(upper):]
	}

	if len(name) >= len(prefix) && strings.EqualFold(name[:len(prefix)], prefix) {
		return name[:len(prefix)], name[len(prefix):]
	}

	return "", name
}

// TrimPrefix strips the API prefix from name.
func TrimPrefix(name, prefix string) string {
	_, rest := SplitPrefix(name, prefix)
	return rest
}

// Translate produces the display identifier for a field, parameter,
// function, token, or constant name. Underscore-separated words are
// joined in PascalCase; screaming words are title-cased and a letter
// following a digit stays upper case ("FORMAT_2D" becomes "Format2D").
// The result never starts with a digit.
func Translate(name, prefix string) string {
	s := TrimPrefix(name, prefix)

	var b strings.Builder
	for _, word := range strings.Split(s, "_") {
		if word == "" {
			continue
		}
		if isScreaming(word) {
			b.WriteString(titleWord(word))
		} else {
			b.WriteString(upperFirst(word))
		}
	}

	out := b.String()
	if out != "" && isDigit(out[0]) {
		out = "_" + out
	}
	return out
}

// TranslateLite produces the display name for a type or enum. Only the
// prefix is stripped and the first letter upper-cased, so repeated lookups
// of the same native name stay stable.
func TranslateLite(name, prefix string) string {
	return upperFirst(TrimPrefix(name, prefix))
}

// TrimToken strips the enclosing enum's display name off a token display
// name. The token is returned unchanged if the remainder would be empty or
// start with a decimal digit.
func TrimToken(token, enum string) string {
	if enum == "" || !strings.HasPrefix(token, enum) {
		return token
	}

	trimmed := token[len(enum):]
	if trimmed == "" || isDigit(trimmed[0]) {
		return token
	}
	return trimmed
}

// titleWord title-cases a screaming word. Letters after a digit keep upper
// case so that "R8G8B8A8" and "2D" survive.
func titleWord(word string) string {
	lower := strings.ToLower(word)
	if !strings.ContainsFunc(lower, unicode.IsDigit) {
		// Casers carry state, so each call gets its own.
		return cases.Title(language.Und).String(lower)
	}

	var b strings.Builder
	var prev rune
	for i, r := range lower {
		if i == 0 || unicode.IsDigit(prev) {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func isScreaming(word string) bool {
	return !strings.ContainsFunc(word, unicode.IsLower)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
