// Package convert turns a loaded registry into canonical IR entities and
// projects them into profile-scoped record streams.
package convert

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Context carries the state of one conversion run. A Context must not be
// shared between concurrent conversions; separate registries get separate
// contexts.
type Context struct {
	// Prefix is the API prefix stripped from native names, e.g. "vk".
	Prefix string

	// TypeMaps is the externally owned alias table. Conversion only ever
	// appends to it.
	TypeMaps *TypeMaps

	// Logger receives diagnostics for recoverable conditions. Nil discards.
	Logger *slog.Logger
}

// NewContext returns a context for the given prefix and alias table. A nil
// table is replaced by an empty one.
func NewContext(prefix string, maps *TypeMaps) *Context {
	if maps == nil {
		maps = NewTypeMaps()
	}
	return &Context{Prefix: prefix, TypeMaps: maps}
}

// TypePrefix returns the prefix used by registry type names, e.g. "Vk".
func (c *Context) TypePrefix() string {
	return cases.Title(language.Und).String(strings.ToLower(c.Prefix))
}

// structureTypeName is the discriminator type of tagged structures.
func (c *Context) structureTypeName() string {
	return c.TypePrefix() + "StructureType"
}

// flagsTypeName is the generic carrier type of bitmask typedefs.
func (c *Context) flagsTypeName() string {
	return c.TypePrefix() + "Flags"
}

func (c *Context) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
