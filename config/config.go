// Package config loads conversion task settings: the API prefix, the API
// tag to load, and the type maps handed to the converter.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v2"

	"github.com/skdltmxn/khronos-ir/convert"
)

// Environment variables that override task settings.
const (
	EnvPrefix  = "KHRIR_PREFIX"
	EnvAPI     = "KHRIR_API"
	EnvVerbose = "KHRIR_VERBOSE"
)

// ErrNoPrefix is returned when a task names no API prefix.
var ErrNoPrefix = errors.New("config: missing prefix")

// Task describes one conversion.
type Task struct {
	Prefix string `yaml:"prefix"`

	// API restricts loading to one API tag, e.g. "vulkan". Empty loads
	// every tag.
	API string `yaml:"api,omitempty"`

	// TypeMaps map native type names onto target names. They are consulted
	// in order, before any map added during conversion.
	TypeMaps []map[string]string `yaml:"typemaps,omitempty"`
}

// primitives maps C scalar types onto canonical target names.
var primitives = map[string]string{
	"char":     "byte",
	"int8_t":   "sbyte",
	"uint8_t":  "byte",
	"int16_t":  "short",
	"uint16_t": "ushort",
	"int":      "int",
	"int32_t":  "int",
	"uint32_t": "uint",
	"int64_t":  "long",
	"uint64_t": "ulong",
	"float":    "float",
	"double":   "double",
	"size_t":   "nuint",
	"void":     "void",
}

// Default returns the task for the Vulkan registry with the C primitive
// type map. Environment overrides are applied.
func Default() *Task {
	t := &Task{
		Prefix:   "vk",
		TypeMaps: []map[string]string{copyMap(primitives)},
	}
	t.applyEnv()
	return t
}

// Load reads a YAML task file.
func Load(path string) (*Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML task. Unknown keys are rejected. A task without type
// maps gets the C primitive map.
func Parse(data []byte) (*Task, error) {
	var t Task
	if err := yaml.UnmarshalStrict(data, &t); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if len(t.TypeMaps) == 0 {
		t.TypeMaps = []map[string]string{copyMap(primitives)}
	}

	t.applyEnv()
	if t.Prefix == "" {
		return nil, ErrNoPrefix
	}
	return &t, nil
}

func (t *Task) applyEnv() {
	t.Prefix = env.Str(EnvPrefix, t.Prefix)
	t.API = env.Str(EnvAPI, t.API)
}

// Context returns a fresh conversion context seeded with the task's type
// maps. Every call gets its own alias table.
func (t *Task) Context() *convert.Context {
	maps := convert.NewTypeMaps()
	for _, m := range t.TypeMaps {
		maps.Append(convert.TypeMap(m))
	}
	return convert.NewContext(t.Prefix, maps)
}

// Verbose reports whether verbose diagnostics are requested through the
// environment.
func Verbose() bool {
	return env.Bool(EnvVerbose)
}

func copyMap(m map[string]string) map[string]string {
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
