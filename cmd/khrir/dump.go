package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"

	"github.com/skdltmxn/khronos-ir/ir"
)

var (
	dumpFormat string
)

var dumpCmd = &cobra.Command{
	Use:   "dump <registry>...",
	Short: "Dump the converted IR",
	Long: `Dump the canonical IR of one or more registries in structured format.
Registries are converted concurrently, each with its own context.

Supported formats:
  - text: Human-readable text (default)
  - json: JSON format
  - yaml: YAML format`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "output format (text, json, yaml)")
}

// RegistryDump is the canonical IR of one registry. Structures and enums
// apply to every API tag in APIs; function records are listed per profile.
type RegistryDump struct {
	File      string           `json:"file" yaml:"file"`
	Prefix    string           `json:"prefix" yaml:"prefix"`
	APIs      []string         `json:"apis" yaml:"apis"`
	Structs   []*ir.Struct     `json:"structs" yaml:"structs"`
	Enums     []*ir.Enum       `json:"enums" yaml:"enums"`
	Functions []*ir.Function   `json:"functions" yaml:"functions"`
	Constants []*ir.Constant   `json:"constants" yaml:"constants"`
	Profiles  []FunctionRecord `json:"profiles" yaml:"profiles"`
}

// FunctionRecord places a function in a profile.
type FunctionRecord struct {
	Function   string `json:"function" yaml:"function"`
	ir.Profile `yaml:",inline"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

func runDump(cmd *cobra.Command, args []string) error {
	switch dumpFormat {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format: %s", dumpFormat)
	}

	dumps := make([]*RegistryDump, len(args))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range args {
		g.Go(func() error {
			d, err := buildDump(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			dumps[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var v any = dumps
	if len(dumps) == 1 {
		v = dumps[0]
	}

	switch dumpFormat {
	case "json":
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		_, err = output.Write(data)
		return err
	default:
		for _, d := range dumps {
			dumpText(d)
		}
		return nil
	}
}

func buildDump(path string) (*RegistryDump, error) {
	_, res, err := openRegistry(path)
	if err != nil {
		return nil, err
	}

	d := &RegistryDump{
		File:      path,
		Prefix:    res.Context().Prefix,
		APIs:      res.APIs(),
		Structs:   slices.Collect(res.CanonicalStructs()),
		Enums:     slices.Collect(res.CanonicalEnums()),
		Functions: slices.Collect(res.CanonicalFunctions()),
		Constants: slices.Collect(res.Constants()),
	}

	for f := range res.Functions() {
		d.Profiles = append(d.Profiles, FunctionRecord{
			Function:   f.NativeName,
			Profile:    f.Profile,
			Categories: f.Categories,
		})
	}

	return d, nil
}

func dumpText(d *RegistryDump) {
	fmt.Fprintf(output, "=== Registry: %s ===\n", d.File)
	fmt.Fprintf(output, "Prefix: %s\n", d.Prefix)
	fmt.Fprintf(output, "APIs: %s\n", strings.Join(d.APIs, ", "))

	fmt.Fprintln(output)
	fmt.Fprintln(output, "=== Structs ===")
	for _, s := range d.Structs {
		printStructDetail(s)
	}

	fmt.Fprintln(output, "=== Enums ===")
	for _, e := range d.Enums {
		printEnumDetail(e)
	}

	fmt.Fprintln(output, "=== Functions ===")
	for _, fn := range d.Functions {
		printFunctionDetail(fn)
	}

	fmt.Fprintln(output, "=== Profiles ===")
	for _, r := range d.Profiles {
		version := r.ProfileVersion
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(output, "%-10s %-8s %-32s %s\n", r.ProfileName, version, r.ExtensionName, r.Function)
	}

	fmt.Fprintln(output)
	fmt.Fprintln(output, "=== Constants ===")
	for _, k := range d.Constants {
		fmt.Fprintf(output, "%-32s %-6s %-24s %s\n", k.ExtensionName, k.Type.Name, k.Value, k.Name)
	}
	fmt.Fprintln(output)
}
