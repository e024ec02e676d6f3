package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/khronos-ir/convert"
	"github.com/skdltmxn/khronos-ir/ir"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <registry> <query>",
	Short: "Look up entities or types by name",
	Long: `Look up converted entities in a registry.

Query can be:
  - Native name: lookup vk.xml VkInstanceCreateInfo
  - Display name: lookup vk.xml InstanceCreateInfo
  - Type: lookup vk.xml type:VkBool32 (shows alias resolution and size)`,
	Args: cobra.ExactArgs(2),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	_, res, err := openRegistry(args[0])
	if err != nil {
		return err
	}

	query := args[1]
	if strings.HasPrefix(query, "type:") {
		return lookupType(res, strings.TrimPrefix(query, "type:"))
	}
	return lookupName(res, query)
}

func lookupName(res *convert.Result, name string) error {
	found := 0

	if s, ok := res.Struct(name); ok {
		printStructDetail(s)
		found++
	}
	if fn, ok := res.Function(name); ok {
		printFunctionDetail(fn)
		found++
	}
	if e, ok := res.Enum(name); ok {
		printEnumDetail(e)
		found++
	}
	if k, ok := res.Constant(name); ok {
		printConstantDetail(k)
		found++
	}

	// Fall back to display names, which also finds flag enums by their
	// unified native spelling.
	if found == 0 {
		for s := range res.CanonicalStructs() {
			if s.Name == name {
				printStructDetail(s)
				found++
			}
		}
		for fn := range res.CanonicalFunctions() {
			if fn.Name == name {
				printFunctionDetail(fn)
				found++
			}
		}
		for e := range res.CanonicalEnums() {
			if e.Name == name || e.NativeName == name {
				printEnumDetail(e)
				found++
			}
		}
		for k := range res.Constants() {
			if k.Name == name {
				printConstantDetail(k)
				found++
			}
		}
	}

	if found == 0 {
		fmt.Fprintf(output, "No entities found matching '%s'\n", name)
	} else {
		fmt.Fprintf(output, "Found %d match(es)\n", found)
	}

	return nil
}

func lookupType(res *convert.Result, name string) error {
	if name == "" {
		return fmt.Errorf("invalid type query: empty name")
	}

	ctx := res.Context()
	resolved := ctx.Resolve(ir.Type{Name: name})

	fmt.Fprintf(output, "Type:\n")
	fmt.Fprintf(output, "  Name: %s\n", name)
	fmt.Fprintf(output, "  Resolves to: %s\n", resolved.Name)
	if chain := ctx.TypeMaps.Chain(name); len(chain) > 2 {
		fmt.Fprintf(output, "  Chain: %s\n", strings.Join(chain, " -> "))
	}

	size, err := ctx.SizeOf(name)
	if err != nil {
		fmt.Fprintf(output, "  Size: unknown (%v)\n", err)
	} else {
		fmt.Fprintf(output, "  Size: %d\n", size)
	}

	return nil
}
