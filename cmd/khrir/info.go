package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <registry>",
	Short: "Display registry information",
	Long:  `Display general information about a registry: API tags, entity counts, features, and extensions.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	spec, res, err := openRegistry(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Registry: %s\n", path)
	fmt.Fprintf(output, "Prefix: %s\n", task.Prefix)
	fmt.Fprintf(output, "APIs: %s\n", strings.Join(res.APIs(), ", "))
	fmt.Fprintf(output, "Structures: %d\n", len(spec.Structures))
	fmt.Fprintf(output, "Unions: %d\n", len(spec.Unions))
	fmt.Fprintf(output, "Handles: %d\n", len(spec.Handles))
	fmt.Fprintf(output, "Enums: %d\n", res.NumEnums())
	fmt.Fprintf(output, "Functions: %d\n", res.NumFunctions())
	fmt.Fprintf(output, "Constants: %d\n", res.NumConstants())
	fmt.Fprintf(output, "Features: %d\n", len(spec.Features))

	supported := 0
	for _, ext := range spec.Extensions {
		if len(ext.Supported) > 0 {
			supported++
		}
	}
	fmt.Fprintf(output, "Extensions: %d (%d supported)\n", len(spec.Extensions), supported)

	return nil
}
