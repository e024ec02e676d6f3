package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	constantsExtension string
	constantsLimit     int
)

var constantsCmd = &cobra.Command{
	Use:   "constants <registry>",
	Short: "List constants",
	Long: `List API constants followed by extension constants. Constants are not
projected per profile; use --extension to filter by category.`,
	Args: cobra.ExactArgs(1),
	RunE: runConstants,
}

func init() {
	constantsCmd.Flags().StringVarP(&constantsExtension, "extension", "e", "", "only show constants of this category (Core for API constants)")
	constantsCmd.Flags().IntVarP(&constantsLimit, "limit", "n", 0, "limit number of constants shown (0 = unlimited)")
}

func runConstants(cmd *cobra.Command, args []string) error {
	_, res, err := openRegistry(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%-32s %-6s %-24s %s\n", "CATEGORY", "TYPE", "VALUE", "NAME")
	fmt.Fprintf(output, "%s\n", strings.Repeat("-", 90))

	count := 0
	for k := range res.Constants() {
		if constantsExtension != "" && k.ExtensionName != constantsExtension {
			continue
		}

		fmt.Fprintf(output, "%-32s %-6s %-24s %s\n", k.ExtensionName, k.Type.Name, k.Value, k.Name)

		count++
		if constantsLimit > 0 && count >= constantsLimit {
			break
		}
	}

	fmt.Fprintf(output, "\nTotal: %d constants\n", count)
	return nil
}
