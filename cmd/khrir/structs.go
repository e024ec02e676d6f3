package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	structsProfile string
	structsLimit   int
	structsFields  bool
)

var structsCmd = &cobra.Command{
	Use:   "structs <registry>",
	Short: "List structures, unions, and handles",
	Long: `List the converted structures of a registry, once per API profile.

Use --profile to restrict the listing to one API tag and --fields to show
each structure's fields.`,
	Args: cobra.ExactArgs(1),
	RunE: runStructs,
}

func init() {
	structsCmd.Flags().StringVarP(&structsProfile, "profile", "p", "", "only show records for this API tag")
	structsCmd.Flags().IntVarP(&structsLimit, "limit", "n", 0, "limit number of records shown (0 = unlimited)")
	structsCmd.Flags().BoolVarP(&structsFields, "fields", "f", false, "show fields")
}

func runStructs(cmd *cobra.Command, args []string) error {
	_, res, err := openRegistry(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%-10s %-6s %-40s %s\n", "PROFILE", "FIELDS", "NAME", "NATIVE")
	fmt.Fprintf(output, "%s\n", strings.Repeat("-", 90))

	count := 0
	for s := range res.Structs() {
		if structsProfile != "" && s.ProfileName != structsProfile {
			continue
		}

		fmt.Fprintf(output, "%-10s %-6d %-40s %s\n", s.ProfileName, len(s.Fields), s.Name, s.NativeName)
		if structsFields {
			printFields(s.Struct, "    ")
		}

		count++
		if structsLimit > 0 && count >= structsLimit {
			break
		}
	}

	fmt.Fprintf(output, "\nTotal: %d records\n", count)
	return nil
}
