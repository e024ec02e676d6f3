package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	enumsProfile string
	enumsLimit   int
	enumsTokens  bool
	enumsFlags   bool
)

var enumsCmd = &cobra.Command{
	Use:   "enums <registry>",
	Short: "List enums",
	Long: `List the converted enums of a registry, once per API profile.

Bitmask enums are shown under their unified Flags name.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnums,
}

func init() {
	enumsCmd.Flags().StringVarP(&enumsProfile, "profile", "p", "", "only show records for this API tag")
	enumsCmd.Flags().IntVarP(&enumsLimit, "limit", "n", 0, "limit number of records shown (0 = unlimited)")
	enumsCmd.Flags().BoolVarP(&enumsTokens, "tokens", "t", false, "show tokens")
	enumsCmd.Flags().BoolVar(&enumsFlags, "flags", false, "only show bitmask enums")
}

func runEnums(cmd *cobra.Command, args []string) error {
	_, res, err := openRegistry(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%-10s %-6s %-6s %s\n", "PROFILE", "TOKENS", "FLAGS", "NAME")
	fmt.Fprintf(output, "%s\n", strings.Repeat("-", 90))

	count := 0
	for e := range res.Enums() {
		if enumsProfile != "" && e.ProfileName != enumsProfile {
			continue
		}
		if enumsFlags && !e.IsFlags() {
			continue
		}

		flags := "no"
		if e.IsFlags() {
			flags = "yes"
		}
		fmt.Fprintf(output, "%-10s %-6d %-6s %s\n", e.ProfileName, len(e.Tokens), flags, e.Name)
		if enumsTokens {
			printTokens(e.Enum, "    ")
		}

		count++
		if enumsLimit > 0 && count >= enumsLimit {
			break
		}
	}

	fmt.Fprintf(output, "\nTotal: %d records\n", count)
	return nil
}
