package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	functionsProfile   string
	functionsExtension string
	functionsLimit     int
)

var functionsCmd = &cobra.Command{
	Use:   "functions <registry>",
	Short: "List functions per profile",
	Long: `List the converted functions of a registry. Core functions are listed
once per feature that requires them, extension functions once per API tag
the extension supports.`,
	Args: cobra.ExactArgs(1),
	RunE: runFunctions,
}

func init() {
	functionsCmd.Flags().StringVarP(&functionsProfile, "profile", "p", "", "only show records for this API tag")
	functionsCmd.Flags().StringVarP(&functionsExtension, "extension", "e", "", "only show records of this extension (Core for core versions)")
	functionsCmd.Flags().IntVarP(&functionsLimit, "limit", "n", 0, "limit number of records shown (0 = unlimited)")
}

func runFunctions(cmd *cobra.Command, args []string) error {
	_, res, err := openRegistry(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%-10s %-8s %-32s %s\n", "PROFILE", "VERSION", "CATEGORY", "NAME")
	fmt.Fprintf(output, "%s\n", strings.Repeat("-", 90))

	count := 0
	for f := range res.Functions() {
		if functionsProfile != "" && f.ProfileName != functionsProfile {
			continue
		}
		if functionsExtension != "" && f.ExtensionName != functionsExtension {
			continue
		}

		version := f.ProfileVersion
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(output, "%-10s %-8s %-32s %s\n", f.ProfileName, version, strings.Join(f.Categories, ","), f.Name)

		count++
		if functionsLimit > 0 && count >= functionsLimit {
			break
		}
	}

	fmt.Fprintf(output, "\nTotal: %d records\n", count)
	return nil
}
