package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/khronos-ir/config"
	"github.com/skdltmxn/khronos-ir/convert"
	"github.com/skdltmxn/khronos-ir/registry"
)

var (
	outputFile string
	configFile string
	verbose    bool

	output io.Writer
	task   *config.Task
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "khrir",
	Short: "Khronos registry to IR converter",
	Long: `khrir loads Khronos API registry documents (vk.xml and friends) and
converts them into the profile-agnostic IR consumed by binding emitters.

It can list and look up the converted structures, functions, enums, and
constants, and dump the whole IR as text, JSON, or YAML.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose || config.Verbose() {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		if configFile != "" {
			t, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			task = t
		} else {
			task = config.Default()
		}

		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = cmd.OutOrStdout()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "task file (YAML); defaults to the Vulkan task")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped entries to stderr")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(structsCmd)
	rootCmd.AddCommand(functionsCmd)
	rootCmd.AddCommand(enumsCmd)
	rootCmd.AddCommand(constantsCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(dumpCmd)
}

// openRegistry loads and converts one registry with a context of its own.
func openRegistry(path string) (*registry.Specification, *convert.Result, error) {
	var opts []registry.Option
	if task.API != "" {
		opts = append(opts, registry.WithAPI(task.API))
	}

	spec, err := registry.Open(path, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load registry: %w", err)
	}

	ctx := task.Context()
	ctx.Logger = logger.With("registry", path)

	res, err := convert.Convert(spec, ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to convert registry: %w", err)
	}
	return spec, res, nil
}
