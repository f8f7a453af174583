package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elfdeps/elfdeps/internal/elf"
	"github.com/elfdeps/elfdeps/internal/report"
	"github.com/elfdeps/elfdeps/internal/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elfdeps",
		Short: "Shared-library dependency lister for ELF64 binaries",
		Long: `elfdeps lists the shared libraries a dynamically linked ELF64 binary
declares as runtime dependencies (its DT_NEEDED entries), in the order the
binary declares them.

The tool parses the file structure itself: it validates the ELF
identification bytes, locates the program header table, finds the dynamic
segment, decodes the dynamic section and resolves each needed-library
reference through the dynamic string table. Only 64-bit little-endian
objects are supported; nothing is executed and the named libraries are not
looked up on disk.

Results can be output in human-readable text or machine-readable JSON for
integration with other tooling.`,
		Version: utils.GetVersionString(),
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newListCmd() *cobra.Command {
	var (
		outputFormat string
		configFile   string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "list <binary>",
		Short: "List the shared-library dependencies of a binary",
		Long: `List the DT_NEEDED entries of the given ELF64 binary, preserving the
order in which the binary declares them.

A statically linked binary (one without a dynamic segment) and a dynamic
binary that declares no dependencies both produce an empty list, not an
error.

Exit codes:
  0 - Dependencies listed (possibly none)
  1 - The file could not be read or is not a parseable ELF64 object
  2 - Invalid arguments or configuration error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0], outputFormat, configFile, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format (text, json)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("elfdeps version %s\n", utils.Version)
			fmt.Printf("Commit: %s\n", utils.Commit)
			fmt.Printf("Built: %s\n", utils.Date)
		},
	}
}

// runList reads the binary once and runs the parsing pipeline over the
// in-memory contents.
func runList(binaryPath, outputFormat, configFile string, verbose bool) error {
	var config *utils.Config
	var err error

	if configFile != "" {
		config, err = utils.LoadConfigFromFile(configFile)
	} else {
		config, err = utils.LoadDefaultConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	loggerConfig := utils.LoggerConfig{
		Level:  utils.LogLevel(config.LogLevel),
		Format: utils.LogFormat(config.LogFormat),
	}
	if verbose {
		loggerConfig.Level = utils.LogLevelDebug
	}
	logger := utils.NewLogger(loggerConfig)

	// The flag wins over the configured default.
	if outputFormat == "" {
		outputFormat = config.OutputFormat
	}
	format, err := report.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	log := logger.WithComponent("elfdeps")
	log.Debugf("Reading binary: %s", binaryPath)

	raw, err := os.ReadFile(binaryPath)
	if err != nil {
		return fmt.Errorf("failed to read binary: %w", err)
	}

	names, err := elf.ResolveDependencies(raw)
	switch {
	case errors.Is(err, elf.ErrNoDynamicSegment):
		// Statically linked: an empty result, distinguishable from a
		// malformed file.
		log.Debugf("No dynamic segment: %s is statically linked", binaryPath)
		names = nil
	case err != nil:
		return fmt.Errorf("failed to parse %s: %w", binaryPath, err)
	}

	log.Debugf("Resolved %d dependencies", len(names))

	return report.New(binaryPath, names).Render(os.Stdout, format)
}
