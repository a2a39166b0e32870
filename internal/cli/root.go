package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/machkit/mach/internal/argv"
	"github.com/machkit/mach/internal/logger"
	"github.com/machkit/mach/internal/optparse"
	"github.com/machkit/mach/internal/ui"
)

// Global flags
var (
	configFlag  string
	debugFlag   bool
	noColorFlag bool
)

// rootCmd is the base command for mach.
var rootCmd = &cobra.Command{
	Use:   "mach",
	Short: "Manage project machines across providers",
	Long: `mach manages the machines a project declares in .mach.yaml.

Commands address machines by name or by /regex/ pattern, and mach
resolves each target to the provider it is active under.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: search for .mach.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

// Config returns the --config flag value.
func Config() string {
	return configFlag
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	preScan(os.Args[1:])

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// preScan parses global flags from the segment of argv before the
// first subcommand token, so --config and --debug take effect during
// startup. Parse errors are ignored here: Cobra reports them when it
// parses the same arguments for real.
func preScan(args []string) {
	split := argv.Split(args)

	fs := pflag.NewFlagSet("mach", pflag.ContinueOnError)
	fs.StringVar(&configFlag, "config", "", "")
	fs.BoolVar(&debugFlag, "debug", false, "")
	fs.BoolVar(&noColorFlag, "no-color", false, "")

	_, _ = optparse.Parse(split.Main, fs, io.Discard)

	if debugFlag {
		logger.SetDefault(logger.New("[mach]", true))
	}
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		ui.DisableColors()
	}
}
