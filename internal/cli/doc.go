// Package cli implements the mach command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to small command functions for the actual work. The
// general structure separates:
//
//   - Command definitions (cobra.Command instances)
//   - Target resolution (machine names and patterns to handles)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "mach" with subcommands for different operations:
//
//	mach status [machine...]     - Show machine states
//	mach list                    - List declared machines
//	mach ssh-config [machine]    - Print an ssh_config block
//	mach init                    - Create .mach.yaml config
//	mach version                 - Print version information
//
// # Flag Handling
//
// Global flags (--config, --debug, --no-color) are defined on the root
// command and available to all subcommands. Target selection flags like
// --provider are defined per command via TargetFlags.
//
// Global flags are also honored before Cobra parses anything, using a
// pre-scan of os.Args: the arguments before the first subcommand token
// are parsed separately so --config and --debug take effect during
// startup.
package cli
