package cli

import (
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	statusFlags  TargetFlags
	statusJSON   bool
	sshCfgFlags  TargetFlags
	initForce    bool
	initProvider string
)

// statusCmd shows the state of targeted machines
var statusCmd = &cobra.Command{
	Use:   "status [machine...]",
	Short: "Show machine states",
	Long: `Display the state of the targeted machines.

Machines are addressed by name or by /regex/ pattern. With no
arguments, all declared machines are shown in declaration order.

Examples:
  mach status
  mach status web1
  mach status "/^web/"
  mach status --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusCommand(args)
	},
}

// listCmd lists declared machines from the config
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List declared machines",
	Long: `List the machines declared in .mach.yaml, in declaration order.

The primary machine is marked with an asterisk.

Examples:
  mach list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCommand()
	},
}

// sshConfigCmd prints an ssh_config block for one machine
var sshConfigCmd = &cobra.Command{
	Use:   "ssh-config [machine]",
	Short: "Print an ssh_config block for a machine",
	Long: `Print OpenSSH client configuration for connecting to a machine.

Without an argument the primary machine is used. The output can be
appended to ~/.ssh/config or piped to 'ssh -F'.

Examples:
  mach ssh-config
  mach ssh-config web1
  mach ssh-config web1 >> ~/.ssh/config`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sshConfigCommand(args)
	},
}

// initCmd creates a new .mach.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .mach.yaml configuration",
	Long: `Initialize a new mach configuration file.

Creates a .mach.yaml file in the current directory with a single
machine declaration to start from.

Examples:
  mach init
  mach init --provider docker
  mach init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce, initProvider)
	},
}

func init() {
	AddTargetFlags(statusCmd, &statusFlags)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output in JSON format")

	sshConfigCmd.Flags().StringVar(&sshCfgFlags.Provider, "provider", "", "back the machine with a specific provider")
	sshCfgFlags.Single = true

	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	initCmd.Flags().StringVar(&initProvider, "provider", "", "default provider for the new config")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(sshConfigCmd)
	rootCmd.AddCommand(initCmd)
}
