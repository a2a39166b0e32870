package cli

import (
	"github.com/spf13/cobra"

	"github.com/machkit/mach/internal/env"
	"github.com/machkit/mach/internal/logger"
	"github.com/machkit/mach/internal/machine"
)

// TargetFlags holds the standard machine targeting flags used across commands.
type TargetFlags struct {
	Provider string
	Reverse  bool

	// Single collapses multi-machine targets to the primary machine.
	// Set by single-target commands, not exposed as a flag.
	Single bool
}

// AddTargetFlags registers --provider and --reverse flags on a command.
func AddTargetFlags(cmd *cobra.Command, flags *TargetFlags) {
	cmd.Flags().StringVar(&flags.Provider, "provider", "", "back machines with a specific provider")
	cmd.Flags().BoolVar(&flags.Reverse, "reverse", false, "operate on machines in reverse order")
}

// Options converts the flags into resolver options.
func (f *TargetFlags) Options() machine.ResolveOptions {
	return machine.ResolveOptions{
		Provider: machine.Provider(f.Provider),
		Reverse:  f.Reverse,
		Single:   f.Single,
	}
}

// ParseTargets converts positional arguments into target name specs.
func ParseTargets(args []string) []machine.Name {
	specs := make([]machine.Name, len(args))
	for i, a := range args {
		specs[i] = machine.Name(a)
	}
	return specs
}

// resolveTargets loads the environment and resolves positional
// arguments into machine handles, honoring the targeting flags.
func resolveTargets(flags *TargetFlags, args []string) ([]*machine.Handle, *env.Env, error) {
	e, err := env.Load(Config())
	if err != nil {
		return nil, nil, err
	}

	r := machine.NewResolver(e)
	r.SetLogger(logger.Default())

	handles, err := r.Resolve(ParseTargets(args), flags.Options())
	if err != nil {
		return nil, nil, err
	}

	return handles, e, nil
}
