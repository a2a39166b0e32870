package cli

import (
	"fmt"
	"strings"

	"github.com/machkit/mach/internal/config"
	"github.com/machkit/mach/internal/env"
	"github.com/machkit/mach/internal/errors"
)

// listCommand prints declared machines in declaration order.
func listCommand() error {
	e, err := env.Load(Config())
	if err != nil {
		return err
	}
	if !e.HasRootContext() {
		return errors.New(errors.ErrNotInitialized,
			"No config file found",
			"Looks like you haven't set up shop here yet. Run 'mach init' to get started.")
	}

	fmt.Print(formatMachineList(e.Config()))
	return nil
}

// formatMachineList renders the plain-text machine listing.
func formatMachineList(cfg *config.Config) string {
	if len(cfg.Machines) == 0 {
		return "No machines declared\n"
	}

	primary := cfg.Primary
	if primary == "" && len(cfg.Machines) == 1 {
		primary = cfg.Machines[0].Name
	}

	var b strings.Builder
	for _, m := range cfg.Machines {
		provider := m.Provider
		if provider == "" {
			provider = cfg.DefaultProvider
		}
		marker := " "
		if m.Name == primary {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %-20s %s\n", marker, m.Name, provider)
	}
	return b.String()
}
