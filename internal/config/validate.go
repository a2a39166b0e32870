package config

import (
	"fmt"
	"strings"

	"github.com/machkit/mach/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but mach only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest mach release.")
	}

	seen := make(map[string]bool, len(cfg.Machines))
	for i, m := range cfg.Machines {
		if err := validateMachine(i, m); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
				"Check the 'machines' section in your .mach.yaml.")
		}
		if seen[m.Name] {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Machine '%s' is declared more than once", m.Name),
				"Each machine needs a unique name.")
		}
		seen[m.Name] = true
	}

	// Check primary machine exists (if specified)
	if cfg.Primary != "" && !seen[cfg.Primary] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Primary machine '%s' doesn't exist", cfg.Primary),
			fmt.Sprintf("Did you rename or remove it? Available machines: %s", strings.Join(cfg.MachineNames(), ", ")))
	}

	return nil
}

// validateMachine checks a single machine declaration.
func validateMachine(index int, m Machine) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("machine at position %d is missing a name", index+1)
	}

	// A slash-wrapped name would be indistinguishable from a regex
	// target spec on the command line.
	if len(m.Name) >= 2 && strings.HasPrefix(m.Name, "/") && strings.HasSuffix(m.Name, "/") {
		return fmt.Errorf("machine name '%s' looks like a regex pattern - wrap-around slashes are reserved for target matching", m.Name)
	}

	if m.SSH.Port < 0 || m.SSH.Port > 65535 {
		return fmt.Errorf("machine '%s' has ssh.port %d - ports are 0-65535", m.Name, m.SSH.Port)
	}

	return nil
}
