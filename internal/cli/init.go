package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/machkit/mach/internal/config"
	"github.com/machkit/mach/internal/errors"
)

// configTemplate is the scaffold written by 'mach init'.
const configTemplate = `# mach configuration
# Declare your machines here. Order matters: multi-machine commands
# operate in declaration order.
version: %d
default_provider: %s

machines:
  - name: default
    # provider: docker
    # ssh:
    #   host: 192.168.56.10
    #   user: mach
    #   port: 22
`

// initCommand creates a fresh .mach.yaml in the current directory.
func initCommand(force bool, provider string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	path := filepath.Join(cwd, config.ConfigFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			config.ConfigFileName+" already exists",
			"Use --force to overwrite it.")
	}

	if provider == "" {
		provider = config.DefaultProviderName
	}

	content := fmt.Sprintf(configTemplate, config.CurrentConfigVersion, provider)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+config.ConfigFileName,
			"Check directory permissions")
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
