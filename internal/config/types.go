package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// DefaultProviderName is the provider used when a machine has none
// configured and no provider override is requested.
const DefaultProviderName = "virtualbox"

// Config represents the complete .mach.yaml configuration file.
// Machines is a list, not a map: declaration order is the canonical
// enumeration order for multi-machine commands.
type Config struct {
	Version         int       `yaml:"version" mapstructure:"version"`
	Machines        []Machine `yaml:"machines" mapstructure:"machines"`
	DefaultProvider string    `yaml:"default_provider" mapstructure:"default_provider"`
	Primary         string    `yaml:"primary" mapstructure:"primary"`
}

// Machine defines a single machine declaration.
type Machine struct {
	// Name identifies the machine in commands and state.
	Name string `yaml:"name" mapstructure:"name"`

	// Provider backs this machine. Empty means the project default.
	Provider string `yaml:"provider" mapstructure:"provider"`

	// SSH overrides connection settings for 'mach ssh-config'.
	SSH SSH `yaml:"ssh" mapstructure:"ssh"`
}

// SSH holds per-machine connection overrides. Unset fields fall back
// to the user's ssh_config and then to provider defaults.
type SSH struct {
	Host         string `yaml:"host" mapstructure:"host"`
	User         string `yaml:"user" mapstructure:"user"`
	Port         int    `yaml:"port" mapstructure:"port"`
	IdentityFile string `yaml:"identity_file" mapstructure:"identity_file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:         CurrentConfigVersion,
		Machines:        []Machine{},
		DefaultProvider: DefaultProviderName,
	}
}

// MachineNames returns machine names in declaration order.
func (c *Config) MachineNames() []string {
	names := make([]string, len(c.Machines))
	for i, m := range c.Machines {
		names[i] = m.Name
	}
	return names
}

// Machine looks up a machine declaration by name.
func (c *Config) Machine(name string) (Machine, bool) {
	for _, m := range c.Machines {
		if m.Name == name {
			return m, true
		}
	}
	return Machine{}, false
}
