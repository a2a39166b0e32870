// Package env ties together the project config and the machine index
// into the environment that target resolution runs against.
package env

import (
	"path/filepath"

	"github.com/machkit/mach/internal/config"
	"github.com/machkit/mach/internal/machine"
	"github.com/machkit/mach/internal/state"
)

// Env is the loaded project environment. It implements
// machine.Environment.
type Env struct {
	cfg  *config.Config
	idx  *state.Index
	root string
}

// New builds an environment from already-loaded parts. root is empty
// when no project config was found.
func New(cfg *config.Config, idx *state.Index, root string) *Env {
	return &Env{cfg: cfg, idx: idx, root: root}
}

// Load finds and loads the project environment. explicit is the
// --config override, empty for the normal search order. When no config
// file exists anywhere, the returned environment is valid but has no
// root context.
func Load(explicit string) (*Env, error) {
	path, err := config.Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return New(config.DefaultConfig(), state.Empty(), ""), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	root := filepath.Dir(path)
	idx, err := state.Open(root)
	if err != nil {
		return nil, err
	}

	return New(cfg, idx, root), nil
}

// Config returns the loaded project config.
func (e *Env) Config() *config.Config { return e.cfg }

// Index returns the machine index.
func (e *Env) Index() *state.Index { return e.idx }

// Root returns the project root directory, empty without a project.
func (e *Env) Root() string { return e.root }

// HasRootContext reports whether a project config file was found.
func (e *Env) HasRootContext() bool {
	return e.root != ""
}

// MachineNames returns machine names in declaration order.
func (e *Env) MachineNames() []string {
	return e.cfg.MachineNames()
}

// ActiveMachines returns index records in activation order.
func (e *Env) ActiveMachines() []machine.ActiveRecord {
	records := make([]machine.ActiveRecord, len(e.idx.Records))
	for i, r := range e.idx.Records {
		records[i] = machine.ActiveRecord{
			Name:     r.Name,
			Provider: machine.Provider(r.Provider),
		}
	}
	return records
}

// DefaultProvider returns the project-wide default provider.
func (e *Env) DefaultProvider() machine.Provider {
	if e.cfg.DefaultProvider == "" {
		return machine.Provider(config.DefaultProviderName)
	}
	return machine.Provider(e.cfg.DefaultProvider)
}

// PrimaryMachine returns the machine a single-target command operates
// on: the configured primary, or the sole declared machine. Nil when
// the choice is ambiguous.
func (e *Env) PrimaryMachine(provider machine.Provider) *machine.Handle {
	name := e.cfg.Primary
	if name == "" {
		if len(e.cfg.Machines) != 1 {
			return nil
		}
		name = e.cfg.Machines[0].Name
	}
	return e.Machine(name, provider)
}

// Machine returns a handle for a declared machine, or nil if the name
// is not in the config. An empty provider falls back to the machine's
// declared provider, then the project default.
func (e *Env) Machine(name string, provider machine.Provider) *machine.Handle {
	mc, ok := e.cfg.Machine(name)
	if !ok {
		return nil
	}

	if provider == "" {
		if mc.Provider != "" {
			provider = machine.Provider(mc.Provider)
		} else {
			provider = e.DefaultProvider()
		}
	}

	return &machine.Handle{Name: mc.Name, Provider: provider}
}
