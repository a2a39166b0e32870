// Package testing provides test doubles for the machine package.
package testing

import (
	"fmt"

	"github.com/machkit/mach/internal/machine"
)

// FakeEnv simulates the environment collaborator for resolver tests. It
// lets tests control the configured machine list, active records, default
// provider, and primary machine without touching config or state files.
type FakeEnv struct {
	Initialized bool
	Names       []string
	Active      []machine.ActiveRecord
	Default     machine.Provider
	Primary     *machine.Handle
	Missing     map[string]bool // names Machine pretends not to know

	// Tracking for assertions
	MachineCalls []string // "name/provider" in lookup order
	PrimaryCalls []machine.Provider
}

// NewFakeEnv creates an initialized environment with the given configured
// machine names and a "virtualbox" default provider.
func NewFakeEnv(names ...string) *FakeEnv {
	return &FakeEnv{
		Initialized: true,
		Names:       names,
		Default:     "virtualbox",
	}
}

// Activate records name as active under provider.
func (e *FakeEnv) Activate(name string, provider machine.Provider) *FakeEnv {
	e.Active = append(e.Active, machine.ActiveRecord{Name: name, Provider: provider})
	return e
}

// SetPrimary designates the primary machine returned by PrimaryMachine.
func (e *FakeEnv) SetPrimary(name string, provider machine.Provider) *FakeEnv {
	e.Primary = &machine.Handle{Name: name, Provider: provider}
	return e
}

// HasRootContext reports the configured initialization state.
func (e *FakeEnv) HasRootContext() bool {
	return e.Initialized
}

// MachineNames returns the configured names in order.
func (e *FakeEnv) MachineNames() []string {
	return e.Names
}

// ActiveMachines returns the active records in recording order.
func (e *FakeEnv) ActiveMachines() []machine.ActiveRecord {
	return e.Active
}

// DefaultProvider returns the configured default.
func (e *FakeEnv) DefaultProvider() machine.Provider {
	return e.Default
}

// PrimaryMachine returns the configured primary handle, substituting the
// requested provider when one is given.
func (e *FakeEnv) PrimaryMachine(provider machine.Provider) *machine.Handle {
	e.PrimaryCalls = append(e.PrimaryCalls, provider)
	if e.Primary == nil {
		return nil
	}
	h := *e.Primary
	if provider != "" {
		h.Provider = provider
	}
	return &h
}

// Machine returns a handle for any configured name not marked Missing.
func (e *FakeEnv) Machine(name string, provider machine.Provider) *machine.Handle {
	e.MachineCalls = append(e.MachineCalls, fmt.Sprintf("%s/%s", name, provider))
	if e.Missing[name] {
		return nil
	}
	for _, n := range e.Names {
		if n == name {
			return &machine.Handle{Name: name, Provider: provider}
		}
	}
	return nil
}
