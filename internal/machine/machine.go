// Package machine implements target resolution for named, provider-backed
// machines. A Resolver turns user-supplied name specs (literal names or
// /regex/ patterns) into an ordered list of machine handles, reading
// everything it needs from an Environment collaborator.
package machine

import "strings"

// Provider identifies the backend technology realizing a machine,
// e.g. "docker" or "virtualbox". The empty string means "unspecified".
type Provider string

// Name is one user-supplied target token: a literal machine name, or a
// regular-expression pattern wrapped in slashes ("/^web/").
type Name string

// IsPattern reports whether the name is a slash-wrapped pattern spec.
func (n Name) IsPattern() bool {
	return len(n) >= 2 && strings.HasPrefix(string(n), "/") && strings.HasSuffix(string(n), "/")
}

// Pattern returns the regular expression between the slashes. Only valid
// when IsPattern is true.
func (n Name) Pattern() string {
	return string(n[1 : len(n)-1])
}

// ActiveRecord pairs an already-instantiated machine with the provider
// backing it. The environment guarantees at most one provider per active
// name at any time.
type ActiveRecord struct {
	Name     string
	Provider Provider
}

// Handle identifies a resolved machine. Handles are created and owned by
// the Environment; the resolver only looks them up and orders them.
type Handle struct {
	Name     string
	Provider Provider
}

// Environment is the collaborator a Resolver reads targets from. It owns
// the configured machine list, the active-machine records, and the
// handles themselves.
type Environment interface {
	// HasRootContext reports whether a project root was located.
	HasRootContext() bool

	// MachineNames returns the configured machine names in canonical
	// (configuration) order.
	MachineNames() []string

	// ActiveMachines returns records for machines already instantiated,
	// in the order they were recorded.
	ActiveMachines() []ActiveRecord

	// DefaultProvider returns the provider used when neither an active
	// record nor an explicit request applies.
	DefaultProvider() Provider

	// PrimaryMachine returns the designated single-target machine under
	// the given provider ("" for the machine's own), or nil when no
	// primary machine is defined.
	PrimaryMachine(provider Provider) *Handle

	// Machine returns the handle for name under provider, or nil when
	// the environment doesn't know the name.
	Machine(name string, provider Provider) *Handle
}

// ResolveOptions control how target specs are turned into handles.
type ResolveOptions struct {
	Provider Provider // explicit provider request ("" means unset)
	Reverse  bool     // reverse the final list, after any single-target collapse
	Single   bool     // require exactly one target, via the primary machine
}
