package machine

import (
	"fmt"
	"regexp"

	"github.com/machkit/mach/internal/errors"
	"github.com/machkit/mach/internal/logger"
)

// Resolver turns name specs into an ordered list of machine handles.
//
// A Resolver is stateless across calls: every Resolve treats the
// environment's machine list and active records as a point-in-time
// snapshot for that call only.
type Resolver struct {
	env Environment
	log logger.Logger
}

// NewResolver creates a resolver reading from env. Diagnostics are
// discarded until SetLogger installs a sink.
func NewResolver(env Environment) *Resolver {
	return &Resolver{
		env: env,
		log: logger.Noop(),
	}
}

// SetLogger installs a diagnostic sink for resolution tracing.
func (r *Resolver) SetLogger(l logger.Logger) {
	if l == nil {
		l = logger.Noop()
	}
	r.log = l
}

// Resolve maps specs to machine handles, in spec order. With no specs, all
// configured machines resolve in canonical order. Each name's provider
// comes from the first matching active record, then the explicit request,
// then the environment default; an explicit request that contradicts an
// active record is an error.
//
// When opts.Single is set the result must be exactly one handle; any other
// result is replaced by the environment's primary machine. opts.Reverse
// reverses the final list, after that collapse. An empty result is valid
// only when no specs were given and no machines are configured.
func (r *Resolver) Resolve(specs []Name, opts ResolveOptions) ([]*Handle, error) {
	if !r.env.HasRootContext() {
		return nil, errors.New(errors.ErrNotInitialized,
			"Not inside an initialized mach project",
			"Run 'mach init' or cd into a directory with a .mach.yaml file.")
	}

	names := r.env.MachineNames()
	active := r.env.ActiveMachines()

	working := specs
	if len(working) == 0 {
		working = make([]Name, len(names))
		for i, name := range names {
			working[i] = Name(name)
		}
	}

	handles := make([]*Handle, 0, len(working))
	for _, spec := range working {
		if spec.IsPattern() {
			matched, err := r.resolvePattern(spec, names, active, opts.Provider)
			if err != nil {
				return nil, err
			}
			handles = append(handles, matched...)
			continue
		}

		h, err := r.resolveLiteral(string(spec), active, opts.Provider)
		if err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}

	if opts.Single && len(handles) != 1 {
		r.log.Debug("resolved %d targets, collapsing to the primary machine", len(handles))
		primary := r.env.PrimaryMachine(opts.Provider)
		if primary == nil {
			return nil, errors.New(errors.ErrMultiTarget,
				"This command requires a single target machine",
				"Name exactly one machine, or set 'primary' in .mach.yaml.")
		}
		handles = []*Handle{primary}
	}

	if opts.Reverse {
		for i, j := 0, len(handles)-1; i < j; i, j = i+1, j-1 {
			handles[i], handles[j] = handles[j], handles[i]
		}
	}

	return handles, nil
}

// resolveLiteral resolves one literal machine name to a handle.
func (r *Resolver) resolveLiteral(name string, active []ActiveRecord, requested Provider) (*Handle, error) {
	provider, err := resolveProvider(name, active, requested, r.env.DefaultProvider)
	if err != nil {
		return nil, err
	}

	h := r.env.Machine(name, provider)
	if h == nil {
		return nil, errors.New(errors.ErrMachineNotFound,
			fmt.Sprintf("Machine '%s' doesn't exist", name),
			"Check the machine names in .mach.yaml, or use a /pattern/ to match several.")
	}

	r.log.Debug("resolved %s (%s)", h.Name, h.Provider)
	return h, nil
}

// resolvePattern expands one /pattern/ spec against the configured names,
// in enumeration order. Providers resolve per matched name.
func (r *Resolver) resolvePattern(spec Name, names []string, active []ActiveRecord, requested Provider) ([]*Handle, error) {
	re, err := regexp.Compile(spec.Pattern())
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrPattern,
			fmt.Sprintf("Invalid machine pattern %s", string(spec)),
			"Patterns use regular expression syntax, e.g. /^web/.")
	}

	var matched []*Handle
	for _, name := range names {
		if !re.MatchString(name) {
			continue
		}

		provider, err := resolveProvider(name, active, requested, r.env.DefaultProvider)
		if err != nil {
			return nil, err
		}

		h := r.env.Machine(name, provider)
		if h == nil {
			continue
		}
		r.log.Debug("pattern %s matched %s (%s)", string(spec), h.Name, h.Provider)
		matched = append(matched, h)
	}

	if len(matched) == 0 {
		return nil, errors.New(errors.ErrNoMatch,
			fmt.Sprintf("No machine names match %s", string(spec)),
			"Run 'mach list' to see the configured machines.")
	}
	return matched, nil
}

// resolveProvider picks the provider for one machine name. The scan over
// active records is an ordered early-exit: the first record with a
// matching name wins. An explicit request that contradicts that record is
// an error; names with no active record use the request, then the default.
func resolveProvider(name string, active []ActiveRecord, requested Provider, def func() Provider) (Provider, error) {
	for _, rec := range active {
		if rec.Name != name {
			continue
		}
		if requested != "" && requested != rec.Provider {
			return "", errors.New(errors.ErrProviderConflict,
				fmt.Sprintf("Machine '%s' is active under the '%s' provider, but '%s' was requested",
					name, rec.Provider, requested),
				fmt.Sprintf("Destroy '%s' first, or rerun without --provider.", name))
		}
		return rec.Provider, nil
	}

	if requested != "" {
		return requested, nil
	}
	return def(), nil
}
