// Package optparse wraps pflag parsing with uniform help handling and
// error translation for nested command dispatch.
package optparse

import (
	goerrors "errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/machkit/mach/internal/errors"
)

// ErrHelp is returned when the user asked for help. It signals an early,
// intentional exit after printing usage, not a failure.
var ErrHelp = goerrors.New("help requested")

// Parse parses rawArgs against fs and returns the remaining positional
// arguments. The caller's slice is never modified; parsing operates on a
// copy.
//
// A -h/--help flag is added when fs doesn't define one. Triggering help
// writes the flag usage to out and returns ErrHelp. Unknown flags produce
// a CLI error whose suggestion carries the full usage text.
func Parse(rawArgs []string, fs *pflag.FlagSet, out io.Writer) ([]string, error) {
	argsCopy := append([]string(nil), rawArgs...)

	var help *bool
	if fs.Lookup("help") == nil {
		if fs.ShorthandLookup("h") == nil {
			help = fs.BoolP("help", "h", false, "print help and exit")
		} else {
			help = fs.Bool("help", false, "print help and exit")
		}
	}

	// Failures are reported through the return value, not pflag's own
	// printing.
	fs.SetOutput(io.Discard)

	if err := fs.Parse(argsCopy); err != nil {
		if goerrors.Is(err, pflag.ErrHelp) {
			fmt.Fprint(out, fs.FlagUsages())
			return nil, ErrHelp
		}
		return nil, errors.WrapWithCode(err, errors.ErrCLI,
			"Invalid options",
			fs.FlagUsages())
	}

	requested := help != nil && *help
	if !requested {
		if f := fs.Lookup("help"); f != nil && f.Changed && f.Value.String() == "true" {
			requested = true
		}
	}
	if requested {
		fmt.Fprint(out, fs.FlagUsages())
		return nil, ErrHelp
	}

	return fs.Args(), nil
}
