// Package argv splits raw command lines into global flags, a subcommand,
// and the subcommand's arguments. The CLI uses it to pre-scan global flags
// before cobra dispatches the subcommand.
package argv

import "strings"

// Result holds the three sections of a split argument vector.
type Result struct {
	Main       []string // tokens before the subcommand (global flags)
	Subcommand string   // the subcommand token, if Found
	Found      bool     // whether a subcommand token was present
	Sub        []string // every token after the subcommand, through the end
}

// Split scans argv left to right. The first token that does not start with
// the flag prefix '-' is the subcommand; everything before it belongs to
// the main command and everything after it to the subcommand. When no such
// token exists, all of argv is Main. Split is total and never fails.
func Split(argv []string) Result {
	for i, tok := range argv {
		if strings.HasPrefix(tok, "-") {
			continue
		}
		return Result{
			Main:       append([]string(nil), argv[:i]...),
			Subcommand: tok,
			Found:      true,
			Sub:        append([]string(nil), argv[i+1:]...),
		}
	}
	return Result{Main: append([]string(nil), argv...)}
}
