package cli

import (
	"fmt"
	"strconv"
	"strings"

	ssh_config "github.com/kevinburke/ssh_config"

	"github.com/machkit/mach/internal/config"
	"github.com/machkit/mach/internal/machine"
)

// Connection defaults when neither .mach.yaml nor the user's
// ssh_config specifies a value.
const (
	defaultSSHHost = "127.0.0.1"
	defaultSSHUser = "mach"
	defaultSSHPort = 22
)

// sshEntry holds the resolved connection settings for one machine.
type sshEntry struct {
	Name         string
	Host         string
	User         string
	Port         int
	IdentityFile string
}

// sshConfigCommand prints an ssh_config block for the resolved machine.
// Target flags carry Single, so multi-machine targets collapse to the
// primary machine before we get here.
func sshConfigCommand(args []string) error {
	handles, e, err := resolveTargets(&sshCfgFlags, args)
	if err != nil {
		return err
	}

	h := handles[0]
	mc, _ := e.Config().Machine(h.Name)
	fmt.Print(renderSSHConfig(buildSSHEntry(h, mc)))
	return nil
}

// buildSSHEntry merges per-machine config with the user's ssh_config.
// Explicit .mach.yaml values win, then ssh_config entries for the
// machine name, then defaults.
func buildSSHEntry(h *machine.Handle, mc config.Machine) sshEntry {
	entry := sshEntry{
		Name:         h.Name,
		Host:         mc.SSH.Host,
		User:         mc.SSH.User,
		Port:         mc.SSH.Port,
		IdentityFile: mc.SSH.IdentityFile,
	}

	if entry.Host == "" {
		if v := ssh_config.Get(h.Name, "HostName"); v != "" {
			entry.Host = v
		} else {
			entry.Host = defaultSSHHost
		}
	}
	if entry.User == "" {
		if v := ssh_config.Get(h.Name, "User"); v != "" {
			entry.User = v
		} else {
			entry.User = defaultSSHUser
		}
	}
	if entry.Port == 0 {
		if v := ssh_config.Get(h.Name, "Port"); v != "" {
			if p, err := strconv.Atoi(v); err == nil {
				entry.Port = p
			}
		}
		if entry.Port == 0 {
			entry.Port = defaultSSHPort
		}
	}
	if entry.IdentityFile == "" {
		// ssh_config returns its built-in default identity when the
		// user's config has none; keep that behavior.
		entry.IdentityFile = ssh_config.Get(h.Name, "IdentityFile")
	}

	return entry
}

// renderSSHConfig formats an entry as an OpenSSH client config block.
func renderSSHConfig(e sshEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Host %s\n", e.Name)
	fmt.Fprintf(&b, "  HostName %s\n", e.Host)
	fmt.Fprintf(&b, "  User %s\n", e.User)
	fmt.Fprintf(&b, "  Port %d\n", e.Port)
	if e.IdentityFile != "" {
		fmt.Fprintf(&b, "  IdentityFile %s\n", e.IdentityFile)
	}
	b.WriteString("  UserKnownHostsFile /dev/null\n")
	b.WriteString("  StrictHostKeyChecking no\n")
	return b.String()
}
