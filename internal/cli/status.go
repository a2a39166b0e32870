package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/machkit/mach/internal/env"
	"github.com/machkit/mach/internal/machine"
	"github.com/machkit/mach/internal/ui"
)

// stateNotCreated is shown for machines with no index record.
const stateNotCreated = "not created"

// MachineStatus represents a single machine in JSON output.
type MachineStatus struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	State    string `json:"state"`
	Primary  bool   `json:"primary,omitempty"`
}

// statusCommand implements the status command logic.
func statusCommand(args []string) error {
	handles, e, err := resolveTargets(&statusFlags, args)
	if err != nil {
		return err
	}

	statuses := buildStatuses(e, handles)

	if statusJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	rows := make([]ui.MachineRow, len(statuses))
	for i, s := range statuses {
		rows[i] = ui.MachineRow{
			Name:     s.Name,
			Provider: s.Provider,
			State:    s.State,
			Primary:  s.Primary,
		}
	}
	fmt.Print(ui.RenderMachineTable(rows))
	return nil
}

// buildStatuses combines resolved handles with index state.
func buildStatuses(e *env.Env, handles []*machine.Handle) []MachineStatus {
	primary := e.Config().Primary
	if primary == "" && len(e.Config().Machines) == 1 {
		primary = e.Config().Machines[0].Name
	}

	statuses := make([]MachineStatus, len(handles))
	for i, h := range handles {
		st := stateNotCreated
		if rec, ok := e.Index().Lookup(h.Name); ok {
			st = rec.State
			if st == "" {
				st = "running"
			}
		}
		statuses[i] = MachineStatus{
			Name:     h.Name,
			Provider: string(h.Provider),
			State:    st,
			Primary:  h.Name == primary,
		}
	}
	return statuses
}
