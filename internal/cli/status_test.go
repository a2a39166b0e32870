package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machkit/mach/internal/config"
	"github.com/machkit/mach/internal/env"
	"github.com/machkit/mach/internal/machine"
	"github.com/machkit/mach/internal/state"
)

func TestBuildStatuses(t *testing.T) {
	cfg := &config.Config{
		DefaultProvider: "virtualbox",
		Primary:         "web",
		Machines:        []config.Machine{{Name: "web"}, {Name: "db"}},
	}
	idx := state.Empty()
	require.NoError(t, idx.Put(state.Record{Name: "web", Provider: "docker", State: "running"}))
	e := env.New(cfg, idx, "/proj")

	handles := []*machine.Handle{
		{Name: "web", Provider: "docker"},
		{Name: "db", Provider: "virtualbox"},
	}

	statuses := buildStatuses(e, handles)

	require.Len(t, statuses, 2)
	assert.Equal(t, MachineStatus{Name: "web", Provider: "docker", State: "running", Primary: true}, statuses[0])
	assert.Equal(t, MachineStatus{Name: "db", Provider: "virtualbox", State: stateNotCreated}, statuses[1])
}

func TestBuildStatuses_SoleMachineIsPrimary(t *testing.T) {
	cfg := &config.Config{
		DefaultProvider: "virtualbox",
		Machines:        []config.Machine{{Name: "web"}},
	}
	e := env.New(cfg, state.Empty(), "/proj")

	statuses := buildStatuses(e, []*machine.Handle{{Name: "web", Provider: "virtualbox"}})

	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Primary)
}

func TestBuildStatuses_RecordWithoutStateIsRunning(t *testing.T) {
	cfg := &config.Config{
		DefaultProvider: "virtualbox",
		Machines:        []config.Machine{{Name: "web"}, {Name: "db"}},
	}
	idx := state.Empty()
	require.NoError(t, idx.Put(state.Record{Name: "web", Provider: "docker"}))
	e := env.New(cfg, idx, "/proj")

	statuses := buildStatuses(e, []*machine.Handle{{Name: "web", Provider: "docker"}})

	assert.Equal(t, "running", statuses[0].State)
}

func TestFormatMachineList(t *testing.T) {
	cfg := &config.Config{
		DefaultProvider: "virtualbox",
		Primary:         "db",
		Machines: []config.Machine{
			{Name: "web", Provider: "docker"},
			{Name: "db"},
		},
	}

	out := formatMachineList(cfg)

	assert.Contains(t, out, "web")
	assert.Contains(t, out, "docker")
	assert.Contains(t, out, "virtualbox")
	assert.Contains(t, out, "* db")
}

func TestFormatMachineList_Empty(t *testing.T) {
	assert.Equal(t, "No machines declared\n", formatMachineList(config.DefaultConfig()))
}
