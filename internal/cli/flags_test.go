package cli

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/machkit/mach/internal/machine"
)

func TestTargetFlags_Options(t *testing.T) {
	flags := TargetFlags{Provider: "docker", Reverse: true, Single: true}

	opts := flags.Options()

	assert.Equal(t, machine.Provider("docker"), opts.Provider)
	assert.True(t, opts.Reverse)
	assert.True(t, opts.Single)
}

func TestAddTargetFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var flags TargetFlags
	AddTargetFlags(cmd, &flags)

	assert.NotNil(t, cmd.Flags().Lookup("provider"))
	assert.NotNil(t, cmd.Flags().Lookup("reverse"))

	err := cmd.Flags().Parse([]string{"--provider", "docker", "--reverse"})
	assert.NoError(t, err)
	assert.Equal(t, "docker", flags.Provider)
	assert.True(t, flags.Reverse)
}

func TestParseTargets(t *testing.T) {
	specs := ParseTargets([]string{"web", "/^db/"})

	assert.Equal(t, []machine.Name{"web", "/^db/"}, specs)
	assert.True(t, specs[1].IsPattern())
	assert.False(t, specs[0].IsPattern())
}

func TestParseTargets_Empty(t *testing.T) {
	assert.Empty(t, ParseTargets(nil))
}

func TestPreScan_GlobalFlagsBeforeSubcommand(t *testing.T) {
	origConfig, origDebug := configFlag, debugFlag
	defer func() {
		configFlag, debugFlag = origConfig, origDebug
	}()
	configFlag, debugFlag = "", false

	// The separated form "--config custom.yaml" would make the value
	// look like the subcommand token, so global flags use key=value.
	preScan([]string{"--config=custom.yaml", "status", "web"})

	assert.Equal(t, "custom.yaml", configFlag)
	assert.False(t, debugFlag)
}

func TestPreScan_IgnoresSubcommandFlags(t *testing.T) {
	origConfig := configFlag
	defer func() { configFlag = origConfig }()
	configFlag = ""

	// --config after the subcommand belongs to the subcommand segment.
	preScan([]string{"status", "--config", "custom.yaml"})

	assert.Equal(t, "", configFlag)
}

func TestPreScan_NoColorDisablesStyling(t *testing.T) {
	origNoColor := noColorFlag
	origProfile := lipgloss.ColorProfile()
	defer func() {
		noColorFlag = origNoColor
		lipgloss.SetColorProfile(origProfile)
	}()
	noColorFlag = false

	preScan([]string{"--no-color", "status"})

	assert.True(t, noColorFlag)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}

func TestPreScan_UnknownFlagDoesNotPanic(t *testing.T) {
	origConfig := configFlag
	defer func() { configFlag = origConfig }()

	assert.NotPanics(t, func() {
		preScan([]string{"--bogus", "status"})
	})
}
