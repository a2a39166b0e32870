package ui

import "github.com/charmbracelet/lipgloss"

// MachineRow represents a row in the machine status table.
type MachineRow struct {
	Name     string
	Provider string
	State    string // "running", "stopped", "not created", ...
	Primary  bool
}

// RenderMachineTable renders machine status as a formatted table.
func RenderMachineTable(rows []MachineRow) string {
	if len(rows) == 0 {
		return "No machines configured"
	}

	successStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorSuccess)))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorError)))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorWarning)))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorMuted)))
	primaryStyle := lipgloss.NewStyle().Bold(true)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(string(ColorPrimary))).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(string(ColorMuted)))

	var output string
	output += headerStyle.Render("  STATUS   NAME             PROVIDER         STATE") + "\n"

	for _, row := range rows {
		var statusIcon string
		switch row.State {
		case "running":
			statusIcon = successStyle.Render(SymbolActive)
		case "stopped":
			statusIcon = warnStyle.Render(SymbolPending)
		case "aborted", "error":
			statusIcon = errorStyle.Render(SymbolFail)
		default:
			statusIcon = mutedStyle.Render(SymbolPending)
		}

		nameStr := row.Name
		if row.Primary {
			nameStr = primaryStyle.Render(row.Name + " *")
		}

		var stateStr string
		switch row.State {
		case "running":
			stateStr = successStyle.Render(row.State)
		case "stopped":
			stateStr = warnStyle.Render(row.State)
		case "aborted", "error":
			stateStr = errorStyle.Render(row.State)
		default:
			stateStr = mutedStyle.Render(row.State)
		}

		rowLine := "  " + statusIcon + "        " +
			padRight(nameStr, 17) +
			padRight(row.Provider, 17) +
			stateStr
		output += rowLine + "\n"
	}

	return output
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	padding := width - visibleLen
	for i := 0; i < padding; i++ {
		s += " "
	}
	return s
}
