package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleResponse = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)

	styleNoop = lipgloss.NewStyle().
			Foreground(lipgloss.Color("221"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindResponse lineKind = iota
	kindSuccess
	kindNoop
	kindError
	kindHint
	kindTrace
)

// hintPrefix opens the line shown under an INVALID response.
const hintPrefix = "closest form: "

var successPrefixes = []string{
	"Alchemy ingredients obtained",
	"Trade successful",
	"Alchemy item created:",
	"New alchemy formula obtained:",
	"New bestiary entry added:",
	"Bestiary entry updated:",
	"Geralt defeats",
}

var noopPrefixes = []string{
	"Not enough",
	"No formula for",
	"No knowledge of",
	"Already known",
	"Geralt is unprepared",
}

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case line == "INVALID":
		return kindError
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, hintPrefix):
		return kindHint
	case hasAnyPrefix(line, successPrefixes):
		return kindSuccess
	case hasAnyPrefix(line, noopPrefixes):
		return kindNoop
	default:
		return kindResponse
	}
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindSuccess:
		return styleSuccess.Render(line)
	case kindNoop:
		return styleNoop.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindHint:
		return styleHint.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleResponse.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
