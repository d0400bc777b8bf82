// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ik5/stemfx/analysis"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#5F87FF")
	accentColor  = lipgloss.Color("#87D787")
	errorColor   = lipgloss.Color("#D70000")
	mutedColor   = lipgloss.Color("#888888")
	textColor    = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	StageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)
)

// PrintVersion prints version information
func PrintVersion(w io.Writer, version string) {
	fmt.Fprintln(w, TitleStyle.Render("stemfx"))
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintStage announces a processing stage.
func PrintStage(w io.Writer, stage string) {
	fmt.Fprintf(w, "%s %s\n", StageStyle.Render("▸"), stage)
}

// PrintKV prints one aligned key/value line.
func PrintKV(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s %s\n", KeyStyle.Render(fmt.Sprintf("%-12s", key+":")), ValueStyle.Render(fmt.Sprint(value)))
}

// PrintReport prints levels before and after processing side by side.
func PrintReport(w io.Writer, before, after analysis.Report) {
	fmt.Fprintln(w, TitleStyle.Render("Levels (dBFS)"))
	PrintKV(w, "peak", fmt.Sprintf("%7.2f → %7.2f", before.PeakDB, after.PeakDB))
	PrintKV(w, "rms", fmt.Sprintf("%7.2f → %7.2f", before.RMSDB, after.RMSDB))
	for i, b := range after.Bands {
		prev := b.LevelDB
		if i < len(before.Bands) {
			prev = before.Bands[i].LevelDB
		}
		PrintKV(w, b.Name, fmt.Sprintf("%7.2f → %7.2f", prev, b.LevelDB))
	}
}
