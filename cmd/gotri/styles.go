package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	primary = lipgloss.Color("#163aa2")
	accent  = lipgloss.Color("#8BC34A")
	warning = lipgloss.Color("#FFC107")
	muted   = lipgloss.Color("#6b7280")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	caseStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle   = lipgloss.NewStyle().Foreground(muted).Width(16)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
)

func printHeading(w io.Writer, text string) {
	fmt.Fprintln(w, headingStyle.Render(text))
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(label), value)
}

func printWarning(w io.Writer, text string) {
	fmt.Fprintln(w, warnStyle.Render(text))
}
