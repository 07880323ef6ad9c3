package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-drift/transition/cmd/transitionsim/internal/scenario"
	"github.com/go-drift/transition/pkg/transition"
)

// Semantic colors, as ANSI codes for terminal compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

func colored(c lipgloss.Color) lipgloss.Style {
	if noColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

func errorStyle() lipgloss.Style {
	return colored(ColorError).Bold(!noColor)
}

func statusColor(s transition.Status) lipgloss.Color {
	switch s {
	case transition.StatusEntering, transition.StatusExiting:
		return ColorWarning
	case transition.StatusEntered:
		return ColorSuccess
	case transition.StatusExited:
		return ColorInfo
	default:
		return ColorMuted
	}
}

func statusText(s transition.Status) string {
	return colored(statusColor(s)).Render(s.String())
}

func displayKey(key string) string {
	if key == "" {
		return "-"
	}
	return key
}

// formatEvent renders one timeline line.
func formatEvent(e scenario.Event) string {
	at := colored(ColorMuted).Render(fmt.Sprintf("%8s", e.At))
	var what string
	switch e.Kind {
	case scenario.EventStatus:
		what = statusText(e.From) + " -> " + statusText(e.To)
	case scenario.EventStarted:
		what = "start " + statusText(e.To) + " for " + e.Detail
	case scenario.EventSuperseded:
		what = "cancel " + statusText(e.From)
	case scenario.EventRemoved:
		what = colored(ColorError).Render("removed")
	case scenario.EventRender:
		what = "render " + statusText(e.To)
		if e.Detail != "" {
			what += fmt.Sprintf(" %q", e.Detail)
		}
	default:
		what = string(e.Kind)
	}
	return fmt.Sprintf("%s  %-8s %s", at, displayKey(e.Key), what)
}

func printResult(w io.Writer, res *scenario.Result) {
	name := res.Name
	if name == "" {
		name = "scenario"
	}
	fmt.Fprintf(w, "%s (%s)\n", colored(ColorInfo).Bold(!noColor).Render(name), res.Elapsed)
	for _, e := range res.Events {
		fmt.Fprintln(w, formatEvent(e))
	}

	final := make([]string, 0, len(res.Final))
	for _, r := range res.Final {
		final = append(final, displayKey(r.Key)+"="+statusText(r.Status))
	}
	if len(final) == 0 {
		final = append(final, colored(ColorMuted).Render("nothing rendered"))
	}
	fmt.Fprintf(w, "final: %s\n", strings.Join(final, " "))
}
